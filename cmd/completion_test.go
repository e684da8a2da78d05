package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicNames(t *testing.T) {
	names := topicNames()
	assert.Equal(t, []string{"readme", "*"}, names[:2])
	for _, topic := range []string{"overview", "datasets", "ppp", "conclusion"} {
		assert.Contains(t, names, topic)
	}
}
