package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/etnz/inflation"
	"github.com/etnz/inflation/renderer"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contentTypeHTML = "text/html; charset=utf-8"

// Report handles GET / with the complete HTML report.
func (s *Server) Report(c *gin.Context) {
	a, err := inflation.Analyze(s.sources, s.pair)
	if err != nil {
		s.logFailure(c, err)
		var buf bytes.Buffer
		if rerr := renderer.ErrorHTML(&buf, err); rerr != nil {
			s.handleError(c, rerr)
			return
		}
		c.Data(http.StatusUnprocessableEntity, contentTypeHTML, buf.Bytes())
		return
	}
	var buf bytes.Buffer
	if err := renderer.HTML(&buf, a); err != nil {
		s.handleError(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypeHTML, buf.Bytes())
}

// Analysis handles GET /api/analysis with the complete analysis as JSON.
func (s *Server) Analysis(c *gin.Context) {
	a, err := inflation.Analyze(s.sources, s.pair)
	if err != nil {
		s.handleNotLoaded(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Merged handles GET /api/merged with the merged rows only.
func (s *Server) Merged(c *gin.Context) {
	ds, err := inflation.Load(s.sources)
	if err != nil {
		s.handleNotLoaded(c, err)
		return
	}
	rows, err := ds.Merge(s.pair)
	if err != nil {
		s.handleNotLoaded(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// HealthCheck handles GET /health requests
func (s *Server) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   ServiceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   ServiceVersion,
	})
}

// handleNotLoaded reports a pipeline failure as 422 with the failing stage.
func (s *Server) handleNotLoaded(c *gin.Context, err error) {
	s.logFailure(c, err)
	body := gin.H{
		"error":      "data not loaded",
		"detail":     err.Error(),
		"request_id": requestID(c),
	}
	if stage, ok := inflation.FailedStage(err); ok {
		body["stage"] = string(stage)
	}
	c.JSON(http.StatusUnprocessableEntity, body)
}

// handleError reports an unexpected failure.
func (s *Server) handleError(c *gin.Context, err error) {
	s.logger.Error("API error",
		zap.String("request_id", requestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      "Internal server error",
		"request_id": requestID(c),
	})
}

func (s *Server) logFailure(c *gin.Context, err error) {
	stage, _ := inflation.FailedStage(err)
	s.logger.Warn("data not loaded",
		zap.String("request_id", requestID(c)),
		zap.String("stage", string(stage)),
		zap.Error(err),
	)
}
