package inflation

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// This file tests the examples of the README.md file.
//
// A testable example is a command wrapped in a ```bash ... ``` block,
// immediately followed by its expected output in a ```console ... ``` block.
// Commands run from the module root.

// Command holds a command and its expected output.
type Command struct {
	Cmd      string
	Expected string
}

// buildIia builds the iia command and returns the path to the executable.
func buildIia(t *testing.T, tmp string) string {
	t.Helper()

	output := filepath.Join(tmp, "iia")
	buildCmd := exec.Command("go", "build", "-o", output, "./iia/")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build iia command: %v\n%s", err, out)
	}
	return output
}

// parseTestableCommands extracts the commands of a markdown file and their
// expected outputs.
func parseTestableCommands(t *testing.T, file string) []Command {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	re := regexp.MustCompile("(?m)```bash\\n(iia.*?)\\n```\\n\\n```console\\n((.|\\n)*?)```")
	var commands []Command
	for _, match := range re.FindAllStringSubmatch(string(content), -1) {
		commands = append(commands, Command{Cmd: match[1], Expected: match[2]})
	}
	return commands
}

func TestReadme(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the iia binary")
	}
	commands := parseTestableCommands(t, "README.md")
	if len(commands) == 0 {
		t.Fatal("README.md has no testable command")
	}
	iia := buildIia(t, t.TempDir())

	for _, cmd := range commands {
		t.Run(cmd.Cmd, func(t *testing.T) {
			args := strings.Fields(cmd.Cmd)
			command := exec.Command(iia, args[1:]...)
			output, err := command.CombinedOutput()
			if err != nil {
				t.Fatalf("failed to run command: %v, output: \n%s", err, output)
			}
			if got := string(output); cmd.Expected != got {
				t.Errorf("expected output:\n%q\nbut got:\n%q", cmd.Expected, got)
			}
		})
	}
}
