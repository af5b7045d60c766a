package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/right-cli/right/internal/ui"
)

// errPromptCancelled is returned when the user aborts the name prompt.
var errPromptCancelled = errors.New("cancelled")

// NamePrompter asks for the project name, offering def as the answer.
type NamePrompter func(def string) (string, error)

// newNamePrompter uses an interactive huh form on a terminal and a plain line
// read otherwise, so piped input keeps working.
func newNamePrompter(in io.Reader, out io.Writer) NamePrompter {
	if f, ok := in.(*os.File); ok && ui.IsTerminal(f) {
		return huhPrompt
	}
	return linePrompt(in, out)
}

func huhPrompt(def string) (string, error) {
	name := def
	input := huh.NewInput().
		Title("Project name").
		Placeholder(def).
		Value(&name)

	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errPromptCancelled
		}
		return "", fmt.Errorf("prompting for project name: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		return def, nil
	}
	return name, nil
}

// linePrompt reads one line; an empty answer or EOF accepts the default.
func linePrompt(in io.Reader, out io.Writer) NamePrompter {
	reader := bufio.NewReader(in)
	return func(def string) (string, error) {
		fmt.Fprintf(out, "Project name [%s]: ", def)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading project name: %w", err)
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			return def, nil
		}
		return line, nil
	}
}
