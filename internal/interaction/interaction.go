// Where: cli/internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	Select(title string, options []string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PromptYesNo prints a confirmation prompt and returns true for yes.
func PromptYesNo(message string) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return trimmed == "y" || trimmed == "yes", nil
}

// Pause blocks until the user presses any key, so output written before the
// launcher exits stays visible in terminals that close on process exit.
// On a real terminal a single key press suffices (raw mode); otherwise it
// consumes one line or EOF from stdin.
func Pause(out io.Writer) error {
	fmt.Fprint(out, "Press any key to continue . . . ")

	if IsTerminal(os.Stdin) {
		fd := int(os.Stdin.Fd())
		state, err := term.MakeRaw(fd)
		if err == nil {
			defer func() {
				_ = term.Restore(fd, state)
				fmt.Fprintln(out)
			}()
			buf := make([]byte, 1)
			_, err = os.Stdin.Read(buf)
			return err
		}
		// Fall through to a line read when raw mode is unavailable.
	}

	reader := bufio.NewReader(os.Stdin)
	_, err := reader.ReadString('\n')
	fmt.Fprintln(out)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
