package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/sitealias/internal/handlers/ui"
)

// ErrFZFNotFound indicates that the fzf binary was not found in PATH.
var ErrFZFNotFound = errors.New("fzf binary not found in PATH")

// ErrFZFCancelled indicates that the user cancelled the fzf selection (e.g., by pressing Esc or Ctrl-C).
var ErrFZFCancelled = errors.New("fzf selection cancelled by user")

// ErrNoSelection indicates that the user did not choose an alias.
var ErrNoSelection = errors.New("no alias selected")

// pickAlias lets the user choose one alias name, preferring fzf and falling
// back to a numbered prompt on in/out.
func pickAlias(names []string, in io.Reader, out io.Writer) (string, error) {
	if len(names) == 0 {
		return "", ErrNoSelection
	}

	name, err := selectAliasViaFZF(names)
	switch {
	case err == nil:
		return name, nil
	case errors.Is(err, ErrFZFCancelled):
		return "", err
	case errors.Is(err, ErrFZFNotFound):
		fmt.Fprintln(out, ui.WarningColor("fzf not found in PATH. Falling back to numeric selection."))
	default:
		fmt.Fprintln(out, ui.ErrorColor(fmt.Sprintf("Error during fzf selection: %v. Falling back to numeric selection.", err)))
	}
	return selectAliasNumerically(names, in, out)
}

func selectAliasViaFZF(names []string) (string, error) {
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return "", ErrFZFNotFound
	}

	var inputBuffer bytes.Buffer
	for _, name := range names {
		inputBuffer.WriteString(name + "\n")
	}

	fzfCmd := exec.Command(fzfPath, "--ansi", "--prompt", ui.PromptColor("Select an alias > "))
	fzfCmd.Stdin = &inputBuffer

	var outBuffer bytes.Buffer
	var errBuffer bytes.Buffer
	fzfCmd.Stdout = &outBuffer
	fzfCmd.Stderr = &errBuffer

	if err := fzfCmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			// Exit code 130 indicates user cancellation (e.g., Ctrl-C, Esc).
			if exitErr.ExitCode() == 130 {
				return "", ErrFZFCancelled
			}
			// Exit code 1 means no match.
			if exitErr.ExitCode() == 1 && strings.TrimSpace(outBuffer.String()) == "" {
				return "", ErrNoSelection
			}
		}
		return "", fmt.Errorf("fzf execution failed (stderr: %s): %w", strings.TrimSpace(errBuffer.String()), err)
	}

	selected := strings.TrimSpace(outBuffer.String())
	for _, name := range names {
		if name == selected {
			return name, nil
		}
	}
	return "", fmt.Errorf("fzf selected an unknown line: %q", selected)
}

func selectAliasNumerically(names []string, in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, ui.PromptColor("Select an alias:"))
	for i, name := range names {
		fmt.Fprintf(out, "%d. %s\n", i+1, ui.AliasNameColor(name))
	}
	fmt.Fprint(out, ui.PromptColor("Your choice: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", fmt.Errorf("failed to read selection: %w", err)
	}

	idx, err := parseNumericSelectionInput(input, names)
	if err != nil {
		return "", fmt.Errorf("invalid selection input: %w", err)
	}
	return names[idx], nil
}

// parseNumericSelectionInput accepts a 1-based number or an alias name and
// returns the 0-based index of the chosen alias.
func parseNumericSelectionInput(input string, names []string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, ErrNoSelection
	}

	if num, err := strconv.Atoi(trimmed); err == nil {
		if num <= 0 || num > len(names) {
			return 0, fmt.Errorf("invalid number (max %d): %s", len(names), trimmed)
		}
		return num - 1, nil
	}

	for i, name := range names {
		if name == trimmed {
			return i, nil
		}
	}
	return 0, fmt.Errorf("not a number or alias name: %s", trimmed)
}
