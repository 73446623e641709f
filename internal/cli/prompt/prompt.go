// Package prompt wraps the interactive inputs used by commands when a value
// was not supplied via flags.
package prompt

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// Interactive reports whether stdin is a terminal. Commands fall back to
// flags and environment variables when it is not (CI, piped input).
func Interactive() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// Select shows an interactive picker over the given options and returns the
// chosen one.
func Select(label string, options []string) (string, error) {
	type option struct {
		Label string
		Value string
	}

	items := make([]option, len(options))
	for i, value := range options {
		items[i] = option{Label: display(value), Value: value}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | green }}",
	}

	sel := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
	}

	index, _, err := sel.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return items[index].Value, nil
}

// Input reads a single line of free-form input
func Input(label string) (string, error) {
	p := promptui.Prompt{Label: label}

	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	return strings.TrimSpace(result), nil
}

// Password reads a password from the terminal without echoing it
func Password(label string) (string, error) {
	fmt.Printf("%s: ", label)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()
	return string(bytePassword), nil
}

// display turns an enum value like "COMPANY_SITE" into "Company site"
func display(value string) string {
	words := strings.Split(strings.ToLower(value), "_")
	if len(words) > 0 && words[0] != "" {
		words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	}
	return strings.Join(words, " ")
}
