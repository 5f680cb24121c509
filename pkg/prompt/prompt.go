package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForRepositoryName asks for a replacement when a remote name is already taken.
	PromptForRepositoryName(taken string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelectTemplate prompts the user to pick an ignore template from a list.
	PromptSelectTemplate(names []string) (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompt creates a new Prompt instance on the standard streams.
func NewPrompt() Prompter {
	return NewPromptWithIO(os.Stdin, os.Stdout)
}

// NewPromptWithIO creates a Prompt reading answers from in and writing questions to out.
func NewPromptWithIO(in io.Reader, out io.Writer) Prompter {
	return &realPrompt{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// PromptForRepositoryName asks again until a non-empty name is entered.
func (p *realPrompt) PromptForRepositoryName(taken string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s %s\n%s ",
			questionStyle.Render("Repository name"),
			highlight.Render(taken),
			questionStyle.Render("is already taken on the remote. Choose another name:"))

		input, err := p.reader.ReadString('\n')
		name := strings.TrimSpace(input)
		if name != "" {
			return name, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to read user input: %w", err)
		}
	}
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	defaultText := "[y/N]"
	if defaultYes {
		defaultText = "[Y/n]"
	}

	fmt.Fprintf(p.out, "%s %s: ", questionStyle.Render(message), hintStyle.Render(defaultText))

	input, err := p.reader.ReadString('\n')
	if err != nil && input == "" {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.TrimSpace(strings.ToLower(input)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelectTemplate prompts the user to pick an ignore template from a list.
func (p *realPrompt) PromptSelectTemplate(names []string) (string, error) {
	if len(names) == 0 {
		return "", ErrNoChoices
	}

	return runTemplatePicker(names)
}
