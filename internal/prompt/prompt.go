package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wrenware/repovis/internal/domain"
	"github.com/wrenware/repovis/internal/render"
)

// Prompter reads interactive answers from an io.Reader, writing each
// prompt label to the paired io.Writer first.
type Prompter struct {
	input  io.Reader
	reader *bufio.Reader
	writer io.Writer
}

// New constructs a prompter from the provided reader and writer.
func New(input io.Reader, output io.Writer) *Prompter {
	return &Prompter{input: input, reader: bufio.NewReader(input), writer: output}
}

func (p *Prompter) write(label string) error {
	if p.writer == nil {
		return nil
	}
	_, err := io.WriteString(p.writer, label)
	return err
}

// readLine reads one line, trimming surrounding whitespace. EOF with no
// pending content is returned as an error so prompt loops cannot spin.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	trimmed := strings.TrimSpace(line)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading prompt input: %w", err)
	}
	if err == io.EOF && trimmed == "" {
		return "", fmt.Errorf("reading prompt input: %w", io.ErrUnexpectedEOF)
	}
	return trimmed, nil
}

// Line writes the label and returns the trimmed answer, which may be empty.
func (p *Prompter) Line(label string) (string, error) {
	if err := p.write(label); err != nil {
		return "", err
	}
	return p.readLine()
}

// Required writes the label and returns the trimmed answer, failing with
// domain.ErrMissingInput when the answer is empty. field names the value in
// the error message.
func (p *Prompter) Required(label string, field string) (string, error) {
	value, err := p.Line(label)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", fmt.Errorf("`%s`: %w", field, domain.ErrMissingInput)
	}
	return value, nil
}

// Confirm writes the label and interprets y/yes and n/no answers,
// case-insensitively. An empty answer means no, matching the (y/N) default;
// anything else re-prompts.
func (p *Prompter) Confirm(label string) (bool, error) {
	for {
		answer, err := p.Line(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
		if err := p.write(render.ErrorMark + " Please enter `y` or `n`\n"); err != nil {
			return false, err
		}
	}
}

// PrivacyFlag writes the label and loops until the answer is literally
// "true" or "false". Invalid answers print an inline error and re-prompt;
// the loop is bounded only by the input ending.
func (p *Prompter) PrivacyFlag(label string) (bool, error) {
	for {
		answer, err := p.Line(label)
		if err != nil {
			return false, err
		}
		switch answer {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		if err := p.write(render.ErrorMark + " Please enter either `true` or `false`\n"); err != nil {
			return false, err
		}
	}
}

// Token returns the configured token if present, falling back to a prompt.
// When the prompter's input is a terminal the prompt is masked; otherwise
// (piped input) a plain line read is used. An empty token after the
// fallback fails with domain.ErrMissingInput.
func (p *Prompter) Token(configured string) (string, error) {
	if trimmed := strings.TrimSpace(configured); trimmed != "" {
		return trimmed, nil
	}
	value, err := p.readSecret("Enter token: ")
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", fmt.Errorf("`PAT (personal access token)`: %w", domain.ErrMissingInput)
	}
	return value, nil
}

func (p *Prompter) readSecret(label string) (string, error) {
	file, ok := p.input.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return p.Line(label)
	}
	if err := p.write(label); err != nil {
		return "", err
	}
	secret, err := term.ReadPassword(int(file.Fd()))
	if writeErr := p.write("\n"); writeErr != nil {
		return "", writeErr
	}
	if err != nil {
		return "", fmt.Errorf("reading token securely: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}
