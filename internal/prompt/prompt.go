// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks questions on the terminal before zedkit acts.
type Prompter struct {
	reader io.Reader
	writer io.Writer
}

// NewPrompter creates a Prompter using stdin and stdout.
func NewPrompter() *Prompter {
	return &Prompter{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewPrompterWithIO creates a Prompter with custom reader and writer for testing.
func NewPrompterWithIO(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: r,
		writer: w,
	}
}

// Confirm asks a yes/no question and reports whether the user agreed.
// The default answer is no: empty input, EOF, and read failures all
// count as declining.
func (p *Prompter) Confirm(question string) bool {
	fmt.Fprintf(p.writer, "%s [y/N] ", question)

	reader := bufio.NewReader(p.reader)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
