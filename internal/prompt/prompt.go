// Package prompt implements the yes/no confirmation seam.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type Prompt struct {
	in  io.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: in, out: out}
}

func Stdin() *Prompt {
	return New(os.Stdin, os.Stdout)
}

// Confirm asks message and accepts "y"/"yes" (case-insensitive).
// assumeYes answers true without prompting; read failures answer
// false, the safe default.
func (prompt *Prompt) Confirm(message string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(prompt.out, "%s [y/N]: ", message)
	reader := bufio.NewReader(prompt.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
