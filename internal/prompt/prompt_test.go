package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmAnswers(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"maybe\n", false},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		prompt := New(strings.NewReader(tc.input), &out)
		assert.Equal(t, tc.want, prompt.Confirm("Proceed?", false), "input %q", tc.input)
		assert.Contains(t, out.String(), "Proceed? [y/N]: ")
	}
}

func TestConfirmAssumeYesSkipsPrompt(t *testing.T) {
	var out bytes.Buffer
	prompt := New(strings.NewReader(""), &out)
	assert.True(t, prompt.Confirm("Proceed?", true))
	assert.Empty(t, out.String())
}

func TestConfirmReadFailureIsNo(t *testing.T) {
	var out bytes.Buffer
	prompt := New(strings.NewReader(""), &out)
	assert.False(t, prompt.Confirm("Proceed?", false))
}
