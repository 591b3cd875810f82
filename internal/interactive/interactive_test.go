package interactive

import (
	"bytes"
	"strings"
	"testing"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "My Post\n", "My Post"},
		{"surrounding whitespace trimmed", "  My Post  \n", "My Post"},
		{"internal whitespace kept", "Hello,  World!\n", "Hello,  World!"},
		{"empty line accepted", "\n", ""},
		{"unterminated final line before EOF", "no newline", "no newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)

			got, err := p.Line("New post name: ")
			if err != nil {
				t.Fatalf("Line() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
			if out.String() != "New post name: " {
				t.Errorf("prompt = %q: must be echoed byte for byte", out.String())
			}
		})
	}
}

func TestLineEOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.Line("? "); err == nil {
		t.Error("expected error on immediate EOF")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{" y \n", true},
		{"N\n", false},
		{"n\n", false},
		{"\n", false},
		{"yes\n", false}, // only the exact value proceeds
		{"anything\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		p := New(strings.NewReader(tt.input), &out)

		got, err := p.Confirm(`Create post "_posts/2024-03-05-x.md"? [y/N] `)
		if err != nil {
			t.Fatalf("Confirm(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPromptSequence(t *testing.T) {
	// Three prompts over one reader, as in a full scaffold run.
	input := "Something Else\nfoo, bar\ny\n"
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out)

	title, err := p.Line("New post name: ")
	if err != nil || title != "Something Else" {
		t.Fatalf("title = %q, err = %v", title, err)
	}
	tags, err := p.Line("No tags found. Enter tags separated by a comma: ")
	if err != nil || tags != "foo, bar" {
		t.Fatalf("tags = %q, err = %v", tags, err)
	}
	ok, err := p.Confirm(`Create post "x"? [y/N] `)
	if err != nil || !ok {
		t.Fatalf("confirm = %v, err = %v", ok, err)
	}
}
