package post

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"My Rust Project", "my-rust-project"},
		{"already-slugged", "already-slugged"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"CAPS and 123 digits", "caps-and-123-digits"},
		{"!!!", ""},
		{"", ""},
		{"trailing punctuation...", "trailing-punctuation"},
		{"--leading hyphens", "leading-hyphens"},
		{"a_b_c", "a-b-c"},
		{"café résumé", "caf-r-sum"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSlugifyShape(t *testing.T) {
	// Whatever the input, the slug has no leading/trailing hyphen and no
	// consecutive hyphens.
	inputs := []string{"a  b", "x---y", "?!weird?!input?!", "one, two, three!"}
	for _, in := range inputs {
		got := Slugify(in)
		if len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-') {
			t.Errorf("Slugify(%q) = %q: leading or trailing hyphen", in, got)
		}
		for i := 1; i < len(got); i++ {
			if got[i] == '-' && got[i-1] == '-' {
				t.Errorf("Slugify(%q) = %q: consecutive hyphens", in, got)
			}
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, in := range []string{"Hello, World!", "My Rust Project", ""} {
		first := Slugify(in)
		if second := Slugify(first); second != first {
			t.Errorf("Slugify not idempotent for %q: %q then %q", in, first, second)
		}
	}
}
