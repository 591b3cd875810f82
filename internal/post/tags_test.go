package post

import (
	"reflect"
	"testing"
)

func TestDetectTags(t *testing.T) {
	known := []string{"python", "rust", "data"}

	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{"single match", "My Rust Project", []string{"rust"}},
		{"no match", "Something Else", nil},
		{"list order preserved", "rust and python and data", []string{"python", "rust", "data"}},
		{"substring match", "Rustic furniture", []string{"rust"}},
		{"case insensitive", "PYTHON tricks", []string{"python"}},
		{"empty title", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectTags(tt.title, known)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectTags(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestDetectTagsEmptyKnownList(t *testing.T) {
	if got := DetectTags("anything", nil); got != nil {
		t.Errorf("DetectTags with no known tags = %v, want nil", got)
	}
}

func TestParseTagList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"trimmed and lowercased", "  Foo , BAR,baz ,", []string{"foo", "bar", "baz", ""}},
		{"single tag", "go", []string{"go"}},
		{"no dedup", "go,go", []string{"go", "go"}},
		{"empty input yields one empty tag", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTagList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTagList(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
