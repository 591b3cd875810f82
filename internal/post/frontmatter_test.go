package post

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const samplePost = `---
layout: post
title:  "My Rust Project"
date:   2024-03-05 09:08:07 -0700
category: code
tags: [rust, data]
---

` + "`TODO`\n"

func TestParseFrontMatter(t *testing.T) {
	fm, err := ParseFrontMatter([]byte(samplePost))
	if err != nil {
		t.Fatalf("ParseFrontMatter() error: %v", err)
	}

	if fm.Layout != "post" {
		t.Errorf("Layout = %q, want %q", fm.Layout, "post")
	}
	if fm.Title != "My Rust Project" {
		t.Errorf("Title = %q, want %q", fm.Title, "My Rust Project")
	}
	if fm.Date != "2024-03-05 09:08:07 -0700" {
		t.Errorf("Date = %q: literal offset must survive parsing", fm.Date)
	}
	if fm.Category != "code" {
		t.Errorf("Category = %q, want %q", fm.Category, "code")
	}
	if want := []string{"rust", "data"}; !reflect.DeepEqual(fm.Tags, want) {
		t.Errorf("Tags = %v, want %v", fm.Tags, want)
	}
}

func TestParseFrontMatterErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no header", "just a body\n"},
		{"unterminated", "---\nlayout: post\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFrontMatter([]byte(tt.data)); err == nil {
				t.Errorf("ParseFrontMatter(%q): expected error", tt.data)
			}
		})
	}
}

func TestParseFrontMatterFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2024-03-05-my-rust-project.md")
	if err := os.WriteFile(path, []byte(samplePost), 0644); err != nil {
		t.Fatal(err)
	}

	fm, err := ParseFrontMatterFile(path)
	if err != nil {
		t.Fatalf("ParseFrontMatterFile() error: %v", err)
	}
	if fm.Title != "My Rust Project" {
		t.Errorf("Title = %q", fm.Title)
	}

	if _, err := ParseFrontMatterFile(filepath.Join(dir, "missing.md")); err == nil {
		t.Error("expected error for missing file")
	}
}
