package config

import "testing"

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		constraint string
		want       bool
	}{
		{"satisfied", "0.3.0", ">= 0.2.0", true},
		{"satisfied with v prefix", "v0.3.0", ">= 0.2.0", true},
		{"not satisfied", "0.1.0", ">= 0.2.0", false},
		{"range", "1.2.3", ">= 1.0.0, < 2.0.0", true},
		{"empty constraint always passes", "0.0.1", "", true},
		{"dev build bypasses the check", "dev", ">= 99.0.0", true},
		{"empty version bypasses the check", "", ">= 99.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Satisfies(tt.version, tt.constraint)
			if err != nil {
				t.Fatalf("Satisfies(%q, %q) error: %v", tt.version, tt.constraint, err)
			}
			if got != tt.want {
				t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.version, tt.constraint, got, tt.want)
			}
		})
	}
}

func TestSatisfiesErrors(t *testing.T) {
	if _, err := Satisfies("1.0.0", "not a constraint"); err == nil {
		t.Error("expected error for malformed constraint")
	}
	if _, err := Satisfies("not-a-version", ">= 1.0.0"); err == nil {
		t.Error("expected error for malformed version")
	}
}
