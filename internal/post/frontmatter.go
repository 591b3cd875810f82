package post

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// FrontMatter is the metadata header of a written post, delimited by "---"
// lines. Date stays a string: it carries a literal offset that must survive
// parsing unchanged.
type FrontMatter struct {
	Layout   string   `yaml:"layout"`
	Title    string   `yaml:"title"`
	Date     string   `yaml:"date"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

// ParseFrontMatter extracts the front-matter block from a post document.
func ParseFrontMatter(data []byte) (*FrontMatter, error) {
	content := string(data)
	if !strings.HasPrefix(content, "---\n") {
		return nil, fmt.Errorf("no front-matter block")
	}

	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, fmt.Errorf("unterminated front-matter block")
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}
	return &fm, nil
}

// ParseFrontMatterFile reads path and parses its front-matter block.
func ParseFrontMatterFile(path string) (*FrontMatter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	fm, err := ParseFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fm, nil
}
