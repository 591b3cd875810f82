package post

import "strings"

// DetectTags returns the known tags that occur as substrings of the
// lowercased title, preserving the order of the known list. Matching is
// substring, not word boundary: "rustic" matches "rust".
func DetectTags(title string, known []string) []string {
	lowered := strings.ToLower(title)
	var tags []string
	for _, tag := range known {
		if strings.Contains(lowered, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseTagList splits manually entered tags on commas, trimming and
// lowercasing each piece. Empty pieces are kept — a trailing comma yields an
// empty-string tag — and nothing is deduplicated. That mirrors what ends up
// in the written file byte for byte.
func ParseTagList(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, len(parts))
	for i, p := range parts {
		tags[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return tags
}
