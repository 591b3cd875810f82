package post

import (
	"path/filepath"
	"time"
)

// Request is the ephemeral state of one scaffold run. The timestamp is
// sampled once at the start of the run so the filename date and the
// front-matter date can never disagree across a second boundary.
type Request struct {
	Title    string
	Taken    time.Time
	Tags     []string
	Filename string
}

// NewRequest derives the target filename from the timestamp and title.
// Derivation is deterministic; there is no collision detection, so an
// existing file at the path is overwritten on write.
func NewRequest(title string, now time.Time, postsDir string) *Request {
	return &Request{
		Title:    title,
		Taken:    now,
		Filename: Filename(now, title, postsDir),
	}
}

// Filename returns <postsDir>/<YYYY-MM-DD>-<slug>.md. The date/slug
// separator is always present, so an empty title degenerates to a
// date-prefix-only name rather than an error.
func Filename(now time.Time, title, postsDir string) string {
	name := now.Format("2006-01-02") + "-" + Slugify(title)
	return filepath.Join(postsDir, name+".md")
}

// DateString formats the front-matter date as "YYYY-MM-DD HH:MM:SS <offset>".
// The offset is a caller-supplied literal, not derived from now's location;
// computing the real zone would change output compatibility.
func DateString(now time.Time, offset string) string {
	return now.Format("2006-01-02 15:04:05") + " " + offset
}
