// Package post holds the pure domain logic of the scaffolder: slug and
// filename derivation, front-matter date formatting, tag resolution, and
// front-matter parsing for existing posts. Everything here is deterministic
// given its inputs; all I/O lives in the scaffold and cli packages.
package post
