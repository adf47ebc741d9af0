// Package text provides an incremental text buffer for editor and language
// server use: a single contiguous UTF-8 document mutated by row/column edits
// (insert, delete, replace, replace-full) and a synchronised end-of-line
// index, with structured edit descriptions pushed to Observer values so they
// can patch themselves (a cursor, a syntax tree) without re-scanning the
// whole document.
//
// The package provides:
//
//   - A flat EOL index supporting O(1) row-to-byte lookup and in-place splice
//   - Column translation across UTF-8, UTF-16, UTF-32, and NthChar encodings
//   - A single entry point, Update, dispatching on the edit kind
//   - The Observer capability, notified with the pre-edit state before the
//     text buffer itself is mutated
//   - A line iterator that builds no list of all rows up front; each row it
//     yields is a fresh string copy of that row's bytes
//
// Basic usage:
//
//	t := text.New("Hello, World!")
//	t.Insert(text.Point{Row: 0, Column: 7}, "Beautiful ", text.NoopObserver{})
//
// Text is not safe for concurrent use: it is an exclusive-writer resource
// mutated synchronously within a single edit call, with no internal locking.
// Callers that share a Text across goroutines must serialise access
// themselves.
package text
