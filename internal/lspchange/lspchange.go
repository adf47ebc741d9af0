// Package lspchange maps LSP textDocument/didChange content-change events
// onto text.Change values, so a Text can be driven directly by a language
// server's wire protocol.
//
// LSP positions are UTF-16 code unit offsets (protocol.Position.Character),
// so a Text fed through FromContentChange should be constructed with
// text.WithEncoding(text.UTF16) to interpret those columns correctly.
package lspchange

import (
	"github.com/dshills/texteng/internal/engine/text"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// FromContentChange maps a single TextDocumentContentChangeEvent to a
// text.Change, grounded on the four-way dispatch a conforming LSP server
// applies to incremental sync events:
//
//   - Range == nil: the event replaces the whole document (ReplaceFull).
//   - Text == "": the event deletes its range (Delete).
//   - Range.Start == Range.End: the event inserts at a point (Insert).
//   - otherwise: the event replaces its range (Replace).
func FromContentChange(change protocol.TextDocumentContentChangeEvent) text.Change {
	if change.Range == nil {
		return text.NewReplaceFull(change.Text)
	}

	start := pointFromPosition(change.Range.Start)
	end := pointFromPosition(change.Range.End)

	if change.Text == "" {
		return text.NewDelete(start, end)
	}
	if start == end {
		return text.NewInsert(start, change.Text)
	}
	return text.NewReplace(start, end, change.Text)
}

// FromContentChanges maps a whole didChange batch in order, the same order
// an LSP client guarantees its content changes must be applied in.
func FromContentChanges(changes []protocol.TextDocumentContentChangeEvent) []text.Change {
	out := make([]text.Change, len(changes))
	for i, c := range changes {
		out[i] = FromContentChange(c)
	}
	return out
}

// Apply runs every change in changes against t in order, notifying obs for
// each one, stopping and returning the first error encountered.
func Apply(t *text.Text, changes []protocol.TextDocumentContentChangeEvent, obs text.Observer) error {
	for _, c := range changes {
		if err := t.Update(FromContentChange(c), obs); err != nil {
			return err
		}
	}
	return nil
}

func pointFromPosition(p protocol.Position) text.Point {
	return text.Point{Row: int(p.Line), Column: int(p.Character)}
}
