package lspchange

import (
	"testing"

	"github.com/dshills/texteng/internal/engine/text"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func rng(startLine, startChar, endLine, endChar uint32) *protocol.Range {
	return &protocol.Range{
		Start: protocol.Position{Line: startLine, Character: startChar},
		End:   protocol.Position{Line: endLine, Character: endChar},
	}
}

func TestFromContentChangeFullDocument(t *testing.T) {
	change := protocol.TextDocumentContentChangeEvent{Text: "whole new document"}
	got := FromContentChange(change)
	want := text.NewReplaceFull("whole new document")
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFromContentChangeDelete(t *testing.T) {
	change := protocol.TextDocumentContentChangeEvent{Range: rng(0, 1, 0, 3), Text: ""}
	got := FromContentChange(change)
	want := text.NewDelete(text.Point{Row: 0, Column: 1}, text.Point{Row: 0, Column: 3})
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFromContentChangeInsert(t *testing.T) {
	change := protocol.TextDocumentContentChangeEvent{Range: rng(2, 4, 2, 4), Text: "hi"}
	got := FromContentChange(change)
	want := text.NewInsert(text.Point{Row: 2, Column: 4}, "hi")
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFromContentChangeReplace(t *testing.T) {
	change := protocol.TextDocumentContentChangeEvent{Range: rng(0, 0, 1, 2), Text: "hi"}
	got := FromContentChange(change)
	want := text.NewReplace(text.Point{Row: 0, Column: 0}, text.Point{Row: 1, Column: 2}, "hi")
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestApplyRunsChangesInOrder(t *testing.T) {
	tx := text.New("", text.WithEncoding(text.UTF16))
	changes := []protocol.TextDocumentContentChangeEvent{
		{Range: rng(0, 0, 0, 0), Text: "hello"},
		{Range: rng(0, 5, 0, 5), Text: " world"},
	}
	if err := Apply(tx, changes, text.NoopObserver{}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := tx.Text(), "hello world"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}
