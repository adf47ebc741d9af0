// Package tsedit translates text.UpdateContext values into tree-sitter
// InputEdit records, so a parsed syntax tree can be kept in sync with a
// Text incrementally instead of being reparsed from scratch on every edit.
package tsedit

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/dshills/texteng/internal/engine/text"
)

// TreeEditor adapts a *sitter.Tree to the text.Observer protocol: every
// edit applied to the watched Text is translated to an InputEdit and fed
// to Tree.Edit, keeping the tree's byte ranges valid for the next
// incremental Parser.ParseCtx call.
type TreeEditor struct {
	Tree *sitter.Tree
}

// Update implements text.Observer.
func (e TreeEditor) Update(ctx text.UpdateContext) error {
	e.Tree.Edit(EditFromContext(ctx))
	return nil
}

// EditFromContext computes the InputEdit for ctx: byte offsets are resolved
// against ctx.OldBreaklines (the pre-edit EOL index), and the new end
// point/byte account for every line terminator ctx.Change.Text introduces.
// The new-row column (see newEndPoint) is derived directly from the EOL
// index's RowStart convention so it stays consistent with how the watched
// Text itself computes row starts.
func EditFromContext(ctx text.UpdateContext) sitter.InputEdit {
	oldBr := ctx.OldBreaklines

	switch ctx.Change.Kind {
	case text.ChangeDelete:
		start := ctx.Change.Start
		end := ctx.Change.End
		startByte := oldBr.MustRowStart(start.Row) + start.Column
		endByte := oldBr.MustRowStart(end.Row) + end.Column

		return sitter.InputEdit{
			StartIndex:  uint32(startByte),
			OldEndIndex: uint32(endByte),
			NewEndIndex: uint32(startByte),
			StartPoint:  pointOf(start),
			OldEndPoint: pointOf(end),
			NewEndPoint: pointOf(start),
		}

	case text.ChangeInsert:
		at := ctx.Change.At
		startByte := oldBr.MustRowStart(at.Row) + at.Column
		newEndByte := startByte + len(ctx.Change.Text)

		return sitter.InputEdit{
			StartIndex:  uint32(startByte),
			OldEndIndex: uint32(startByte),
			NewEndIndex: uint32(newEndByte),
			StartPoint:  pointOf(at),
			OldEndPoint: pointOf(at),
			NewEndPoint: newEndPoint(at, ctx.Change.Text, ctx.Change.InsertedBreaks, startByte),
		}

	case text.ChangeReplace:
		start := ctx.Change.Start
		end := ctx.Change.End
		startByte := oldBr.MustRowStart(start.Row) + start.Column
		oldEndByte := oldBr.MustRowStart(end.Row) + end.Column
		newEndByte := startByte + len(ctx.Change.Text)

		return sitter.InputEdit{
			StartIndex:  uint32(startByte),
			OldEndIndex: uint32(oldEndByte),
			NewEndIndex: uint32(newEndByte),
			StartPoint:  pointOf(start),
			OldEndPoint: pointOf(end),
			NewEndPoint: newEndPoint(start, ctx.Change.Text, ctx.Change.InsertedBreaks, startByte),
		}

	default: // text.ChangeReplaceFull
		newBr := ctx.Breaklines
		return sitter.InputEdit{
			StartIndex:  0,
			OldEndIndex: uint32(len(ctx.OldStr)),
			NewEndIndex: uint32(len(ctx.Change.Text)),
			StartPoint:  sitter.Point{Row: 0, Column: 0},
			OldEndPoint: sitter.Point{
				Row:    uint(oldBr.RowCount() - 1),
				Column: uint(len(ctx.OldStr) - oldBr.LastRowStart()),
			},
			NewEndPoint: sitter.Point{
				Row:    uint(newBr.RowCount() - 1),
				Column: uint(len(ctx.Change.Text) - newBr.LastRowStart()),
			},
		}
	}
}

func pointOf(p text.Point) sitter.Point {
	return sitter.Point{Row: uint(p.Row), Column: uint(p.Column)}
}

// newEndPoint computes the post-edit point for an insertion/replacement
// that starts at from and whose inserted text is newText, with
// insertedBreaks holding the byte offsets (within the whole new buffer,
// already shifted by startByte) of every terminator introduced by newText.
func newEndPoint(from text.Point, newText string, insertedBreaks []int, startByte int) sitter.Point {
	if len(insertedBreaks) == 0 {
		return sitter.Point{Row: uint(from.Row), Column: uint(from.Column + len(newText))}
	}
	// The new row starts one byte past the last inserted terminator, so the
	// column is everything in newText after that terminator byte.
	last := insertedBreaks[len(insertedBreaks)-1]
	return sitter.Point{
		Row:    uint(from.Row + len(insertedBreaks)),
		Column: uint(len(newText) - (last - startByte) - 1),
	}
}
