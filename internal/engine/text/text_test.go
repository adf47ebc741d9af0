package text

import (
	"reflect"
	"testing"
)

func TestInsertPastEndOfFile(t *testing.T) {
	tx := New("")
	if err := tx.Insert(Point{Row: 0, Column: 0}, "x", NoopObserver{}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if got, want := tx.Text(), "x"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := tx.eol.Offsets(), []int{0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("eol = %v, want %v", got, want)
	}

	if err := tx.Insert(Point{Row: 1, Column: 0}, "y", NoopObserver{}); err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if got, want := tx.Text(), "x\ny"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := tx.eol.Offsets(), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("eol = %v, want %v", got, want)
	}
}

func TestDeleteAcrossCRLF(t *testing.T) {
	tx := New("ab\r\ncd")
	if got, want := tx.eol.Offsets(), []int{0, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("initial eol = %v, want %v", got, want)
	}

	if err := tx.Delete(Point{Row: 0, Column: 2}, Point{Row: 1, Column: 0}, NoopObserver{}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, want := tx.Text(), "abcd"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := tx.eol.Offsets(), []int{0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("eol = %v, want %v", got, want)
	}
}

func TestReplaceThatGrows(t *testing.T) {
	tx := New("Hello\nWorld")
	if err := tx.Replace(Point{0, 0}, Point{0, 5}, "Greetings\nHi", NoopObserver{}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := tx.Text(), "Greetings\nHi\nWorld"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := tx.eol.Offsets(), []int{0, 9, 12}; !reflect.DeepEqual(got, want) {
		t.Fatalf("eol = %v, want %v", got, want)
	}
}

func TestReplaceThatShrinksSpanningLines(t *testing.T) {
	tx := New("abc\ndef\nghi")
	if got, want := tx.eol.Offsets(), []int{0, 3, 7}; !reflect.DeepEqual(got, want) {
		t.Fatalf("initial eol = %v, want %v", got, want)
	}

	if err := tx.Replace(Point{0, 1}, Point{2, 2}, "Z", NoopObserver{}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := tx.Text(), "aZi"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := tx.eol.Offsets(), []int{0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("eol = %v, want %v", got, want)
	}
}

func TestMultibyteIteration(t *testing.T) {
	tx := New("héllo\nシュタ\n")
	it := tx.Lines()
	var rows []string
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		rows = append(rows, line)
	}
	if got, want := len(rows), tx.RowCount(); got != want {
		t.Fatalf("iterated %d rows, want %d (RowCount)", got, want)
	}
	if got, want := rows, []string{"héllo", "シュタ", ""}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %#v, want %#v", got, want)
	}
}

func TestDeleteMultiline(t *testing.T) {
	tx := New("Hello, World!\nApples\n Oranges\nPears")
	err := tx.Delete(Point{Row: 1, Column: 3}, Point{Row: 3, Column: 2}, NoopObserver{})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, want := tx.Text(), "Hello, World!\nAppars"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func TestDeleteInLine(t *testing.T) {
	tx := New("Hello, World!\nApples\n Oranges\nPears")
	if err := tx.Delete(Point{0, 3}, Point{0, 5}, NoopObserver{}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, want := tx.Text(), "Hel, World!\nApples\n Oranges\nPears"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func TestInsertMultiLineInMiddle(t *testing.T) {
	tx := New("ABC\nDEF")
	if got, want := tx.eol.Offsets(), []int{0, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("initial eol = %v, want %v", got, want)
	}
	if err := tx.Insert(Point{1, 1}, "Hello,\n World!\n", NoopObserver{}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got, want := tx.Text(), "ABC\nDHello,\n World!\nEF"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := tx.eol.Offsets(), []int{0, 3, 11, 19}; !reflect.DeepEqual(got, want) {
		t.Fatalf("eol = %v, want %v", got, want)
	}
}

func TestInsertMultiByte(t *testing.T) {
	tx := New("シュタインズ・ゲートは素晴らしいです。")
	if got, want := tx.eol.Offsets(), []int{0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("initial eol = %v, want %v", got, want)
	}
	if err := tx.Insert(Point{0, 9}, "\nHello, ゲートWorld!\n", NoopObserver{}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got, want := tx.Text(), "シュタ\nHello, ゲートWorld!\nインズ・ゲートは素晴らしいです。"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

// noopFailObserver always fails, to exercise that an edit still commits even
// when its observer returns an error.
type noopFailObserver struct{}

func (noopFailObserver) Update(UpdateContext) error { return errFail }

var errFail = &InBetweenCharBoundariesError{Encoding: UTF8} // any non-nil error will do

func TestEditCommitsEvenWhenObserverFails(t *testing.T) {
	tx := New("abc")
	err := tx.Insert(Point{0, 0}, "X", noopFailObserver{})
	if err == nil {
		t.Fatal("expected observer error to be returned")
	}
	if got, want := tx.Text(), "Xabc"; got != want {
		t.Fatalf("text = %q, want %q (edit must still commit)", got, want)
	}
}

func TestObserverSeesOldStrBeforeMutation(t *testing.T) {
	tx := New("abc")
	var seenOld string
	obs := ObserverFunc(func(ctx UpdateContext) error {
		seenOld = ctx.OldStr
		return nil
	})
	if err := tx.Insert(Point{0, 0}, "X", obs); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if seenOld != "abc" {
		t.Fatalf("observer saw OldStr = %q, want %q", seenOld, "abc")
	}
	if got, want := tx.Text(), "Xabc"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}
