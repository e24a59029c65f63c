package pathlang

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(10)
	test.That(t, !h.CanUndo())
	test.That(t, !h.CanRedo())
	if _, ok := h.Undo(); ok {
		t.Fatal("undo on empty history")
	}

	h.Push("M0 0", "create")
	h.Push("M0 0L10 10", "line")
	h.Push("M0 0L10 10z", "close")
	test.T(t, h.Len(), 3)

	e, ok := h.Undo()
	test.That(t, ok)
	test.String(t, e.Path, "M0 0L10 10")
	test.String(t, e.Label, "line")

	e, ok = h.Undo()
	test.That(t, ok)
	test.String(t, e.Path, "M0 0")
	test.That(t, !h.CanUndo())
	if _, ok := h.Undo(); ok {
		t.Fatal("undo past oldest entry")
	}

	e, ok = h.Redo()
	test.That(t, ok)
	test.String(t, e.Path, "M0 0L10 10")
	e, ok = h.Redo()
	test.That(t, ok)
	test.String(t, e.Path, "M0 0L10 10z")
	test.That(t, !h.CanRedo())
	if _, ok := h.Redo(); ok {
		t.Fatal("redo past head")
	}
}

func TestHistoryBranchTruncation(t *testing.T) {
	h := NewHistory(10)
	h.Push("M0 0", "a")
	h.Push("M1 1", "b")
	h.Push("M2 2", "c")
	h.Undo()
	h.Undo()
	test.That(t, h.CanRedo())

	h.Push("M9 9", "d")
	test.That(t, !h.CanRedo())
	test.T(t, h.Len(), 2)

	e, _ := h.Head()
	test.String(t, e.Path, "M9 9")
	e, ok := h.Undo()
	test.That(t, ok)
	test.String(t, e.Path, "M0 0")
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 3+5; i++ {
		h.Push(fmt.Sprintf("M%d 0", i), "step")
	}
	test.T(t, h.Len(), 3)

	e, _ := h.Head()
	test.String(t, e.Path, "M7 0")
	h.Undo()
	e, ok := h.Undo()
	test.That(t, ok)
	test.String(t, e.Path, "M5 0")
	test.That(t, !h.CanUndo())
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(0)
	test.T(t, h.maxSize, DefaultHistorySize)

	h.Push("M0 0", "a")
	h.Push("M1 1", "b")
	h.Clear()
	test.T(t, h.Len(), 0)
	test.That(t, !h.CanUndo())
	test.That(t, !h.CanRedo())
	if _, ok := h.Head(); ok {
		t.Fatal("head on cleared history")
	}
}
