package pathlang

import "time"

// DefaultHistorySize bounds the undo stack when NewHistory is given no
// explicit size.
const DefaultHistorySize = 200

// Entry is one history record: an immutable textual snapshot of the
// document with a user-facing label. It never references the live Path, so
// later mutation cannot corrupt history.
type Entry struct {
	Path  string
	Label string
	Time  time.Time
}

// History is a bounded linear undo/redo stack of serialized snapshots,
// a record slice indexed by an integer pointer. Pushing while not at the
// head discards the redo branch; pushing past the bound evicts the oldest
// entry. Suppressing pushes of unchanged snapshots is the caller's
// contract, History records whatever it is given.
//
// History is owned by a single caller and performs no locking.
type History struct {
	entries []Entry
	index   int // current entry, -1 when empty
	maxSize int
}

// NewHistory returns a history bounded to maxSize entries,
// DefaultHistorySize when zero or negative.
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultHistorySize
	}
	return &History{index: -1, maxSize: maxSize}
}

// Push records a snapshot as the new head. Any redo branch is discarded
// and the oldest entry is evicted when the bound is reached.
func (h *History) Push(snapshot, label string) {
	if h.index < len(h.entries)-1 {
		h.entries = h.entries[:h.index+1]
	}
	h.entries = append(h.entries, Entry{Path: snapshot, Label: label, Time: time.Now()})
	if h.maxSize < len(h.entries) {
		copy(h.entries, h.entries[len(h.entries)-h.maxSize:])
		h.entries = h.entries[:h.maxSize]
	}
	h.index = len(h.entries) - 1
}

// CanUndo reports whether an older snapshot exists.
func (h *History) CanUndo() bool {
	return 0 < h.index
}

// CanRedo reports whether Undo has moved off the head.
func (h *History) CanRedo() bool {
	return h.index < len(h.entries)-1
}

// Undo steps back and returns the entry to restore. It is a no-op
// returning false at the oldest entry or on an empty history.
func (h *History) Undo() (Entry, bool) {
	if !h.CanUndo() {
		return Entry{}, false
	}
	h.index--
	return h.entries[h.index], true
}

// Redo steps forward and returns the entry to restore. It is a no-op
// returning false at the head.
func (h *History) Redo() (Entry, bool) {
	if !h.CanRedo() {
		return Entry{}, false
	}
	h.index++
	return h.entries[h.index], true
}

// Head returns the current entry.
func (h *History) Head() (Entry, bool) {
	if h.index < 0 {
		return Entry{}, false
	}
	return h.entries[h.index], true
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear drops all entries.
func (h *History) Clear() {
	h.entries = nil
	h.index = -1
}
