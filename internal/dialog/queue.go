package dialog

// playerQueue holds one player's pending dialogs plus the display state for
// the head entry. The live widget map is non-nil exactly while displaying and
// is rebuilt from scratch on every present.
type playerQueue struct {
	player     PlayerID
	entries    []*Entry // head at index 0
	displaying bool
	live       map[string]*Button // widget handle -> button
}

func newPlayerQueue(player PlayerID) *playerQueue {
	return &playerQueue{player: player}
}

func (q *playerQueue) head() *Entry {
	if len(q.entries) == 0 {
		return nil
	}
	return q.entries[0]
}

func (q *playerQueue) empty() bool {
	return len(q.entries) == 0
}

func (q *playerQueue) push(e *Entry) {
	q.entries = append(q.entries, e)
}

// insertAfterHead places e so it is shown directly after whatever is first in
// line, keeping it ahead of dialogs enqueued by unrelated producers.
func (q *playerQueue) insertAfterHead(e *Entry) {
	if len(q.entries) == 0 {
		q.entries = append(q.entries, e)
		return
	}
	q.entries = append(q.entries, nil)
	copy(q.entries[2:], q.entries[1:])
	q.entries[1] = e
}

func (q *playerQueue) indexOf(e *Entry) int {
	for i, cur := range q.entries {
		if cur == e {
			return i
		}
	}
	return -1
}

func (q *playerQueue) removeAt(idx int) {
	q.entries = append(q.entries[:idx], q.entries[idx+1:]...)
}
