package services

import "github.com/ragline/ragline/internal/core/domain"

// historyRing is a fixed-capacity ring buffer of answers. When full,
// the oldest answer is overwritten. Not safe for concurrent use; the
// owning service serialises access.
type historyRing struct {
	entries []domain.Answer
	head    int // next write position
	size    int // number of valid entries
}

// newHistoryRing creates a ring holding at most capacity answers.
// Capacity is clamped to a minimum of 1.
func newHistoryRing(capacity int) *historyRing {
	if capacity < 1 {
		capacity = 1
	}
	return &historyRing{entries: make([]domain.Answer, capacity)}
}

// append records an answer, evicting the oldest when the ring is full.
func (r *historyRing) append(a domain.Answer) {
	r.entries[r.head] = a
	r.head = (r.head + 1) % len(r.entries)
	if r.size < len(r.entries) {
		r.size++
	}
}

// recent returns up to limit answers, newest first. A non-positive
// limit returns everything retained.
func (r *historyRing) recent(limit int) []domain.Answer {
	n := r.size
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Answer, 0, n)
	for i := 1; i <= n; i++ {
		pos := (r.head - i + len(r.entries)) % len(r.entries)
		out = append(out, r.entries[pos])
	}
	return out
}
