package notification

import "strconv"

// Sequence issues the strictly increasing identifiers used within one
// generated document: one stream for notification ids, one for entry
// references. Both start at 1.
//
// A Sequence belongs to exactly one pipeline invocation. Concurrent messages
// each carry their own; the counters are never shared.
type Sequence struct {
	notification int64
	entry        int64
}

// NewSequence returns a fresh sequence with both streams at 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// NextNotification returns the next notification id.
func (s *Sequence) NextNotification() string {
	s.notification++
	return strconv.FormatInt(s.notification, 10)
}

// NextEntry returns the next entry reference.
func (s *Sequence) NextEntry() string {
	s.entry++
	return strconv.FormatInt(s.entry, 10)
}
