// Package history is the bounded chat log: an append-only FIFO of messages
// with a capacity cap, plus a scroll cursor that only affects the view.
package history

import "time"

// Role identifies who produced a message.
type Role string

const (
	RoleUser   Role = "user"
	RolePet    Role = "pet"
	RoleSystem Role = "system"
)

// Message is one chat entry. Immutable once appended.
type Message struct {
	Role Role      `json:"role"`
	Text string    `json:"text"`
	Time time.Time `json:"time"`
}

// Store is a bounded FIFO message log. Not safe for concurrent use; the
// TUI loop is the single owner.
type Store struct {
	limit    int
	messages []Message

	// View cursor, in lines from the top. Never touches the log.
	offset int
}

// DefaultLimit matches the original 100-message chat window.
const DefaultLimit = 100

// New returns a store holding at most limit messages. Non-positive limits
// fall back to DefaultLimit.
func New(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{limit: limit}
}

// Append adds a message, evicting the oldest entry when at capacity.
func (s *Store) Append(m Message) {
	if len(s.messages) >= s.limit {
		// FIFO eviction; drop enough to respect a limit that shrank.
		excess := len(s.messages) - s.limit + 1
		s.messages = append(s.messages[:0], s.messages[excess:]...)
	}
	s.messages = append(s.messages, m)
}

// Clear empties the log unconditionally and resets the cursor.
func (s *Store) Clear() {
	s.messages = s.messages[:0]
	s.offset = 0
}

// All returns the messages oldest-first. The returned slice is a copy.
func (s *Store) All() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len reports the current number of messages.
func (s *Store) Len() int { return len(s.messages) }

// Limit reports the capacity cap.
func (s *Store) Limit() int { return s.limit }

// Replace swaps in a restored message list, trimming to the limit from the
// front so the newest messages survive. Used when reloading a session.
func (s *Store) Replace(msgs []Message) {
	if len(msgs) > s.limit {
		msgs = msgs[len(msgs)-s.limit:]
	}
	s.messages = append(s.messages[:0], msgs...)
	s.offset = 0
}

// Offset is the current scroll position in lines.
func (s *Store) Offset() int { return s.offset }

// Scroll moves the view cursor by delta lines, clamped to [0, max].
func (s *Store) Scroll(delta, max int) {
	s.offset += delta
	if s.offset < 0 {
		s.offset = 0
	}
	if s.offset > max {
		s.offset = max
	}
}

// ScrollToBottom pins the cursor to the end of the log.
func (s *Store) ScrollToBottom(max int) {
	s.offset = max
	if s.offset < 0 {
		s.offset = 0
	}
}
