package battle

import (
	"fmt"
	"iter"
)

// MessageWidth is the widest message shown; longer text is truncated.
const MessageWidth = 70

// Message is one formatted line of battle narration.
type Message struct {
	Text string
	// More is true when another message follows this one.
	More bool
}

type messageEntry struct {
	format string
	args   []any
}

// Messages is a finite queue of narration. Entries are formatted only when
// iterated, and iteration can be repeated from the start any number of times.
//
// A nil *Messages is an empty queue.
type Messages struct {
	entries []messageEntry
}

// Add appends a message built from a fmt format and its arguments.
func (m *Messages) Add(format string, args ...any) {
	m.entries = append(m.entries, messageEntry{format: format, args: args})
}

// Len returns the number of queued messages.
func (m *Messages) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// All yields every message in order.
func (m *Messages) All() iter.Seq[Message] {
	return func(yield func(Message) bool) {
		if m == nil {
			return
		}
		for i, e := range m.entries {
			msg := Message{Text: truncate(fmt.Sprintf(e.format, e.args...)), More: i < len(m.entries)-1}
			if !yield(msg) {
				return
			}
		}
	}
}

// Texts collects the formatted text of every message.
func (m *Messages) Texts() []string {
	out := make([]string, 0, m.Len())
	for msg := range m.All() {
		out = append(out, msg.Text)
	}
	return out
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= MessageWidth {
		return s
	}
	return string(r[:MessageWidth])
}
