package tui

import (
	"fmt"

	"github.com/cory-johannsen/tallgrass/internal/game/battle"
)

const moreMarker = " --more-- "

// pager shows queued messages one at a time on the top line. Any key
// dismisses the current message.
type pager struct {
	queue []battle.Message
}

// push appends msgs. A message already queued gains More when msgs is non-empty.
func (p *pager) push(msgs *battle.Messages) {
	if msgs.Len() == 0 {
		return
	}
	if n := len(p.queue); n > 0 {
		p.queue[n-1].More = true
	}
	for msg := range msgs.All() {
		p.queue = append(p.queue, msg)
	}
}

// active reports whether a message is waiting to be dismissed.
func (p *pager) active() bool { return len(p.queue) > 0 }

// dismiss drops the current message.
func (p *pager) dismiss() {
	if len(p.queue) > 0 {
		p.queue = p.queue[1:]
	}
}

// line renders the top line: the current message padded to the message
// width, followed by the more marker when another message is queued.
func (p *pager) line() string {
	if len(p.queue) == 0 {
		return ""
	}
	head := p.queue[0]
	text := styleMessage.Render(fmt.Sprintf("%-*s", battle.MessageWidth, head.Text))
	if head.More {
		text += styleMore.Render(moreMarker)
	}
	return text
}
