package game

import "strings"

// MsgPriority controls how a message is coloured in the HUD.
type MsgPriority uint8

const (
	MsgInfo    MsgPriority = iota // plain notices
	MsgScore                      // points earned
	MsgWarning                    // pad is sinking
	MsgCritical                   // life lost, game over
)

// Message is a single line in the pond log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog keeps the most recent lines, oldest first.
type MessageLog struct {
	Messages []Message
	maxSize  int
	width    int
}

// NewMessageLog creates a log holding at most maxSize lines, each wrapped to
// width characters.
func NewMessageLog(maxSize, width int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
		width:    width,
	}
}

// Add wraps text and appends the lines, evicting the oldest when full.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	for _, line := range wrapText(text, l.width) {
		if len(l.Messages) == l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages = l.Messages[:len(l.Messages)-1]
		}
		l.Messages = append(l.Messages, Message{Text: line, Priority: priority})
	}
}

// Clear empties the log.
func (l *MessageLog) Clear() {
	l.Messages = l.Messages[:0]
}

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
