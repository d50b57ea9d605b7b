// Package state holds the caption area shown by the front-ends: the caption
// currently on screen and a short log of recent ones.
package state

// MaxMessages is how many past captions the log keeps
const MaxMessages = 5

// Captions is the on-screen caption plus the recent message log
type Captions struct {
	Current string

	Messages []string
}

// NewCaptions creates an empty caption area
func NewCaptions() *Captions {
	return &Captions{
		Messages: make([]string, 0),
	}
}

// ShowCaption puts a caption on screen and records it in the log
func (c *Captions) ShowCaption(msg string) {
	c.Current = msg
	c.AddMessage(msg)
}

// ClearCaption removes the on-screen caption; the log is kept
func (c *Captions) ClearCaption() {
	c.Current = ""
}

// AddMessage adds a message to the log
func (c *Captions) AddMessage(msg string) {
	c.Messages = append(c.Messages, msg)

	// Keep only the last MaxMessages
	if len(c.Messages) > MaxMessages {
		c.Messages = c.Messages[len(c.Messages)-MaxMessages:]
	}
}

// ClearMessages clears the log and the on-screen caption
func (c *Captions) ClearMessages() {
	c.Current = ""
	c.Messages = make([]string, 0)
}

// Recent returns a copy of the log, oldest first
func (c *Captions) Recent() []string {
	out := make([]string, len(c.Messages))
	copy(out, c.Messages)
	return out
}
