package state

import (
	"fmt"
	"testing"
)

func TestShowCaption_SetsCurrentAndLogs(t *testing.T) {
	c := NewCaptions()
	c.ShowCaption("Moved tile.")

	if c.Current != "Moved tile." {
		t.Errorf("Current = %q, want %q", c.Current, "Moved tile.")
	}
	if len(c.Messages) != 1 || c.Messages[0] != "Moved tile." {
		t.Errorf("Messages = %v, want [Moved tile.]", c.Messages)
	}
}

func TestClearCaption_KeepsLog(t *testing.T) {
	c := NewCaptions()
	c.ShowCaption("Invalid move.")
	c.ClearCaption()

	if c.Current != "" {
		t.Errorf("Current = %q, want empty", c.Current)
	}
	if len(c.Messages) != 1 {
		t.Errorf("len(Messages) = %d, want 1", len(c.Messages))
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	c := NewCaptions()
	for i := 1; i <= 8; i++ {
		c.AddMessage(fmt.Sprintf("m%d", i))
	}

	if len(c.Messages) != MaxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(c.Messages), MaxMessages)
	}
	if c.Messages[0] != "m4" || c.Messages[4] != "m8" {
		t.Errorf("Messages = %v, want m4..m8", c.Messages)
	}
}

func TestRecent_ReturnsCopy(t *testing.T) {
	c := NewCaptions()
	c.AddMessage("a")
	recent := c.Recent()
	recent[0] = "changed"

	if c.Messages[0] != "a" {
		t.Errorf("Recent() aliased the log: Messages[0] = %q", c.Messages[0])
	}
}

func TestClearMessages(t *testing.T) {
	c := NewCaptions()
	c.ShowCaption("x")
	c.ClearMessages()

	if c.Current != "" || len(c.Messages) != 0 {
		t.Errorf("after ClearMessages: Current = %q, Messages = %v", c.Current, c.Messages)
	}
}
