package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// consoleHistory is the number of messages kept for /api/console
const consoleHistory = 200

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
	RenderID  string    `json:"renderId,omitempty"`
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Print(message)

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
			RenderID:  wl.renderID,
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

// consoleLog keeps the most recent console messages across renders
type consoleLog struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	limit    int
}

func newConsoleLog(limit int) *consoleLog {
	return &consoleLog{limit: limit}
}

// drain moves every message currently buffered in ch into the log
func (c *consoleLog) drain(ch <-chan ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for {
		select {
		case msg := <-ch:
			c.messages = append(c.messages, msg)
			if len(c.messages) > c.limit {
				c.messages = c.messages[len(c.messages)-c.limit:]
			}
		default:
			return
		}
	}
}

// recent returns a copy of the last n messages, oldest first
func (c *consoleLog) recent(n int) []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n <= 0 || n > len(c.messages) {
		n = len(c.messages)
	}
	out := make([]ConsoleMessage, n)
	copy(out, c.messages[len(c.messages)-n:])
	return out
}
