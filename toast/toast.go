// Package toast is the process-wide notification channel. Producers fire
// ephemeral messages; one rendering surface subscribes to the active queue.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification for rendering.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Toast is one active notification. Multiple toasts coexist rather than
// replace one another, in insertion order.
type Toast struct {
	ID       string
	Level    Level
	Message  string
	Duration time.Duration
}

// Listener receives the active queue after every change.
type Listener func(active []Toast)

// Channel fans notifications out to subscribers and expires each toast after
// its own duration.
type Channel struct {
	mu        sync.Mutex
	active    []Toast
	listeners map[int]Listener
	nextID    int
}

func NewChannel() *Channel {
	return &Channel{listeners: make(map[int]Listener)}
}

// Success publishes a success toast.
func (c *Channel) Success(message string, duration time.Duration) {
	c.publish(LevelSuccess, message, duration)
}

// Error publishes an error toast.
func (c *Channel) Error(message string, duration time.Duration) {
	c.publish(LevelError, message, duration)
}

// Info publishes an informational toast.
func (c *Channel) Info(message string, duration time.Duration) {
	c.publish(LevelInfo, message, duration)
}

// Subscribe registers a listener and immediately delivers the current queue.
// The returned function unsubscribes.
func (c *Channel) Subscribe(fn Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	fn(snapshot)
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Active returns the current queue.
func (c *Channel) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Channel) publish(level Level, message string, duration time.Duration) {
	t := Toast{
		ID:       uuid.NewString(),
		Level:    level,
		Message:  message,
		Duration: duration,
	}

	c.mu.Lock()
	c.active = append(c.active, t)
	notify := c.notificationLocked()
	c.mu.Unlock()
	notify()

	time.AfterFunc(duration, func() { c.expire(t.ID) })
}

func (c *Channel) expire(id string) {
	c.mu.Lock()
	var notify func()
	for i := range c.active {
		if c.active[i].ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			notify = c.notificationLocked()
			break
		}
	}
	c.mu.Unlock()
	if notify != nil {
		notify()
	}
}

func (c *Channel) snapshotLocked() []Toast {
	return append([]Toast(nil), c.active...)
}

// notificationLocked captures the queue and listener set so the callbacks run
// outside the lock; a listener is allowed to publish in response.
func (c *Channel) notificationLocked() func() {
	snapshot := c.snapshotLocked()
	fns := make([]Listener, 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	return func() {
		for _, fn := range fns {
			fn(snapshot)
		}
	}
}
