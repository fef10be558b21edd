package audio

import (
	"errors"
	"sync"
)

var (
	// ErrSuspended is returned while the context has not been resumed.
	ErrSuspended = errors.New("audio context suspended")
	// ErrUnsupportedFormat is returned for files no decoder handles.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// State is the lifecycle of a Context.
type State int

const (
	StateSuspended State = iota
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateSuspended:
		return "suspended"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Context gates analysis. It starts suspended; nothing is analysed until
// Resume is called, typically in response to a user action.
type Context struct {
	mu      sync.Mutex
	state   State
	resumed chan struct{}
}

func NewContext() *Context {
	return &Context{resumed: make(chan struct{})}
}

func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Resume moves a suspended context to running. The returned channel is
// closed once the context runs; it never closes for a closed context.
func (c *Context) Resume() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSuspended {
		c.state = StateRunning
		close(c.resumed)
	}
	return c.resumed
}

// Suspend pauses analysis until the next Resume.
func (c *Context) Suspend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateRunning {
		c.state = StateSuspended
		c.resumed = make(chan struct{})
	}
}

// Close stops the context for good.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateClosed
}
