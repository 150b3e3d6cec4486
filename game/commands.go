package game

// Commands buffers session changes that must not happen while systems are
// still reading the session. They are applied when the frame ends.
type Commands struct {
	spawn  bool
	reset  bool
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues promotion of the next piece to the live piece.
func (c *Commands) Spawn() {
	c.spawn = true
}

// Reset queues a new round. A reset supersedes a queued spawn.
func (c *Commands) Reset() {
	c.reset = true
}

// Defer queues a function to run after spawns and resets.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued commands to the session and clears the buffer.
func (c *Commands) Flush(session *Session) {
	switch {
	case c.reset:
		session.reset()
	case c.spawn:
		session.promote()
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawn = false
	c.reset = false
	c.defers = c.defers[:0]
}
