package extract

import "sync/atomic"

// CancelFlag is a one-way stop signal shared between the extraction
// goroutine and its caller. Each run owns its own flag; nothing is
// process-global.
type CancelFlag struct {
	set atomic.Bool
}

// Cancel requests a cooperative stop. Safe to call from any goroutine,
// and safe to call more than once.
func (c *CancelFlag) Cancel() {
	c.set.Store(true)
}

// Cancelled reports whether a stop has been requested. A nil flag never
// cancels, so Request.Cancel may be left unset.
func (c *CancelFlag) Cancelled() bool {
	return c != nil && c.set.Load()
}
