package contract

import (
	"fmt"

	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
)

// Context is the per-attachment bundle handed to a mechanic at
// initialization. It carries non-owning, ID-based back-references to the
// owning actor and the payload entity the mechanic is attached to; the
// mechanic resolves them through World on demand and never assumes either
// still exists. Created once per attachment.
type Context struct {
	OwnerID   string
	PayloadID string
	World     WorldRef
	Rand      Rand
	Publisher logging.Publisher
	Tick      func() uint64
	Debug     bool
}

// CurrentTick reports the frame counter for event logging, tolerating a
// context constructed without a tick source.
func (c *Context) CurrentTick() uint64 {
	if c == nil || c.Tick == nil {
		return 0
	}
	return c.Tick()
}

// MustInitialized guards the lifecycle contract: calling any
// post-initialization operation before Initialize is a programming error,
// not a recoverable condition. The panic names the violating operation.
func MustInitialized(ctx *Context, kind Kind, op string) {
	if ctx == nil {
		panic(fmt.Sprintf("mechanic %q: %s before Initialize", kind, op))
	}
}
