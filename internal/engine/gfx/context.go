package gfx

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sky/internal/engine/event"
)

// ContextLostEvent is raised when GPU resources become invalid.
type ContextLostEvent struct {
	Reason string
}

// Kind implements event.Event.
func (ContextLostEvent) Kind() event.Kind { return event.ContextLost }

// ContextRecreatedEvent is raised once GPU resources can be created again.
type ContextRecreatedEvent struct{}

// Kind implements event.Event.
func (ContextRecreatedEvent) Kind() event.Kind { return event.ContextRecreated }

// Context tracks whether the graphics context is lost and raises the
// matching events on transitions.
type Context struct {
	bus  *event.Bus
	log  *zap.Logger
	lost bool
}

// NewContext creates a context bound to bus.
func NewContext(bus *event.Bus, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{bus: bus, log: log}
}

// ContextLost reports whether the context is currently lost.
func (c *Context) ContextLost() bool {
	return c.lost
}

// Lose marks the context lost, lets listeners drop their resources, then
// calls free to release backend state. Returns false if already lost.
func (c *Context) Lose(reason string, free func()) bool {
	if c.lost {
		return false
	}
	c.lost = true
	c.log.Warn("graphics context lost", zap.String("reason", reason))

	c.bus.Raise(ContextLostEvent{Reason: reason})
	if free != nil {
		free()
	}
	return true
}

// Recreate calls restore to rebuild backend state, clears the lost flag and
// lets listeners rebuild. Returns false if the context was not lost.
func (c *Context) Recreate(restore func() error) (bool, error) {
	if !c.lost {
		return false, nil
	}
	if restore != nil {
		if err := restore(); err != nil {
			return false, err
		}
	}
	c.lost = false
	c.log.Info("graphics context recreated")

	c.bus.Raise(ContextRecreatedEvent{})
	return true, nil
}
