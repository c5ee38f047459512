package texture

import (
	"sync"

	"go.uber.org/zap"
)

// PickFunc asks the user for a texture pack. An empty path means the user
// cancelled.
type PickFunc func() (string, error)

// PackRequest hands a texture pack chosen on another goroutine, such as a
// native file dialog, to the render thread. Only one pick runs at a time.
type PackRequest struct {
	log *zap.Logger

	mu      sync.Mutex
	path    string
	pending bool
	picking bool
}

// NewPackRequest creates an empty request.
func NewPackRequest(log *zap.Logger) *PackRequest {
	if log == nil {
		log = zap.NewNop()
	}
	return &PackRequest{log: log}
}

// Pick runs pick on its own goroutine and queues the chosen path.
// Returns false without calling pick while an earlier pick is still open.
func (r *PackRequest) Pick(pick PickFunc) bool {
	r.mu.Lock()
	if r.picking {
		r.mu.Unlock()
		return false
	}
	r.picking = true
	r.mu.Unlock()

	go func() {
		path, err := pick()

		r.mu.Lock()
		defer r.mu.Unlock()
		r.picking = false
		switch {
		case err != nil:
			r.log.Warn("texture pack dialog failed", zap.Error(err))
		case path == "":
			r.log.Debug("texture pack dialog cancelled")
		default:
			r.path = path
			r.pending = true
		}
	}()
	return true
}

// Request queues path directly.
func (r *PackRequest) Request(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = path
	r.pending = true
}

// Take returns the queued path, if any, and clears it.
func (r *PackRequest) Take() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.pending {
		return "", false
	}
	r.pending = false
	return r.path, true
}

// Picking reports whether a pick is still open.
func (r *PackRequest) Picking() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.picking
}
