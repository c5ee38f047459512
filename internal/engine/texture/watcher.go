package texture

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-announces files of a texture pack directory when they change on disk.
//
// fsnotify delivers on its own goroutine; changed names are only collected
// there. Poll must be called from the render thread to raise the events.
type Watcher struct {
	dir string
	x   *Extractor
	fs  *fsnotify.Watcher
	log *zap.Logger

	mu      sync.Mutex
	pending map[string]struct{}

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewWatcher starts watching dir.
func NewWatcher(dir string, x *Extractor, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		dir:     dir,
		x:       x,
		fs:      fsw,
		log:     log,
		pending: make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()

	log.Info("watching texture pack", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending[filepath.Base(ev.Name)] = struct{}{}
			w.mu.Unlock()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("texture pack watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Poll announces every file changed since the last call and returns how many were raised.
func (w *Watcher) Poll() int {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return 0
	}
	names := make([]string, 0, len(w.pending))
	for name := range w.pending {
		names = append(names, name)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	sort.Strings(names)
	raised := 0
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(w.dir, name))
		if err != nil {
			// Removed or still being written; a later event will retry
			w.log.Debug("changed file not readable", zap.String("file", name), zap.Error(err))
			continue
		}
		if len(data) == 0 {
			continue
		}
		w.log.Info("texture pack file changed", zap.String("file", name))
		w.x.Announce(name, data)
		raised++
	}
	return raised
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fs.Close()
		w.wg.Wait()
	})
	return w.closeErr
}
