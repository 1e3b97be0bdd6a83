package shader

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/logger"
)

// Watcher reports programs whose GLSL sources changed on disk.
//
// Events are collected on a background goroutine into a pending set; the
// render thread calls Pending once per frame and recompiles on its own
// thread.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changed pendingSet
	done    chan struct{}
	log     *zap.Logger
}

// NewWatcher watches dir for changes to *.vert and *.frag files.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("shader watcher: watch %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:  fsw,
		done: make(chan struct{}),
		log:  logger.Named("shader"),
	}
	go w.run()

	w.log.Info("watching shaders", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, ok := programName(event.Name); ok {
				w.changed.add(name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}

// Pending returns each changed program name once, in first-seen order,
// and clears the set. It never blocks on the event goroutine.
func (w *Watcher) Pending() []string {
	return w.changed.take()
}

// Close stops watching and waits for the event goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

// pendingSet is an ordered set of program names safe for one writer and
// one reader.
type pendingSet struct {
	mu    sync.Mutex
	names []string
}

func (p *pendingSet) add(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if slices.Contains(p.names, name) {
		return
	}
	p.names = append(p.names, name)
}

func (p *pendingSet) take() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := p.names
	p.names = nil
	return names
}

// programName maps a shader file path to its program name.
func programName(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != ".vert" && ext != ".frag" {
		return "", false
	}
	name := strings.TrimSuffix(base, ext)
	if name == "" {
		return "", false
	}
	return name, true
}
