package levels

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Batch is a set of maps being decoded in the background. The frame loop polls
// Done and never blocks on it.
type Batch struct {
	mu   sync.Mutex
	maps map[string]*Map
	err  error
	done chan struct{}
}

// Preload decodes every named map from fsys concurrently.
func Preload(ctx context.Context, fsys fs.FS, names ...string) *Batch {
	b := &Batch{maps: make(map[string]*Map, len(names)), done: make(chan struct{})}
	go func() {
		defer close(b.done)
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(4)
		for _, name := range names {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				m, err := LoadMapFromFS(fsys, name)
				if err != nil {
					return fmt.Errorf("levels: preload %s: %w", name, err)
				}
				b.mu.Lock()
				b.maps[name] = m
				b.mu.Unlock()
				return nil
			})
		}
		err := g.Wait()
		b.mu.Lock()
		b.err = err
		b.mu.Unlock()
	}()
	return b
}

// Done reports whether every load finished (successfully or not).
func (b *Batch) Done() bool {
	if b == nil {
		return false
	}
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the batch finishes. Tools use it; the game polls Done.
func (b *Batch) Wait() error {
	<-b.done
	return b.Err()
}

func (b *Batch) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Get returns a loaded map. It reports false until that map has been decoded.
func (b *Batch) Get(name string) (*Map, bool) {
	if b == nil {
		return nil, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.maps[name]
	return m, ok
}
