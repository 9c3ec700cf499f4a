// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package news

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Rotation is the featured-slider index state: a cyclic cursor over the
// featured subset. The index always stays in [0, count) and wraps in both
// directions. An optional ticker advances it automatically; manual
// navigation does not pause the ticker.
type Rotation struct {
	mu    sync.Mutex
	index int
	count int
}

// NewRotation creates a rotation over count slides. A count below 1 is
// treated as 1 so the cursor arithmetic stays defined.
func NewRotation(count int) *Rotation {
	if count < 1 {
		count = 1
	}
	return &Rotation{count: count}
}

// Index returns the current slide index.
func (r *Rotation) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Advance moves to the next slide, wrapping from the last back to 0.
func (r *Rotation) Advance() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % r.count
	return r.index
}

// Retreat moves to the previous slide, wrapping from 0 to the last.
func (r *Rotation) Retreat() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index == 0 {
		r.index = r.count - 1
	} else {
		r.index--
	}
	return r.index
}

// GoTo jumps directly to slide i. Out-of-range targets are ignored and the
// current index is returned unchanged.
func (r *Rotation) GoTo(i int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i >= 0 && i < r.count {
		r.index = i
	}
	return r.index
}

// Resize updates the slide count after a feed refresh and clamps the
// current index into the new range.
func (r *Rotation) Resize(count int) {
	if count < 1 {
		count = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count = count
	if r.index >= count {
		r.index = 0
	}
}

// Run auto-advances the rotation on the given interval until the context
// is cancelled. Intended to run in its own goroutine for the process
// lifetime; cancellation on shutdown stops the ticker.
func (r *Rotation) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 6 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("featured rotation stopped")
			return
		case <-ticker.C:
			r.Advance()
		}
	}
}
