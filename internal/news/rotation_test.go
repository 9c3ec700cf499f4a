// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package news

import (
	"context"
	"testing"
	"time"
)

func TestRotation_WrapsForward(t *testing.T) {
	r := NewRotation(4)
	for want := 1; want < 4; want++ {
		if got := r.Advance(); got != want {
			t.Fatalf("Advance: got %d, want %d", got, want)
		}
	}
	if got := r.Advance(); got != 0 {
		t.Errorf("Advance at last index: got %d, want wrap to 0", got)
	}
}

func TestRotation_WrapsBackward(t *testing.T) {
	r := NewRotation(4)
	if got := r.Retreat(); got != 3 {
		t.Errorf("Retreat at 0: got %d, want 3", got)
	}
	if got := r.Retreat(); got != 2 {
		t.Errorf("Retreat: got %d, want 2", got)
	}
}

func TestRotation_IndexAlwaysInRange(t *testing.T) {
	r := NewRotation(4)
	for i := 0; i < 25; i++ {
		var got int
		switch i % 3 {
		case 0:
			got = r.Advance()
		case 1:
			got = r.Retreat()
		default:
			got = r.GoTo(i % 4)
		}
		if got < 0 || got >= 4 {
			t.Fatalf("index %d out of [0,4) after step %d", got, i)
		}
	}
}

func TestRotation_GoToIgnoresOutOfRange(t *testing.T) {
	r := NewRotation(4)
	r.GoTo(2)
	if got := r.GoTo(7); got != 2 {
		t.Errorf("GoTo(7): got %d, want unchanged 2", got)
	}
	if got := r.GoTo(-1); got != 2 {
		t.Errorf("GoTo(-1): got %d, want unchanged 2", got)
	}
}

func TestRotation_ResizeClampsIndex(t *testing.T) {
	r := NewRotation(6)
	r.GoTo(5)
	r.Resize(4)
	if got := r.Index(); got != 0 {
		t.Errorf("Resize below index: got %d, want reset to 0", got)
	}
	r.GoTo(3)
	r.Resize(4)
	if got := r.Index(); got != 3 {
		t.Errorf("Resize keeping index: got %d, want 3", got)
	}
}

func TestRotation_SingleSlide(t *testing.T) {
	r := NewRotation(1)
	if got := r.Advance(); got != 0 {
		t.Errorf("Advance on single slide: got %d", got)
	}
	if got := r.Retreat(); got != 0 {
		t.Errorf("Retreat on single slide: got %d", got)
	}

	// Degenerate count is clamped so arithmetic stays defined.
	z := NewRotation(0)
	if got := z.Advance(); got != 0 {
		t.Errorf("Advance on clamped rotation: got %d", got)
	}
}

func TestRotation_RunStopsOnCancel(t *testing.T) {
	r := NewRotation(4)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()

	// Let the ticker advance at least once, then cancel.
	deadline := time.After(2 * time.Second)
	for r.Index() == 0 {
		select {
		case <-deadline:
			t.Fatal("rotation never advanced")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}
