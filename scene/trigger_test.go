package scene

import (
	"testing"
	"time"
)

func TestTriggerQueueStartsFirstWhenIdle(t *testing.T) {
	var q TriggerQueue
	s := NewSession("ground")

	q.Push(Intro{})
	started := q.Consume(s, time.Second)
	if started == nil || started.Kind() != KindIntro {
		t.Fatalf("started = %v", started)
	}
	if !s.Frozen() || s.Start != time.Second || s.Step != 0 {
		t.Fatalf("session not started: %+v", s)
	}
	if q.Pending() != nil || q.Dropped() != 0 {
		t.Fatalf("pending = %v, dropped = %d", q.Pending(), q.Dropped())
	}
}

func TestTriggerQueueSameFrameRequests(t *testing.T) {
	tests := []struct {
		name        string
		push        []Scene
		wantPending Kind
		wantDropped int
	}{
		{
			name:        "second is held",
			push:        []Scene{ActivateButton{}, MapTransition{Target: "dirt"}},
			wantPending: KindMapTransition,
		},
		{
			name:        "third is dropped",
			push:        []Scene{ActivateButton{}, MapTransition{Target: "dirt"}, Won{}},
			wantPending: KindMapTransition,
			wantDropped: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q TriggerQueue
			s := NewSession("ground")
			for _, sc := range tt.push {
				q.Push(sc)
			}
			started := q.Consume(s, 0)
			if started == nil || started.Kind() != KindActivateButton {
				t.Fatalf("started = %v", started)
			}
			if p := q.Pending(); p == nil || p.Kind() != tt.wantPending {
				t.Fatalf("pending = %v, want %s", p, tt.wantPending)
			}
			if q.Dropped() != tt.wantDropped {
				t.Fatalf("dropped = %d, want %d", q.Dropped(), tt.wantDropped)
			}

			s.Clear()
			next := q.Consume(s, time.Second)
			if next == nil || next.Kind() != tt.wantPending || s.Start != time.Second {
				t.Fatalf("held request did not start once idle: %v", next)
			}
		})
	}
}

func TestTriggerQueueHoldsOneWhileActive(t *testing.T) {
	var q TriggerQueue
	s := NewSession("ground")
	s.Begin(Intro{}, 0)

	q.Push(MapTransition{Target: "dirt"})
	if started := q.Consume(s, time.Second); started != nil {
		t.Fatalf("nothing should start while a scene is active")
	}
	q.Push(Won{})
	q.Consume(s, 2*time.Second)
	if p := q.Pending(); p == nil || p.Kind() != KindMapTransition {
		t.Fatalf("pending = %v, want the first request", p)
	}
	if q.Dropped() != 1 {
		t.Fatalf("dropped = %d", q.Dropped())
	}

	s.Clear()
	started := q.Consume(s, 3*time.Second)
	if started == nil || started.Kind() != KindMapTransition || s.Start != 3*time.Second {
		t.Fatalf("held request did not start once idle: %v", started)
	}
	if q.Consume(s, 4*time.Second) != nil {
		t.Fatalf("held request started twice")
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession("ground")
	s.SwapMap("stone")
	s.Won = true
	s.Begin(Won{}, 0)
	v := s.MapVersion

	s.Reset("ground")
	if s.Won || s.Frozen() || s.Map != "ground" || s.MapVersion != v+1 {
		t.Fatalf("reset session = %+v", s)
	}
	if _, ok := s.ActiveKind(); ok {
		t.Fatalf("no active kind expected")
	}
}
