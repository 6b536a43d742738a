package scene

import (
	"log"
	"time"
)

// TriggerQueue collects scene requests raised during a frame. Only one scene
// runs at a time: a request arriving while a scene is active is held, at most
// one is held, and anything beyond that is dropped.
type TriggerQueue struct {
	incoming []Scene
	pending  Scene
	dropped  int
}

func (q *TriggerQueue) Push(sc Scene) {
	if sc == nil {
		return
	}
	q.incoming = append(q.incoming, sc)
}

// Pending returns the held request, if any.
func (q *TriggerQueue) Pending() Scene { return q.pending }

// Dropped counts requests discarded so far.
func (q *TriggerQueue) Dropped() int { return q.dropped }

// Consume starts the oldest request at now when the session is idle and folds
// the rest of this frame's requests into the held slot. It returns the started
// scene or nil.
func (q *TriggerQueue) Consume(s *Session, now time.Duration) Scene {
	incoming := q.incoming
	var started Scene
	if !s.Frozen() {
		if q.pending == nil && len(incoming) > 0 {
			q.pending, incoming = incoming[0], incoming[1:]
		}
		if q.pending != nil {
			started, q.pending = q.pending, nil
			s.Begin(started, now)
		}
	}

	for _, sc := range incoming {
		if q.pending == nil {
			q.pending = sc
			continue
		}
		q.dropped++
		log.Printf("scene: drop %s trigger, %s already pending", sc.Kind(), q.pending.Kind())
	}
	clear(q.incoming)
	q.incoming = q.incoming[:0]
	return started
}

// Reset forgets every request, used when a new game starts.
func (q *TriggerQueue) Reset() {
	clear(q.incoming)
	q.incoming = q.incoming[:0]
	q.pending = nil
}
