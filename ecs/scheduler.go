package ecs

// System is one pass of the frame. C carries the per-frame context (clock,
// input, session) so systems never reach for globals.
type System[C any] interface {
	Update(w *World, ctx C)
}

// Scheduler runs systems in registration order.
type Scheduler[C any] struct {
	systems []System[C]
}

func NewScheduler[C any](systems ...System[C]) *Scheduler[C] {
	copied := append([]System[C](nil), systems...)
	return &Scheduler[C]{systems: copied}
}

func (s *Scheduler[C]) Add(system System[C]) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler[C]) Update(w *World, ctx C) {
	for _, system := range s.systems {
		system.Update(w, ctx)
	}
}

func (s *Scheduler[C]) Systems() []System[C] {
	systems := make([]System[C], 0, len(s.systems))
	return append(systems, s.systems...)
}
