package scene

import (
	"time"
)

// Update is what one evaluation of the active scene asks the world to do, in
// order: apply Effects, then write Pose.
type Update struct {
	Scene    Scene
	Effects  []Effect
	Pose     Pose
	Finished bool
	Skipped  bool
}

// Director evaluates the active scene of a session against the frame clock.
type Director struct {
	cfg Config
}

func NewDirector(cfg Config) *Director {
	return &Director{cfg: cfg}
}

func (d *Director) Config() Config { return d.cfg }

// SetConfig swaps the tuning. A running scene picks up the new timings on its
// next evaluation.
func (d *Director) SetConfig(cfg Config) { d.cfg = cfg }

// Advance runs the active scene up to now. Entry effects of every phase that
// started since the last call fire once, in phase order, even when a long frame
// jumps over several phases. Once the last phase is over the finish effects
// fire, the final pose is written and the session is cleared.
func (d *Director) Advance(s *Session, now time.Duration) Update {
	if !s.Frozen() {
		return Update{}
	}
	sch := d.cfg.schedule(s.Active)
	up := Update{Scene: s.Active}
	elapsed := max(now-s.Start, 0)

	for s.Step < len(sch.phases) && elapsed >= sch.start(s.Step) {
		up.Effects = append(up.Effects, sch.phases[s.Step].enter...)
		s.Step++
	}

	if elapsed >= sch.total() {
		up.Effects = append(up.Effects, sch.finish...)
		up.Pose = sch.final
		up.Finished = true
		s.Clear()
		return up
	}

	i := s.Step - 1
	start, end := sch.start(i), sch.phases[i].end
	progress := 1.0
	if end > start {
		progress = float64(elapsed-start) / float64(end-start)
	}
	up.Pose = sch.pose(i, progress)
	return up
}

// Skip ends the active scene at once. Every entry effect that has not fired
// yet is applied except audio ones, the finish effects run and everything is
// snapped to its final pose. Playing effects are stopped unless the scene is
// an intro.
func (d *Director) Skip(s *Session) Update {
	if !s.Frozen() {
		return Update{}
	}
	sch := d.cfg.schedule(s.Active)
	up := Update{Scene: s.Active, Pose: sch.final, Finished: true, Skipped: true}

	for i := s.Step; i < len(sch.phases); i++ {
		for _, e := range sch.phases[i].enter {
			if !e.Audio() {
				up.Effects = append(up.Effects, e)
			}
		}
	}
	if !sch.keepAudio {
		up.Effects = append(up.Effects, Effect{Kind: StopEffects})
	}
	for _, e := range sch.finish {
		if e.Kind != StopEffects {
			up.Effects = append(up.Effects, e)
		}
	}
	s.Clear()
	return up
}
