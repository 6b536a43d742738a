package scene

import (
	"time"

	"github.com/milk9111/thechase/maps"
)

// Session is the mutable game state shared by the frame systems. It is owned
// by the runtime and handed to systems each frame; nothing keeps a global copy.
type Session struct {
	Won bool
	// Active is the running scene, nil when idle.
	Active Scene
	// Start is the frame clock reading when Active began.
	Start time.Duration
	// Step counts the phases of Active whose entry effects already ran.
	Step int
	Map  maps.ID
	// MapVersion is bumped on every map swap so a reload of the same map is
	// still seen as a change.
	MapVersion uint64
}

func NewSession(first maps.ID) *Session {
	return &Session{Map: first, MapVersion: 1}
}

// Frozen reports whether player control is suspended by a scene.
func (s *Session) Frozen() bool {
	return s != nil && s.Active != nil
}

// ActiveKind returns the kind of the running scene.
func (s *Session) ActiveKind() (Kind, bool) {
	if !s.Frozen() {
		return 0, false
	}
	return s.Active.Kind(), true
}

func (s *Session) Begin(sc Scene, now time.Duration) {
	s.Active = sc
	s.Start = now
	s.Step = 0
}

func (s *Session) Clear() {
	s.Active = nil
	s.Step = 0
}

// SwapMap makes id the live map. The map load system notices the new version
// on its next pass.
func (s *Session) SwapMap(id maps.ID) {
	s.Map = id
	s.MapVersion++
}

// Reset puts the session back to the start of a new game on first.
func (s *Session) Reset(first maps.ID) {
	s.Won = false
	s.Clear()
	s.SwapMap(first)
}
