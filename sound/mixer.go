// Package sound plays the game's effects and background tracks through the
// ebiten audio context.
package sound

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/thechase/assets"
	"github.com/milk9111/thechase/prefabs"
)

const (
	defaultEffectsVolume    = 0.3
	defaultBackgroundVolume = 0.2
)

// Mixer has two channels. Effects are one-shot and can overlap; the
// background channel loops a set of tracks together.
type Mixer struct {
	clips            map[string]string
	effectsVolume    float64
	backgroundVolume float64

	players map[string]*audio.Player
	failed  map[string]bool

	effects    []*audio.Player
	background []*audio.Player
	tracks     []string
}

func NewMixer(spec prefabs.AudioSpec) *Mixer {
	m := &Mixer{
		players: make(map[string]*audio.Player),
		failed:  make(map[string]bool),
	}
	m.Configure(spec)
	return m
}

// Configure applies volumes and clip names. Already playing sounds pick up
// the new volumes.
func (m *Mixer) Configure(spec prefabs.AudioSpec) {
	m.clips = spec.Clips
	m.effectsVolume = volumeOr(spec.EffectsVolume, defaultEffectsVolume)
	m.backgroundVolume = volumeOr(spec.BackgroundVolume, defaultBackgroundVolume)
	for _, p := range m.effects {
		p.SetVolume(m.effectsVolume)
	}
	for _, p := range m.background {
		p.SetVolume(m.backgroundVolume)
	}
}

func (m *Mixer) PlayEffect(name string) {
	p := m.player(name, "effect", false)
	if p == nil {
		return
	}
	p.SetVolume(m.effectsVolume)
	if err := p.Rewind(); err != nil {
		log.Printf("sound: rewind %s: %v", name, err)
	}
	p.Play()
	if !slices.Contains(m.effects, p) {
		m.effects = append(m.effects, p)
	}
}

func (m *Mixer) StopEffects() {
	for _, p := range m.effects {
		p.Pause()
	}
	m.effects = m.effects[:0]
}

// PlayBackground replaces the looping tracks. Asking for the tracks that are
// already loaded resumes them instead of restarting.
func (m *Mixer) PlayBackground(tracks []string) {
	if slices.Equal(tracks, m.tracks) && len(m.background) > 0 {
		m.ResumeBackground()
		return
	}
	for _, p := range m.background {
		p.Pause()
	}
	m.background = m.background[:0]
	m.tracks = append(m.tracks[:0], tracks...)
	for _, name := range tracks {
		p := m.player(name, "background", true)
		if p == nil {
			continue
		}
		p.SetVolume(m.backgroundVolume)
		if err := p.Rewind(); err != nil {
			log.Printf("sound: rewind %s: %v", name, err)
		}
		p.Play()
		m.background = append(m.background, p)
	}
}

func (m *Mixer) PauseBackground() {
	for _, p := range m.background {
		p.Pause()
	}
}

func (m *Mixer) ResumeBackground() {
	for _, p := range m.background {
		if !p.IsPlaying() {
			p.Play()
		}
	}
}

func (m *Mixer) player(name, channel string, loop bool) *audio.Player {
	key := channel + ":" + name
	if p, ok := m.players[key]; ok {
		return p
	}
	if m.failed[key] {
		return nil
	}
	p, err := assets.LoadAudioPlayer(clipPath(m.clips, name), loop)
	if err != nil {
		m.failed[key] = true
		log.Printf("sound: load %s %q: %v", channel, name, err)
		return nil
	}
	m.players[key] = p
	return p
}

// clipPath resolves a clip name through the configured table. Unknown names
// are looked up as audio/<name>.wav.
func clipPath(clips map[string]string, name string) string {
	if p, ok := clips[name]; ok && p != "" {
		return p
	}
	if strings.Contains(name, "/") {
		return name
	}
	return fmt.Sprintf("audio/%s.wav", name)
}

func volumeOr(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return min(v, 1)
}
