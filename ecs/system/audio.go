package system

import (
	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
)

// AudioSink plays sounds. Calls are fire and forget; a sink that cannot find a
// clip logs it and carries on.
type AudioSink interface {
	PlayEffect(name string)
	StopEffects()
	PlayBackground(tracks []string)
	PauseBackground()
	ResumeBackground()
}

// AudioSystem hands this frame's audio requests to the sink and despawns them.
// Channel requests go first so a stop never cuts a sound requested in the same
// frame.
type AudioSystem struct {
	sink AudioSink
}

func NewAudioSystem(sink AudioSink) *AudioSystem {
	return &AudioSystem{sink: sink}
}

func RequestSound(w *ecs.World, effect string) {
	if w == nil || effect == "" {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.SoundRequestComponent.Kind(), &component.SoundRequest{Effect: effect})
}

func RequestChannel(w *ecs.World, op component.ChannelOp) {
	requestChannel(w, &component.ChannelRequest{Op: op})
}

func RequestBackground(w *ecs.World, tracks ...string) {
	requestChannel(w, &component.ChannelRequest{Op: component.BackgroundPlay, Tracks: append([]string(nil), tracks...)})
}

func requestChannel(w *ecs.World, req *component.ChannelRequest) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.ChannelRequestComponent.Kind(), req)
}

func (as *AudioSystem) Update(w *ecs.World, _ *Frame) {
	if as == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.ChannelRequestComponent.Kind(), func(e ecs.Entity, req *component.ChannelRequest) {
		ecs.DestroyEntity(w, e)
		if as.sink == nil {
			return
		}
		switch req.Op {
		case component.BackgroundPlay:
			as.sink.PlayBackground(req.Tracks)
		case component.BackgroundPause:
			as.sink.PauseBackground()
		case component.BackgroundResume:
			as.sink.ResumeBackground()
		case component.EffectsStop:
			as.sink.StopEffects()
		}
	})
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(e ecs.Entity, req *component.SoundRequest) {
		ecs.DestroyEntity(w, e)
		if as.sink != nil {
			as.sink.PlayEffect(req.Effect)
		}
	})
}
