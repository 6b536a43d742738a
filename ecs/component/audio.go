package component

// SoundRequest is a one-shot request to play an effect on the effects channel.
type SoundRequest struct {
	Effect string
}

var SoundRequestComponent = NewComponent[SoundRequest]("sound_request")

type ChannelOp int

const (
	BackgroundPlay ChannelOp = iota
	BackgroundPause
	BackgroundResume
	// EffectsStop silences every effect currently playing.
	EffectsStop
)

func (op ChannelOp) String() string {
	switch op {
	case BackgroundPlay:
		return "play"
	case BackgroundPause:
		return "pause"
	case BackgroundResume:
		return "resume"
	case EffectsStop:
		return "stop-effects"
	default:
		return "unknown"
	}
}

// ChannelRequest is a one-shot request against the background channel (or the
// effects channel for EffectsStop). Play replaces whatever tracks are looping.
type ChannelRequest struct {
	Op     ChannelOp
	Tracks []string
}

var ChannelRequestComponent = NewComponent[ChannelRequest]("channel_request")
