package system

import (
	"log"

	"github.com/milk9111/thechase/ecs"
)

// TriggerSystem starts the held scene request once no scene is running.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem {
	return &TriggerSystem{}
}

func (ts *TriggerSystem) Update(_ *ecs.World, f *Frame) {
	if f == nil || f.Triggers == nil || f.Session == nil {
		return
	}
	if started := f.Triggers.Consume(f.Session, f.Now); started != nil {
		log.Printf("scene: start %s at %s", started.Kind(), f.Now)
	}
}
