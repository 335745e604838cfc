package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds an entity's named one-shot sounds. Systems raise Play/Stop
// flags; the audio system services and clears them.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Trigger raises the play flag for the named sound, if present.
func (a *Audio) Trigger(name string) {
	if a == nil {
		return
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
		}
	}
}

var AudioComponent = NewComponent[Audio]()
