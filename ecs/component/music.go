package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// MusicRequest is a one-shot request for global music playback. The music
// system keeps a single active track; a new request fades the current track
// out before the next one starts. An empty Track stops music.
type MusicRequest struct {
	Track         string
	Volume        float64
	Loop          bool
	FadeOutFrames int
}

// MusicPlayer stores global music playback state on a dedicated entity. The
// music system mutates this component; no playback state lives on the system.
type MusicPlayer struct {
	Players      map[string]*audio.Player
	TrackVolumes map[string]float64

	CurrentTrack  string
	CurrentVolume float64
	CurrentLoop   bool

	PendingTrack  string
	PendingVolume float64
	PendingLoop   bool
	PendingActive bool

	FadeStep float64
}

var MusicRequestComponent = NewComponent[MusicRequest]()
var MusicPlayerComponent = NewComponent[MusicPlayer]()
