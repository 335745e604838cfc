package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/corsair/assets"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

const (
	defaultMusicVolume     = 0.8
	defaultMusicFadeFrames = 30
)

// MusicSystem keeps a single looping track playing, switching tracks with a
// fade-out when a request arrives. Requests are one-shot entities; the
// newest request in a frame wins.
type MusicSystem struct{}

func NewMusicSystem() *MusicSystem {
	return &MusicSystem{}
}

// RequestMusic asks for the named track to loop at the default volume.
func RequestMusic(w *ecs.World, track string) {
	RequestMusicWithOptions(w, &component.MusicRequest{Track: track, Loop: true, FadeOutFrames: defaultMusicFadeFrames})
}

// StopMusic fades the current track to silence.
func StopMusic(w *ecs.World) {
	RequestMusicWithOptions(w, &component.MusicRequest{FadeOutFrames: defaultMusicFadeFrames})
}

func RequestMusicWithOptions(w *ecs.World, req *component.MusicRequest) {
	if w == nil || req == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.MusicRequestComponent.Kind(), req)
}

func (m *MusicSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	latest := m.consumeRequests(w)

	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	if player.Players == nil {
		player.Players = make(map[string]*audio.Player)
	}

	if latest != nil {
		m.applyRequest(player, *latest)
	}

	if player.PendingActive {
		m.stepFade(player)
		return
	}

	// Looping: restart the current track when it runs out.
	if cur := m.currentPlayer(player); cur != nil && !cur.IsPlaying() && player.CurrentLoop {
		cur.Rewind()
		cur.SetVolume(player.CurrentVolume)
		cur.Play()
	}
}

func (m *MusicSystem) consumeRequests(w *ecs.World) *component.MusicRequest {
	var latest *component.MusicRequest
	var ents []ecs.Entity
	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(ent ecs.Entity, req *component.MusicRequest) {
		ents = append(ents, ent)
		copied := *req
		latest = &copied
	})
	for _, ent := range ents {
		ecs.DestroyEntity(w, ent)
	}
	return latest
}

func (m *MusicSystem) applyRequest(player *component.MusicPlayer, req component.MusicRequest) {
	track := strings.TrimSpace(req.Track)
	volume := m.resolveVolume(player, track, req.Volume)
	if track != "" {
		if player.TrackVolumes == nil {
			player.TrackVolumes = make(map[string]float64)
		}
		player.TrackVolumes[track] = volume
	}
	fadeFrames := req.FadeOutFrames
	if fadeFrames <= 0 {
		fadeFrames = defaultMusicFadeFrames
	}

	cur := m.currentPlayer(player)
	if !player.PendingActive && track != "" && track == player.CurrentTrack && cur != nil {
		player.CurrentVolume = volume
		cur.SetVolume(volume)
		if !cur.IsPlaying() {
			cur.Rewind()
			cur.Play()
		}
		return
	}

	player.PendingTrack = track
	player.PendingVolume = volume
	player.PendingLoop = req.Loop
	player.PendingActive = true
	if cur == nil {
		m.switchToPending(player)
		return
	}
	player.FadeStep = player.CurrentVolume / float64(fadeFrames)
	if player.FadeStep <= 0 {
		player.FadeStep = 1
	}
}

// resolveVolume picks the playback volume for a request: an explicit volume
// wins, otherwise the track's last-used volume, otherwise the default.
func (m *MusicSystem) resolveVolume(player *component.MusicPlayer, track string, requested float64) float64 {
	volume := requested
	if volume <= 0 {
		if v, ok := player.TrackVolumes[track]; ok && v > 0 {
			volume = v
		} else {
			volume = defaultMusicVolume
		}
	}
	if volume > 1 {
		volume = 1
	}
	return volume
}

func (m *MusicSystem) stepFade(player *component.MusicPlayer) {
	cur := m.currentPlayer(player)
	if cur == nil {
		m.switchToPending(player)
		return
	}

	player.CurrentVolume -= player.FadeStep
	if player.CurrentVolume > 0 {
		cur.SetVolume(player.CurrentVolume)
		return
	}

	cur.SetVolume(0)
	cur.Pause()
	cur.Rewind()
	player.CurrentTrack = ""
	player.CurrentVolume = 0
	player.CurrentLoop = false
	m.switchToPending(player)
}

func (m *MusicSystem) switchToPending(player *component.MusicPlayer) {
	track := strings.TrimSpace(player.PendingTrack)
	volume := player.PendingVolume
	loop := player.PendingLoop

	player.PendingTrack = ""
	player.PendingVolume = 0
	player.PendingLoop = false
	player.PendingActive = false
	player.FadeStep = 0

	if track == "" {
		player.CurrentTrack = ""
		player.CurrentVolume = 0
		player.CurrentLoop = false
		return
	}

	ap, err := m.playerForTrack(player, track)
	if err != nil {
		fmt.Printf("music: load %q: %v\n", track, err)
		player.CurrentTrack = ""
		player.CurrentVolume = 0
		player.CurrentLoop = false
		return
	}

	player.CurrentTrack = track
	player.CurrentVolume = volume
	player.CurrentLoop = loop
	ap.Rewind()
	ap.SetVolume(volume)
	ap.Play()
}

func (m *MusicSystem) currentPlayer(player *component.MusicPlayer) *audio.Player {
	if player == nil || strings.TrimSpace(player.CurrentTrack) == "" {
		return nil
	}
	return player.Players[player.CurrentTrack]
}

func (m *MusicSystem) playerForTrack(player *component.MusicPlayer, track string) (*audio.Player, error) {
	if existing, ok := player.Players[track]; ok && existing != nil {
		return existing, nil
	}
	ap, err := assets.LoadAudioPlayer(track)
	if err != nil {
		return nil, err
	}
	player.Players[track] = ap
	return ap, nil
}
