package effect

import "image/color"

// Muter is the playback control the music toggle drives.
type Muter interface {
	Muted() bool
	SetMuted(muted bool)
}

// Music toggles playback mute on KeyM.
type Music struct {
	anchor
	player Muter
}

func NewMusic(target string, player Muter, x, y int, c color.Color) *Music {
	return &Music{anchor: anchor{target: target, x: x, y: y, color: c}, player: player}
}

func (m *Music) Name() string { return "music" }

func (m *Music) Init(env Env) bool {
	if m.player == nil {
		return false
	}
	return m.attach(env)
}

func (m *Music) Teardown() { m.detach() }

func (m *Music) HandleKey(k Key) {
	if k == KeyM {
		m.player.SetMuted(!m.player.Muted())
	}
}

func (m *Music) Draw() {
	state := "on"
	if m.player.Muted() {
		state = "off"
	}
	m.s.Text("[m] music "+state, m.x, m.y, m.color)
}
