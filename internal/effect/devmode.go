package effect

import (
	"image/color"
	"slices"
	"time"
)

var konamiSequence = []Key{KeyUp, KeyUp, KeyDown, KeyDown, KeyLeft, KeyRight, KeyLeft, KeyRight, KeyB, KeyA}

const devModeAlert = "Dev Mode Activated!"

// DevMode watches for the Konami sequence and shows the dev banner.
type DevMode struct {
	anchor
	alertFor time.Duration

	recent  []Key
	banner  bool
	alert   string
	alertAt time.Duration
}

func NewDevMode(target string, x, y int, c color.Color) *DevMode {
	return &DevMode{
		anchor:   anchor{target: target, x: x, y: y, color: c},
		alertFor: 4 * time.Second,
	}
}

func (d *DevMode) Name() string { return "devmode" }

func (d *DevMode) Init(env Env) bool { return d.attach(env) }

func (d *DevMode) Teardown() {
	d.recent = d.recent[:0]
	d.detach()
}

func (d *DevMode) HandleKey(k Key) {
	if k == KeyD {
		d.banner = !d.banner
	}
	d.recent = append(d.recent, k)
	if len(d.recent) > len(konamiSequence) {
		d.recent = d.recent[1:]
	}
	if slices.Equal(d.recent, konamiSequence) {
		d.banner = true
		d.alert = devModeAlert
		d.alertAt = 0
	}
}

func (d *DevMode) Update(dt time.Duration) {
	if d.alert == "" {
		return
	}
	d.alertAt += dt
	if d.alertAt >= d.alertFor {
		d.alert = ""
	}
}

func (d *DevMode) Banner() bool  { return d.banner }
func (d *DevMode) Alert() string { return d.alert }

func (d *DevMode) Draw() {
	if d.banner {
		d.s.Text("[DEV MODE]", d.x, d.y, d.color)
	}
	if d.alert != "" {
		d.s.Text(d.alert, d.x, d.y+lineHeight, d.color)
	}
}
