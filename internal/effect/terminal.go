package effect

import (
	"image/color"
	"strings"
	"unicode"
)

const terminalPrompt = "guest@galaxy:"

// Terminal is a small command line with canned replies.
type Terminal struct {
	anchor
	width, height int
	maxLines      int
	input         []rune
	lines         []string
	focused       bool
}

func NewTerminal(target string, x, y, width, height int, c color.Color) *Terminal {
	return &Terminal{
		anchor: anchor{target: target, x: x, y: y, color: c},
		width:  width,
		height: height,
		// header and prompt take two rows
		maxLines: max(height/lineHeight-2, 1),
	}
}

const lineHeight = 16

func (t *Terminal) Name() string { return "terminal" }

func (t *Terminal) Init(env Env) bool { return t.attach(env) }

func (t *Terminal) Teardown() {
	t.focused = false
	t.detach()
}

func (t *Terminal) SetFocus(focused bool) { t.focused = focused }

func (t *Terminal) Focused() bool { return t.focused }

func (t *Terminal) HandleRunes(rs []rune) {
	for _, r := range rs {
		if unicode.IsPrint(r) {
			t.input = append(t.input, r)
		}
	}
}

func (t *Terminal) HandleKey(k Key) {
	switch k {
	case KeyEnter:
		t.Submit(string(t.input))
		t.input = t.input[:0]
	case KeyBackspace:
		if len(t.input) > 0 {
			t.input = t.input[:len(t.input)-1]
		}
	}
}

// Submit echoes a trimmed, non-empty command followed by its reply.
func (t *Terminal) Submit(line string) {
	cmd := strings.TrimSpace(line)
	if cmd == "" {
		return
	}
	t.lines = append(t.lines, terminalPrompt+" "+cmd, Reply(cmd))
}

// Reply returns the canned response for cmd, case-insensitively.
func Reply(cmd string) string {
	switch strings.ToLower(cmd) {
	case "help":
		return "Available commands: help, ping, about, exit"
	case "ping":
		return "Ping successful: 127.0.0.1 light-years"
	case "about":
		return "This terminal simulates intergalactic dev environments."
	case "exit":
		return "Goodbye, Earthling!"
	default:
		return `Command not recognized. Try "help".`
	}
}

// Lines returns the full output log.
func (t *Terminal) Lines() []string { return t.lines }

// Visible returns the tail of the log that fits the box.
func (t *Terminal) Visible() []string {
	if len(t.lines) <= t.maxLines {
		return t.lines
	}
	return t.lines[len(t.lines)-t.maxLines:]
}

func (t *Terminal) Input() string { return string(t.input) }

func (t *Terminal) Draw() {
	x, y := float64(t.x), float64(t.y)
	w, h := float64(t.width), float64(t.height)
	t.s.DrawLine(x, y, x+w, y, t.color)
	t.s.DrawLine(x, y+h, x+w, y+h, t.color)
	t.s.DrawLine(x, y, x, y+h, t.color)
	t.s.DrawLine(x+w, y, x+w, y+h, t.color)

	header := "TERMINAL (Tab to focus)"
	if t.focused {
		header = "TERMINAL (Tab to leave)"
	}
	row := t.y + 4
	t.s.Text(header, t.x+6, row, t.color)
	for _, line := range t.Visible() {
		row += lineHeight
		t.s.Text(line, t.x+6, row, t.color)
	}

	prompt := "> " + string(t.input)
	if t.focused {
		prompt += "_"
	}
	t.s.Text(prompt, t.x+6, t.y+t.height-lineHeight, t.color)
}
