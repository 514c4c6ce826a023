// FILE: lixenwraith/bind/internal/headless/dialog.go
package headless

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Response is one scripted outcome of a ColorDialog.
type Response struct {
	Color    colorful.Color
	Accepted bool
}

// Accept is a response choosing c.
func Accept(c colorful.Color) Response { return Response{Color: c, Accepted: true} }

// Reject is a response closing the dialog without a choice.
func Reject() Response { return Response{} }

// ColorDialog is a modal color dialog driven by a script of responses.
// Exec consumes one response per call; with an empty script it rejects.
type ColorDialog struct {
	mu        sync.Mutex
	script    []Response
	initials  []colorful.Color
	execCalls int
}

// NewColorDialog creates a dialog answering with responses in order.
func NewColorDialog(responses ...Response) *ColorDialog {
	return &ColorDialog{script: responses}
}

// Queue appends responses to the script.
func (d *ColorDialog) Queue(responses ...Response) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.script = append(d.script, responses...)
}

// Exec blocks for the duration of the modal step and returns the next
// scripted response.
func (d *ColorDialog) Exec(initial colorful.Color) (colorful.Color, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.execCalls++
	d.initials = append(d.initials, initial)
	if len(d.script) == 0 {
		return initial, false
	}
	r := d.script[0]
	d.script = d.script[1:]
	return r.Color, r.Accepted
}

// ExecCalls returns how many times the dialog was shown.
func (d *ColorDialog) ExecCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.execCalls
}

// Initials returns the colors the dialog was opened with, in order.
func (d *ColorDialog) Initials() []colorful.Color {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]colorful.Color, len(d.initials))
	copy(out, d.initials)
	return out
}
