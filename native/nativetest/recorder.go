// Package nativetest provides a recording native.Renderer for tests.
package nativetest

import (
	"fmt"
	"sync"

	"github.com/oliverbestmann/glbridge/native"
)

// Call is a single recorded invocation of an entry point.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Recorder records every call made through the renderer boundary.
// It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

var _ native.Renderer = (*Recorder)(nil)
var _ native.TouchCanceller = (*Recorder)(nil)
var _ native.Exiter = (*Recorder)(nil)

func (r *Recorder) record(name string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

// Calls returns a copy of all calls recorded so far.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Named returns the recorded calls of the given entry point.
func (r *Recorder) Named(name string) []Call {
	var result []Call
	for _, call := range r.Calls() {
		if call.Name == name {
			result = append(result, call)
		}
	}

	return result
}

func (r *Recorder) Init(width, height int32, resourcePath string) {
	r.record("Init", width, height, resourcePath)
}

func (r *Recorder) Draw() {
	r.record("Draw")
}

func (r *Recorder) ToucheBegan(x, y float32, tapCount int32) {
	r.record("ToucheBegan", x, y, tapCount)
}

func (r *Recorder) ToucheMoved(x, y float32, tapCount int32) {
	r.record("ToucheMoved", x, y, tapCount)
}

func (r *Recorder) ToucheEnded(x, y float32, tapCount int32) {
	r.record("ToucheEnded", x, y, tapCount)
}

func (r *Recorder) ToucheCancelled(x, y float32, tapCount int32) {
	r.record("ToucheCancelled", x, y, tapCount)
}

func (r *Recorder) Accelerometer(x, y, z float32) {
	r.record("Accelerometer", x, y, z)
}

func (r *Recorder) Exit() {
	r.record("Exit")
}

// Minimal forwards the required entry points to a Recorder,
// without any of the optional extensions.
type Minimal struct {
	Recorder *Recorder
}

var _ native.Renderer = Minimal{}

func (m Minimal) Init(width, height int32, resourcePath string) {
	m.Recorder.Init(width, height, resourcePath)
}

func (m Minimal) Draw() {
	m.Recorder.Draw()
}

func (m Minimal) ToucheBegan(x, y float32, tapCount int32) {
	m.Recorder.ToucheBegan(x, y, tapCount)
}

func (m Minimal) ToucheMoved(x, y float32, tapCount int32) {
	m.Recorder.ToucheMoved(x, y, tapCount)
}

func (m Minimal) ToucheEnded(x, y float32, tapCount int32) {
	m.Recorder.ToucheEnded(x, y, tapCount)
}

func (m Minimal) Accelerometer(x, y, z float32) {
	m.Recorder.Accelerometer(x, y, z)
}
