// Package pulsetest provides an in-memory pulse.Display for tests.
package pulsetest

import (
	"sync"

	"github.com/oliverbestmann/glbridge/pulse"
)

// Handle is the context handle created by Display.
type Handle struct {
	ID         int
	Config     pulse.PlatformConfig
	APIVersion int
}

// Display offers a fixed list of configs and records context
// creation and destruction.
type Display struct {
	Offered []pulse.PlatformConfig

	// errors to return from the respective calls, if set.
	ConfigsErr error
	CreateErr  error
	DestroyErr error

	mu          sync.Mutex
	configCalls int
	created     []*Handle
	destroyed   []pulse.ContextHandle
}

var _ pulse.Display = (*Display)(nil)

// Offer creates a Display offering the given bit depths as StaticConfigs.
func Offer(bits ...pulse.BitDepths) *Display {
	d := &Display{}
	for idx, b := range bits {
		d.Offered = append(d.Offered, pulse.StaticConfig{BitDepths: b, Handle: idx})
	}

	return d
}

func (d *Display) Configs() ([]pulse.PlatformConfig, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.configCalls++

	if d.ConfigsErr != nil {
		return nil, d.ConfigsErr
	}

	return append([]pulse.PlatformConfig(nil), d.Offered...), nil
}

func (d *Display) CreateContext(config pulse.PlatformConfig, attribs []int32) (pulse.ContextHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.CreateErr != nil {
		return nil, d.CreateErr
	}

	version, _ := pulse.ClientVersion(attribs)

	handle := &Handle{
		ID:         len(d.created) + 1,
		Config:     config,
		APIVersion: version,
	}

	d.created = append(d.created, handle)

	return handle, nil
}

func (d *Display) DestroyContext(handle pulse.ContextHandle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.destroyed = append(d.destroyed, handle)
	return d.DestroyErr
}

func (d *Display) ConfigCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.configCalls
}

func (d *Display) Created() []*Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*Handle(nil), d.created...)
}

func (d *Display) Destroyed() []pulse.ContextHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]pulse.ContextHandle(nil), d.destroyed...)
}
