package glimpse

import (
	"github.com/oliverbestmann/glbridge/glm"
	"github.com/oliverbestmann/glbridge/native"
)

type AccelSample = glm.Vec3f

// SensorBridge forwards accelerometer samples as they are.
// Rate limiting is up to the platform.
type SensorBridge struct {
	renderer native.Renderer
}

var _ SensorListener = (*SensorBridge)(nil)

func NewSensorBridge(renderer native.Renderer) *SensorBridge {
	return &SensorBridge{renderer: renderer}
}

func (b *SensorBridge) Accelerometer(x, y, z float32) {
	b.renderer.Accelerometer(x, y, z)
}
