package pulse

import "fmt"

// BitDepths holds the size in bits of each buffer component.
type BitDepths struct {
	Red, Green, Blue, Alpha int
	Depth, Stencil          int
}

func (b BitDepths) Attrib(attr Attribute) (int, bool) {
	switch attr {
	case AttribRedSize:
		return b.Red, true
	case AttribGreenSize:
		return b.Green, true
	case AttribBlueSize:
		return b.Blue, true
	case AttribAlphaSize:
		return b.Alpha, true
	case AttribDepthSize:
		return b.Depth, true
	case AttribStencilSize:
		return b.Stencil, true
	default:
		return 0, false
	}
}

func (b BitDepths) String() string {
	return fmt.Sprintf("rgba%d%d%d%d d%d s%d",
		b.Red, b.Green, b.Blue, b.Alpha, b.Depth, b.Stencil)
}

// PlatformConfig is a framebuffer configuration offered by the platform.
type PlatformConfig interface {
	// Attrib queries a single attribute. ok is false
	// if the platform could not answer the query.
	Attrib(attr Attribute) (value int, ok bool)
}

// StaticConfig is a PlatformConfig with known bit depths and an optional
// platform specific handle.
type StaticConfig struct {
	BitDepths
	Handle any
}

// QueryBitDepths reads all bit depths of a config.
// Attributes that can not be queried read as zero.
func QueryBitDepths(config PlatformConfig) BitDepths {
	return BitDepths{
		Red:     attrib(config, AttribRedSize),
		Green:   attrib(config, AttribGreenSize),
		Blue:    attrib(config, AttribBlueSize),
		Alpha:   attrib(config, AttribAlphaSize),
		Depth:   attrib(config, AttribDepthSize),
		Stencil: attrib(config, AttribStencilSize),
	}
}

func attrib(config PlatformConfig, attr Attribute) int {
	value, ok := config.Attrib(attr)
	if !ok {
		return 0
	}

	return value
}

// ConfigRequest describes the framebuffer configuration a surface asks for.
// Color channels must match exactly, depth and stencil are minimums.
type ConfigRequest struct {
	bits BitDepths
}

func NewConfigRequest(bits BitDepths) (ConfigRequest, error) {
	values := [...]int{bits.Red, bits.Green, bits.Blue, bits.Alpha, bits.Depth, bits.Stencil}
	for _, value := range values {
		if value < 0 {
			return ConfigRequest{}, fmt.Errorf("%w: negative bit depth in %s", ErrInvalidRequest, bits)
		}
	}

	return ConfigRequest{bits: bits}, nil
}

// MustConfigRequest is like NewConfigRequest but panics on invalid input.
func MustConfigRequest(bits BitDepths) ConfigRequest {
	req, err := NewConfigRequest(bits)
	if err != nil {
		panic(err)
	}

	return req
}

func (r ConfigRequest) Bits() BitDepths {
	return r.bits
}

func (r ConfigRequest) String() string {
	return r.bits.String()
}
