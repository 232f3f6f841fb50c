package pulse

import "strconv"

// Attribute identifies a queryable property of a PlatformConfig.
// The values match the EGL attribute names.
type Attribute int32

const (
	AttribAlphaSize   Attribute = 0x3021
	AttribBlueSize    Attribute = 0x3022
	AttribGreenSize   Attribute = 0x3023
	AttribRedSize     Attribute = 0x3024
	AttribDepthSize   Attribute = 0x3025
	AttribStencilSize Attribute = 0x3026

	// AttribNone terminates an attribute list.
	AttribNone Attribute = 0x3038

	// AttribContextClientVersion selects the major version of the
	// client api when creating a context.
	AttribContextClientVersion Attribute = 0x3098
)

var attributeNames = map[Attribute]string{
	AttribAlphaSize:            "ALPHA_SIZE",
	AttribBlueSize:             "BLUE_SIZE",
	AttribGreenSize:            "GREEN_SIZE",
	AttribRedSize:              "RED_SIZE",
	AttribDepthSize:            "DEPTH_SIZE",
	AttribStencilSize:          "STENCIL_SIZE",
	AttribNone:                 "NONE",
	AttribContextClientVersion: "CONTEXT_CLIENT_VERSION",
}

func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}

	return "Attribute(0x" + strconv.FormatInt(int64(a), 16) + ")"
}

// ContextAttribs builds the attribute list used to request a context
// for the given client api version.
func ContextAttribs(apiVersion int) []int32 {
	return []int32{
		int32(AttribContextClientVersion), int32(apiVersion),
		int32(AttribNone),
	}
}

// ClientVersion extracts the requested client api version from an
// attribute list as built by ContextAttribs.
func ClientVersion(attribs []int32) (int, bool) {
	for idx := 0; idx+1 < len(attribs); idx += 2 {
		switch Attribute(attribs[idx]) {
		case AttribNone:
			return 0, false

		case AttribContextClientVersion:
			return int(attribs[idx+1]), true
		}
	}

	return 0, false
}
