package pulse

import "fmt"

// SelectConfig picks the first candidate whose depth and stencil sizes are
// at least the requested ones and whose color channels match the request
// exactly. Candidates are not ranked, the platform order decides.
func SelectConfig(req ConfigRequest, candidates []PlatformConfig) (PlatformConfig, bool) {
	want := req.bits

	for _, candidate := range candidates {
		depth := attrib(candidate, AttribDepthSize)
		stencil := attrib(candidate, AttribStencilSize)

		if depth < want.Depth || stencil < want.Stencil {
			continue
		}

		r := attrib(candidate, AttribRedSize)
		g := attrib(candidate, AttribGreenSize)
		b := attrib(candidate, AttribBlueSize)
		a := attrib(candidate, AttribAlphaSize)

		if r == want.Red && g == want.Green && b == want.Blue && a == want.Alpha {
			return candidate, true
		}
	}

	return nil, false
}

// ChooseConfig negotiates the request against the configs of the display.
func ChooseConfig(display Display, req ConfigRequest) (PlatformConfig, error) {
	candidates, err := display.Configs()
	if err != nil {
		return nil, fmt.Errorf("query configs: %w", err)
	}

	config, ok := SelectConfig(req, candidates)
	if !ok {
		return nil, fmt.Errorf("%w for %s among %d candidates", ErrConfigNotFound, req, len(candidates))
	}

	return config, nil
}
