package pulse

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// ConfigCache remembers the outcome of config negotiation for a single
// display. Surfaces are recreated every time an app returns to the
// foreground, the offered configs do not change in between.
type ConfigCache struct {
	display Display
	cache   *lru.Cache[ConfigRequest, PlatformConfig]
}

func NewConfigCache(display Display) *ConfigCache {
	cache, _ := lru.New[ConfigRequest, PlatformConfig](8)

	return &ConfigCache{
		display: display,
		cache:   cache,
	}
}

func (c *ConfigCache) Display() Display {
	return c.display
}

// Choose returns the cached config for req or negotiates a new one.
// A failed negotiation is not cached.
func (c *ConfigCache) Choose(req ConfigRequest) (PlatformConfig, error) {
	config, ok := c.cache.Get(req)
	if ok {
		return config, nil
	}

	config, err := ChooseConfig(c.display, req)
	if err != nil {
		return nil, err
	}

	c.cache.Add(req, config)

	return config, nil
}

func (c *ConfigCache) Purge() {
	c.cache.Purge()
}
