package config

import (
	"fmt"
	"time"
)

// GetWatchDebounce parses the watch debounce duration, defaulting to 200ms.
func (c *Config) GetWatchDebounce() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 200 * time.Millisecond, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("watch.debounce: %w", err)
	}
	return d, nil
}
