// Package config loads server defaults from an optional YAML file, merged
// with CLI flags that always win over the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects which dispatch pool the server runs client sessions under.
type Mode string

const (
	// ModeLeaderFollowers runs sessions under pool.LeaderFollowers.
	ModeLeaderFollowers Mode = "lf"
	// ModeActiveObject runs sessions under pool.ActiveObject.
	ModeActiveObject Mode = "pl"
)

// Config holds the server's tunables. YAML tags match the flag names minus
// the leading "--", except queueCapacity, whose flag is --queue-capacity.
type Config struct {
	Mode          Mode `yaml:"mode"`
	Threads       int  `yaml:"threads"`
	Port          int  `yaml:"port"`
	QueueCapacity int  `yaml:"queueCapacity"`
}

// Default returns the server's built-in defaults: Leader/Followers mode,
// 4 worker threads, port 8080, a 256-deep Active-Object queue.
func Default() Config {
	return Config{
		Mode:          ModeLeaderFollowers,
		Threads:       4,
		Port:          8080,
		QueueCapacity: 256,
	}
}

// Load reads path as YAML over Default(), returning the merged result. A
// missing path is not an error; Load simply returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether cfg is runnable: Mode is one of the two known
// tags, and every numeric field is positive.
func (c Config) Validate() error {
	if c.Mode != ModeLeaderFollowers && c.Mode != ModeActiveObject {
		return fmt.Errorf("config: mode must be %q or %q, got %q", ModeLeaderFollowers, ModeActiveObject, c.Mode)
	}
	if c.Threads <= 0 {
		return fmt.Errorf("config: threads must be > 0, got %d", c.Threads)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port must be in 1..65535, got %d", c.Port)
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("config: queueCapacity must be > 0, got %d", c.QueueCapacity)
	}
	return nil
}
