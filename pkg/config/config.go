// Package config tracks the tably configuration on disk.
package config

import (
	"fmt"
	"os"
	"sync"
)

// Config is the root configuration for the application.
type Config struct {
	Tably *Tably `yaml:"tably"`
	mx    sync.RWMutex
}

// NewConfig creates a new Config with default settings.
func NewConfig() *Config {
	return &Config{
		Tably: NewTably(),
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, the current config is kept unless force is set.
func (c *Config) Load(path string, force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !force {
			return nil
		}
		return fmt.Errorf("config file does not exist: %s", path)
	}

	if err := LoadYAML(path, c); err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if c.Tably == nil {
		c.Tably = NewTably()
	}
	c.Tably.Validate()

	return nil
}

// Save saves the configuration to the app config file.
// If force is false, only saves if the file already exists.
func (c *Config) Save(force bool) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	path := AppConfigFile
	if path == "" {
		return fmt.Errorf("no config file path configured")
	}

	_, err := os.Stat(path)
	fileExists := err == nil
	if !force && !fileExists {
		return nil
	}

	return SaveYAML(path, c)
}
