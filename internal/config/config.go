package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Simulation *struct {
		DefaultCount int `json:"default_count"`
		MaxCount     int `json:"max_count"`
		Workers      int `json:"workers"`
	} `json:"simulation"`
}

// LoadedConfig contains the server address to bind to and the simulation
// limits applied to incoming requests.
type LoadedConfig struct {
	ServerAddress string
	DefaultCount  int
	MaxCount      int
	Workers       int
}

const (
	defaultAddress = ":8080"
	defaultCount   = 1000
	defaultMax     = 10000
	defaultWorkers = 4
)

// LoadConfig reads the configuration file at path. A missing file is not an
// error; all values fall back to defaults so the server can start with no
// configuration at all. A file that exists but does not parse is an error.
func LoadConfig(path string) (*LoadedConfig, error) {
	out := &LoadedConfig{
		ServerAddress: defaultAddress,
		DefaultCount:  defaultCount,
		MaxCount:      defaultMax,
		Workers:       defaultWorkers,
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Simulation != nil {
		if rc.Simulation.DefaultCount > 0 {
			out.DefaultCount = rc.Simulation.DefaultCount
		}
		if rc.Simulation.MaxCount > 0 {
			out.MaxCount = rc.Simulation.MaxCount
		}
		if rc.Simulation.Workers > 0 {
			out.Workers = rc.Simulation.Workers
		}
	}

	if out.DefaultCount > out.MaxCount {
		return nil, fmt.Errorf("config file %s: default_count (%d) exceeds max_count (%d)", path, out.DefaultCount, out.MaxCount)
	}
	return out, nil
}
