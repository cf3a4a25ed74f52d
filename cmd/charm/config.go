package main

import (
	"os"

	"github.com/goccy/go-yaml"
)

// config is the shape of an optional charm.yaml: default stack capacity, the
// name given to the initial stack, and whether trace logging starts on.
// Flags passed on the command line always override a loaded config file.
type config struct {
	StackCapacity int    `yaml:"stackCapacity"`
	StackName     string `yaml:"stackName"`
	Trace         bool   `yaml:"trace"`
}

func defaultConfig() config {
	return config{StackCapacity: 4096, StackName: "main"}
}

// loadConfig reads path and unmarshals it over defaultConfig's values. A
// missing path is not an error: it just means no file was given.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
