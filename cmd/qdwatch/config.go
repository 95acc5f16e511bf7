package main

import (
	"encoding/json"
	"os"
)

// Config for the watcher daemon
type Config struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	Cipher       string `json:"cipher"`
	Key          string `json:"key"`
	KeyFile      string `json:"keyfile"`
	Compress     bool   `json:"compress"`
	Delete       bool   `json:"delete"`
	Parallelism  int    `json:"parallelism"`
	Polling      bool   `json:"polling"`
	PollInterval int    `json:"pollinterval"`
	Verbose      bool   `json:"verbose"`
}

func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path) // For read access.
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(config)
}
