package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// presetConfig is the schema of a --preset-file: named bundles of limits.
type presetConfig struct {
	Presets map[string]limitPreset `yaml:"presets"`
}

type limitPreset struct {
	MaxBatchLen    int    `yaml:"max_batch_len"`
	MaxBatchBytes  int    `yaml:"max_batch_bytes"`
	MaxRecordBytes int    `yaml:"max_record_bytes"`
	OnOversize     string `yaml:"on_oversize"`
}

// loadPreset reads the preset file and returns the named preset.
func loadPreset(path, name string) (limitPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return limitPreset{}, err
	}

	var cfg presetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return limitPreset{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	preset, ok := cfg.Presets[name]
	if !ok {
		return limitPreset{}, fmt.Errorf("preset %q not found in %s", name, path)
	}
	return preset, nil
}

// apply copies the preset into the flag variables. Values the preset
// leaves at zero (or empty) keep whatever the flags set.
func (p limitPreset) apply() {
	if p.MaxBatchLen > 0 {
		maxBatchLen = p.MaxBatchLen
	}
	if p.MaxBatchBytes > 0 {
		maxBatchBytes = p.MaxBatchBytes
	}
	if p.MaxRecordBytes > 0 {
		maxRecordBytes = p.MaxRecordBytes
	}
	if p.OnOversize != "" {
		onOversize = p.OnOversize
	}
}
