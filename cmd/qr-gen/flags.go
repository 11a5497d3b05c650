package main

import (
	"github.com/alapierre/qr-logo-generator/config"
)

// flagValues holds the raw flag values; empty strings and negative numbers
// mean the flag was not given and the loaded configuration stands.
type flagValues struct {
	format   string
	ec       string
	backend  string
	scaling  string
	margin   int
	size     int
	logoSize int
	verify   bool
}

func applyFlags(cfg *config.Config, f flagValues) error {
	if f.format != "" {
		if err := cfg.Format.UnmarshalText([]byte(f.format)); err != nil {
			return err
		}
	}
	if f.ec != "" {
		if err := cfg.ErrorCorrection.UnmarshalText([]byte(f.ec)); err != nil {
			return err
		}
	}
	if f.backend != "" {
		if err := cfg.Backend.UnmarshalText([]byte(f.backend)); err != nil {
			return err
		}
	}
	if f.scaling != "" {
		if err := cfg.LogoScaling.UnmarshalText([]byte(f.scaling)); err != nil {
			return err
		}
	}
	if f.margin >= 0 {
		cfg.Margin = f.margin
	}
	if f.size >= 0 {
		cfg.Size = f.size
	}
	if f.logoSize >= 0 {
		cfg.LogoSize = f.logoSize
	}
	if f.verify {
		cfg.Verify = true
	}
	return cfg.Validate()
}
