package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-hyper/colorvision"
	"github.com/cwbudde/algo-hyper/composite"
	"github.com/cwbudde/algo-hyper/stats"
)

// fileConfig mirrors the YAML configuration file. All fields are optional;
// absent fields keep their defaults, and explicitly set command-line flags
// override the file.
//
//	colorspace: rgb
//	statistic: median
//	colorblind: deuteranopia
//	window: 20
//	normalize: true
//	workers: 4
//	channels:
//	  red: {wavelength: 660, window: 30}
//	  green: {wavelength: 555}
type fileConfig struct {
	Colorspace *string                  `yaml:"colorspace"`
	Statistic  *string                  `yaml:"statistic"`
	Colorblind *string                  `yaml:"colorblind"`
	Window     *float64                 `yaml:"window"`
	Normalize  *bool                    `yaml:"normalize"`
	Workers    *int                     `yaml:"workers"`
	Channels   map[string]channelConfig `yaml:"channels"`
}

type channelConfig struct {
	Wavelength *float64 `yaml:"wavelength"`
	Window     *float64 `yaml:"window"`
}

func loadConfigFile(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &cfg, nil
}

var channelsByName = map[string]composite.Channel{
	"red":     composite.Red,
	"green":   composite.Green,
	"blue":    composite.Blue,
	"cyan":    composite.Cyan,
	"magenta": composite.Magenta,
	"yellow":  composite.Yellow,
	"key":     composite.Key,
}

// options converts the file settings into composer options plus the
// normalize flag (nil when the file does not mention it).
func (c *fileConfig) options() ([]composite.Option, *bool, error) {
	var out []composite.Option

	if c.Colorspace != nil {
		cs, err := composite.ParseColorspace(*c.Colorspace)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, composite.WithColorspace(cs))
	}

	if c.Statistic != nil {
		s, err := stats.ParseStatistic(*c.Statistic)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, composite.WithStatistic(s))
	}

	if c.Colorblind != nil {
		d, err := colorvision.ParseDeficiency(*c.Colorblind)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, composite.WithColorblind(d))
	}

	if c.Window != nil {
		out = append(out, composite.WithWindow(*c.Window))
	}

	if c.Workers != nil {
		out = append(out, composite.WithWorkers(*c.Workers))
	}

	for name, ch := range c.Channels {
		channel, ok := channelsByName[name]
		if !ok {
			return nil, nil, fmt.Errorf("config: %w: %q", composite.ErrUnknownChannel, name)
		}
		if ch.Wavelength != nil {
			out = append(out, composite.WithTargetWavelength(channel, *ch.Wavelength))
		}
		if ch.Window != nil {
			out = append(out, composite.WithChannelWindow(channel, *ch.Window))
		}
	}

	return out, c.Normalize, nil
}
