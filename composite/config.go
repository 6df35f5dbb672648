package composite

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-hyper/colorvision"
	"github.com/cwbudde/algo-hyper/stats"
)

// Configuration errors. All are detected by Validate before any numeric
// work begins.
var (
	ErrUnknownColorspace = errors.New("composite: unknown colorspace")
	ErrUnknownChannel    = errors.New("composite: unknown channel")
	ErrNegativeWindow    = errors.New("composite: selection window must not be negative")
)

// Colorspace selects the output channel set.
type Colorspace int

// Supported colorspaces.
const (
	RGB Colorspace = iota
	CMYK
)

// String returns the lowercase colorspace name.
func (c Colorspace) String() string {
	switch c {
	case RGB:
		return "rgb"
	case CMYK:
		return "cmyk"
	default:
		return "unknown"
	}
}

// ParseColorspace maps "rgb" or "cmyk" to its Colorspace.
func ParseColorspace(name string) (Colorspace, error) {
	switch name {
	case "rgb":
		return RGB, nil
	case "cmyk":
		return CMYK, nil
	default:
		return 0, ErrUnknownColorspace
	}
}

// Channel identifies one output color component.
type Channel int

// Output channels. Red..Blue belong to RGB, Cyan..Key to CMYK.
const (
	Red Channel = iota
	Green
	Blue
	Cyan
	Magenta
	Yellow
	Key

	channelCount
)

var channelNames = [...]string{"red", "green", "blue", "cyan", "magenta", "yellow", "key"}

// String returns the lowercase channel name.
func (c Channel) String() string {
	if c < Red || c >= channelCount {
		return "unknown"
	}
	return channelNames[c]
}

// Channels returns the ordered channel set of a colorspace.
func (c Colorspace) Channels() []Channel {
	if c == CMYK {
		return []Channel{Cyan, Magenta, Yellow, Key}
	}
	return []Channel{Red, Green, Blue}
}

// ChannelSpec fully describes how one output channel is synthesized.
type ChannelSpec struct {
	Channel   Channel
	Target    float64 // target wavelength, nm
	Window    float64 // selection window full width, nm
	Statistic stats.Statistic
}

// Config holds the composite construction settings. Target wavelengths and
// selection windows are per-channel; the statistic and colorblind mode are
// shared.
type Config struct {
	Colorspace Colorspace
	Statistic  stats.Statistic
	Colorblind colorvision.Deficiency
	Targets    [channelCount]float64 // nm, indexed by Channel
	Windows    [channelCount]float64 // nm full width, indexed by Channel
	Workers    int                   // row-parallel workers, 0 = GOMAXPROCS
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns an RGB mean composite with the conventional
// channel wavelengths (R 650, G 550, B 450, C 490, M 580, Y 570, K 800 nm)
// and zero-width windows, which select the single nearest band per channel.
func DefaultConfig() Config {
	return Config{
		Colorspace: RGB,
		Statistic:  stats.Mean,
		Colorblind: colorvision.None,
		Targets:    [channelCount]float64{650, 550, 450, 490, 580, 570, 800},
	}
}

// WithColorspace sets the output colorspace.
func WithColorspace(cs Colorspace) Option {
	return func(cfg *Config) {
		cfg.Colorspace = cs
	}
}

// WithStatistic sets the per-pixel aggregation statistic for all channels.
func WithStatistic(s stats.Statistic) Option {
	return func(cfg *Config) {
		cfg.Statistic = s
	}
}

// WithColorblind sets the color-vision deficiency simulated on RGB output.
// CMYK composites ignore the setting.
func WithColorblind(d colorvision.Deficiency) Option {
	return func(cfg *Config) {
		cfg.Colorblind = d
	}
}

// WithWindow sets the selection window of every channel.
func WithWindow(nm float64) Option {
	return func(cfg *Config) {
		for i := range cfg.Windows {
			cfg.Windows[i] = nm
		}
	}
}

// WithChannelWindow sets the selection window of a single channel.
func WithChannelWindow(ch Channel, nm float64) Option {
	return func(cfg *Config) {
		if ch >= Red && ch < channelCount {
			cfg.Windows[ch] = nm
		}
	}
}

// WithTargetWavelength sets the target wavelength of a single channel.
func WithTargetWavelength(ch Channel, nm float64) Option {
	return func(cfg *Config) {
		if ch >= Red && ch < channelCount {
			cfg.Targets[ch] = nm
		}
	}
}

// WithWorkers sets the number of row-parallel workers. Zero or negative
// uses one worker per available CPU.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		cfg.Workers = n
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate checks that the configuration names a known colorspace,
// statistic, and deficiency, and that no selection window is negative.
func (cfg Config) Validate() error {
	if cfg.Colorspace != RGB && cfg.Colorspace != CMYK {
		return ErrUnknownColorspace
	}

	if _, err := stats.NewKernel(cfg.Statistic); err != nil {
		return err
	}

	if cfg.Colorblind < colorvision.None || cfg.Colorblind > colorvision.Tritanopia {
		return colorvision.ErrUnknownDeficiency
	}

	for _, ch := range cfg.Colorspace.Channels() {
		if cfg.Windows[ch] < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeWindow, ch)
		}
	}

	return nil
}

// Specs returns the ordered channel specs of the configured colorspace.
func (cfg Config) Specs() []ChannelSpec {
	channels := cfg.Colorspace.Channels()
	specs := make([]ChannelSpec, len(channels))

	for i, ch := range channels {
		specs[i] = ChannelSpec{
			Channel:   ch,
			Target:    cfg.Targets[ch],
			Window:    cfg.Windows[ch],
			Statistic: cfg.Statistic,
		}
	}

	return specs
}
