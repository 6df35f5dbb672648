package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-hyper/colorvision"
	"github.com/cwbudde/algo-hyper/composite"
	"github.com/cwbudde/algo-hyper/cube/bsq"
	"github.com/cwbudde/algo-hyper/raster"
	"github.com/cwbudde/algo-hyper/stats"
)

type runOptions struct {
	input      string
	output     string
	configFile string

	colorspace string
	statistic  string
	colorblind string
	window     float64

	redWavelength     float64
	greenWavelength   float64
	blueWavelength    float64
	cyanWavelength    float64
	magentaWavelength float64
	yellowWavelength  float64
	keyWavelength     float64

	workers   int
	normalize bool
	verbose   bool
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, opts *runOptions) error {
	log := newLogger(opts.verbose)

	var fileCfg *fileConfig
	if opts.configFile != "" {
		fc, err := loadConfigFile(opts.configFile)
		if err != nil {
			return err
		}
		fileCfg = fc
	}

	composerOpts, normalize, err := buildOptions(cmd, opts, fileCfg)
	if err != nil {
		return err
	}

	comp, err := composite.NewComposer(composerOpts...)
	if err != nil {
		return err
	}
	cfg := comp.Config()

	log.Info("reading cube", "input", opts.input)
	c, err := bsq.ReadFile(opts.input)
	if err != nil {
		return err
	}
	log.Info("cube loaded",
		"bands", c.BandCount(), "rows", c.Rows(), "cols", c.Cols())

	log.Info("creating composite",
		"colorspace", cfg.Colorspace.String(),
		"statistic", cfg.Statistic.String(),
		"colorblind", cfg.Colorblind.String())

	res, err := comp.Compose(c)
	if err != nil {
		return err
	}

	if len(res.MetadataFallback) > 0 {
		log.Warn("wavelength metadata missing, band numbers used as wavelengths",
			"bands", len(res.MetadataFallback))
	}

	for _, sel := range res.Selections {
		log.Info("selected bands",
			"channel", sel.Channel.String(),
			"target_nm", sel.Target,
			"window_nm", sel.Window,
			"bands", sel.Bands,
			"wavelengths_nm", sel.Wavelengths)
	}

	group := raster.Group{
		Name: fmt.Sprintf("%s_%s", opts.output, cfg.Colorspace),
	}

	for _, sel := range res.Selections {
		out := res.Rasters[sel.Channel]

		if normalize {
			if err := raster.Normalize(out); err != nil {
				return err
			}
		}

		path := fmt.Sprintf("%s_%s.tif", opts.output, sel.Channel)
		if err := writeTIFF(path, out); err != nil {
			return err
		}
		log.Debug("channel written", "channel", sel.Channel.String(), "file", path)

		group.Channels = append(group.Channels, raster.GroupEntry{
			Channel: sel.Channel.String(),
			File:    path,
		})
	}

	manifestPath := group.Name + ".json"
	if err := writeManifest(manifestPath, group); err != nil {
		return err
	}

	log.Info("composite created", "group", group.Name, "manifest", manifestPath)
	return nil
}

// buildOptions merges defaults, config file settings, and command-line
// flags, in that precedence order: explicitly set flags win over the file.
func buildOptions(cmd *cobra.Command, opts *runOptions, fileCfg *fileConfig) ([]composite.Option, bool, error) {
	var out []composite.Option

	normalize := opts.normalize
	if fileCfg != nil {
		fileOpts, fileNormalize, err := fileCfg.options()
		if err != nil {
			return nil, false, err
		}
		out = append(out, fileOpts...)
		if fileNormalize != nil && !cmd.Flags().Changed("normalize") {
			normalize = *fileNormalize
		}
	}

	changed := func(name string) bool {
		return fileCfg == nil || cmd.Flags().Changed(name)
	}

	if changed("colorspace") {
		cs, err := composite.ParseColorspace(opts.colorspace)
		if err != nil {
			return nil, false, err
		}
		out = append(out, composite.WithColorspace(cs))
	}

	if changed("statistic") {
		s, err := stats.ParseStatistic(opts.statistic)
		if err != nil {
			return nil, false, err
		}
		out = append(out, composite.WithStatistic(s))
	}

	if changed("colorblind") {
		d, err := colorvision.ParseDeficiency(opts.colorblind)
		if err != nil {
			return nil, false, err
		}
		out = append(out, composite.WithColorblind(d))
	}

	if changed("window") {
		out = append(out, composite.WithWindow(opts.window))
	}

	wavelengthFlags := []struct {
		name    string
		channel composite.Channel
		value   float64
	}{
		{"red-wavelength", composite.Red, opts.redWavelength},
		{"green-wavelength", composite.Green, opts.greenWavelength},
		{"blue-wavelength", composite.Blue, opts.blueWavelength},
		{"cyan-wavelength", composite.Cyan, opts.cyanWavelength},
		{"magenta-wavelength", composite.Magenta, opts.magentaWavelength},
		{"yellow-wavelength", composite.Yellow, opts.yellowWavelength},
		{"key-wavelength", composite.Key, opts.keyWavelength},
	}
	for _, wf := range wavelengthFlags {
		if changed(wf.name) {
			out = append(out, composite.WithTargetWavelength(wf.channel, wf.value))
		}
	}

	if changed("workers") {
		out = append(out, composite.WithWorkers(opts.workers))
	}

	return out, normalize, nil
}

func writeTIFF(path string, r *raster.Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := raster.EncodeTIFF(f, r); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writeManifest(path string, g raster.Group) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := raster.EncodeManifest(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
