// Command hyperrgb builds RGB or CMYK composites from hyperspectral cube
// files.
//
// Usage:
//
//	hyperrgb --input scene.hbsq --output scene
//	hyperrgb --input scene.hbsq --output scene --statistic median --window 20
//	hyperrgb --input scene.hbsq --output scene --colorblind deuteranopia -n
//	hyperrgb --input scene.hbsq --output print --colorspace cmyk
//
// One 16-bit grayscale TIFF is written per channel, for example
// scene_red.tif, plus a JSON manifest (scene_rgb.json) naming the channels
// of the group so a consumer can register them together.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:           "hyperrgb",
		Short:         "Create RGB/CMYK composites from hyperspectral imagery",
		Long:          "hyperrgb collapses hyperspectral cube bands into RGB or CMYK composites\nusing wavelength-window band selection and a configurable per-pixel statistic.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "input hyperspectral cube file (required)")
	f.StringVarP(&opts.output, "output", "o", "", "base name for output files (required)")
	f.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	f.StringVar(&opts.colorspace, "colorspace", "rgb", "output colorspace (rgb, cmyk)")
	f.StringVar(&opts.statistic, "statistic", "mean", "per-pixel aggregation statistic")
	f.StringVar(&opts.colorblind, "colorblind", "none", "color-vision deficiency to simulate (rgb only)")
	f.Float64Var(&opts.window, "window", 0, "band selection window in nm (0 selects the nearest band)")
	f.Float64Var(&opts.redWavelength, "red-wavelength", 650, "target wavelength for the red channel (nm)")
	f.Float64Var(&opts.greenWavelength, "green-wavelength", 550, "target wavelength for the green channel (nm)")
	f.Float64Var(&opts.blueWavelength, "blue-wavelength", 450, "target wavelength for the blue channel (nm)")
	f.Float64Var(&opts.cyanWavelength, "cyan-wavelength", 490, "target wavelength for the cyan channel (nm)")
	f.Float64Var(&opts.magentaWavelength, "magenta-wavelength", 580, "target wavelength for the magenta channel (nm)")
	f.Float64Var(&opts.yellowWavelength, "yellow-wavelength", 570, "target wavelength for the yellow channel (nm)")
	f.Float64Var(&opts.keyWavelength, "key-wavelength", 800, "target wavelength for the key channel (nm)")
	f.IntVar(&opts.workers, "workers", 0, "row-parallel workers (0 = all CPUs)")
	f.BoolVarP(&opts.normalize, "normalize", "n", false, "normalize output bands to 0-255")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	cobra.CheckErr(cmd.MarkFlagRequired("input"))
	cobra.CheckErr(cmd.MarkFlagRequired("output"))

	return cmd
}
