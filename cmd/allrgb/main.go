package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/wbrown/allrgb"
	"github.com/wbrown/allrgb/imageutil"
	"github.com/wbrown/allrgb/internal/config"
	"github.com/wbrown/allrgb/internal/logger"
	"github.com/wbrown/allrgb/swatch"
)

func main() {
	configPath := flag.String("config", "",
		"Path to a YAML config file (default: ./allrgb.yaml if present)")
	algo := flag.String("algo", "",
		"Placement algorithm: greedy, walk, or walkanim")
	source := flag.String("source", "",
		"Image to sample the color multiset from (default: 15-bit palette)")
	output := flag.String("output", "",
		"Path for the generated image")
	width := flag.Int("width", 0,
		"Output width (0 = native grid width)")
	height := flag.Int("height", 0,
		"Output height (0 = native grid height)")
	seedPoint := flag.Int("seed-point", -1,
		"Flattened index of the starting point, -1 for random")
	randSeed := flag.Int64("rand-seed", 0,
		"Nonzero seed for a reproducible run; 0 draws a fresh random source, so seed 0 itself is not selectable")
	gifPath := flag.String("gif", "",
		"Animated GIF path for walkanim")
	size := flag.Int("size", 0,
		"Square grid side length for walkanim")
	scale := flag.Int("scale", 0,
		"Frame scale factor for walkanim")
	steps := flag.Int("steps", 0,
		"Maximum walk steps for walkanim (0 = one per color)")
	noShuffle := flag.Bool("no-shuffle", false,
		"Walk the color list as given instead of shuffling for walkanim")
	swatchOut := flag.String("swatch", "",
		"Save a dominant-palette swatch of the result to this path")
	swatchColors := flag.Int("swatch-colors", 0,
		"Number of swatch colors")
	swatchMethod := flag.String("swatch-method", "",
		"Swatch extraction method: dominantcolor or kmeans")
	logLevel := flag.String("log-level", "",
		"Log level: debug, info, warn, or error")
	logFile := flag.String("log-file", "",
		"Also log to this file with rotation")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags set on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algo":
			cfg.Generate.Algorithm = *algo
		case "source":
			cfg.Generate.Source = *source
		case "output":
			cfg.Generate.Output = *output
		case "width":
			cfg.Generate.Width = *width
		case "height":
			cfg.Generate.Height = *height
		case "seed-point":
			cfg.Generate.SeedPoint = *seedPoint
		case "rand-seed":
			cfg.Generate.RandSeed = *randSeed
		case "gif":
			cfg.Animation.GIF = *gifPath
		case "size":
			cfg.Animation.Size = *size
		case "scale":
			cfg.Animation.Scale = *scale
		case "steps":
			cfg.Animation.MaxSteps = *steps
		case "no-shuffle":
			cfg.Animation.Shuffle = !*noShuffle
		case "swatch":
			cfg.Swatch.Output = *swatchOut
		case "swatch-colors":
			cfg.Swatch.Colors = *swatchColors
		case "swatch-method":
			cfg.Swatch.Method = *swatchMethod
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-file":
			cfg.Logging.LogFile = *logFile
		}
	})

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	var rnd allrgb.Rand
	if cfg.Generate.RandSeed != 0 {
		rnd = allrgb.NewRand(uint64(cfg.Generate.RandSeed))
	}

	logger.Info("starting generation",
		zap.String("algorithm", cfg.Generate.Algorithm),
		zap.String("source", cfg.Generate.Source),
		zap.Int("seed_point", cfg.Generate.SeedPoint),
		zap.Int64("rand_seed", cfg.Generate.RandSeed))

	start := time.Now()
	var result *imageutil.RGBAImage
	var err error

	switch cfg.Generate.Algorithm {
	case "greedy":
		result, err = allrgb.GenerateGreedy(generateOptions(cfg, rnd))
	case "walk":
		result, err = allrgb.GenerateRandomWalk(generateOptions(cfg, rnd))
	case "walkanim":
		result, err = runWalkAnimation(cfg, rnd)
	default:
		return fmt.Errorf("unknown algorithm %q", cfg.Generate.Algorithm)
	}
	if err != nil {
		return err
	}

	if err := imageutil.SaveImage(result.RGBA, cfg.Generate.Output); err != nil {
		return fmt.Errorf("saving output: %w", err)
	}
	logger.Info("output written",
		zap.String("path", cfg.Generate.Output),
		zap.Int("width", result.Width()),
		zap.Int("height", result.Height()),
		zap.Duration("elapsed", time.Since(start)))

	if cfg.Swatch.Output != "" {
		if err := writeSwatch(cfg, result); err != nil {
			return err
		}
	}
	return nil
}

func generateOptions(cfg *config.Config, rnd allrgb.Rand) allrgb.Options {
	return allrgb.Options{
		SourcePath: cfg.Generate.Source,
		SeedPoint:  cfg.Generate.SeedPoint,
		Width:      cfg.Generate.Width,
		Height:     cfg.Generate.Height,
		Rand:       rnd,
	}
}

func runWalkAnimation(cfg *config.Config, rnd allrgb.Rand) (*imageutil.RGBAImage, error) {
	colors, _, err := allrgb.LoadColorSource(cfg.Generate.Source)
	if err != nil {
		return nil, err
	}
	opts := allrgb.DefaultWalkAnimationOptions()
	opts.Rand = rnd
	opts.Shuffle = cfg.Animation.Shuffle
	opts.MaxSteps = cfg.Animation.MaxSteps
	if cfg.Animation.Size > 0 {
		opts.Size = cfg.Animation.Size
	}
	if cfg.Animation.Scale > 0 {
		opts.Scale = cfg.Animation.Scale
	}

	final, err := allrgb.GenerateWalkAnimation(colors, cfg.Animation.GIF, opts)
	if err != nil {
		return nil, err
	}
	if cfg.Animation.GIF != "" {
		logger.Info("animation written", zap.String("path", cfg.Animation.GIF))
	}
	return final, nil
}

func writeSwatch(cfg *config.Config, img *imageutil.RGBAImage) error {
	method, err := swatch.ParseMethod(cfg.Swatch.Method)
	if err != nil {
		return err
	}
	palette := swatch.Extract(img.RGBA, cfg.Swatch.Colors, method)
	if len(palette) == 0 {
		logger.Warn("swatch extraction produced no colors",
			zap.String("method", method.String()))
		return nil
	}
	if err := swatch.Save(palette, 64, cfg.Swatch.Output); err != nil {
		return fmt.Errorf("saving swatch: %w", err)
	}
	logger.Info("swatch written",
		zap.String("path", cfg.Swatch.Output),
		zap.Int("colors", len(palette)),
		zap.String("method", method.String()))
	return nil
}
