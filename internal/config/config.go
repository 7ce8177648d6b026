// Package config handles run configuration loading and management.
package config

// Config holds all generation settings.
type Config struct {
	Generate  GenerateConfig  `yaml:"generate"`
	Animation AnimationConfig `yaml:"animation"`
	Swatch    SwatchConfig    `yaml:"swatch"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GenerateConfig holds the settings shared by the full-coverage
// algorithms.
type GenerateConfig struct {
	Algorithm string `yaml:"algorithm"` // greedy, walk, or walkanim
	Source    string `yaml:"source"`    // color source image; empty = 15-bit palette
	Output    string `yaml:"output"`
	Width     int    `yaml:"width"`  // 0 = native grid width
	Height    int    `yaml:"height"` // 0 = native grid height
	SeedPoint int    `yaml:"seed_point"`
	RandSeed  int64  `yaml:"rand_seed"` // nonzero reproduces; 0 = fresh non-reproducible source
}

// AnimationConfig holds the self-crossing walk settings.
type AnimationConfig struct {
	GIF      string `yaml:"gif"`
	Size     int    `yaml:"size"`
	Scale    int    `yaml:"scale"`
	MaxSteps int    `yaml:"max_steps"`
	Shuffle  bool   `yaml:"shuffle"`
}

// SwatchConfig holds the dominant-palette summary settings.
type SwatchConfig struct {
	Output string `yaml:"output"` // empty disables the swatch
	Colors int    `yaml:"colors"`
	Method string `yaml:"method"` // dominantcolor or kmeans
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Algorithm: "greedy",
			Output:    "allrgb.png",
			SeedPoint: -1,
		},
		Animation: AnimationConfig{
			GIF:     "allrgb.gif",
			Size:    128,
			Scale:   1,
			Shuffle: true,
		},
		Swatch: SwatchConfig{
			Colors: 8,
			Method: "dominantcolor",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
