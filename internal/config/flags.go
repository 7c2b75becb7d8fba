package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagRadius = flag.Float64("radius", 0, "Sampling cube half-extent")
	flagCount  = flag.Int("count", -1, "Number of points to sample")
	flagSeed   = flag.Uint64("seed", 0, "Random seed (0 = random)")
	flagMorph  = flag.Float64("morph-radius", 0, "Morph sphere radius (0 = sampling radius)")
	flagOut    = flag.String("out", "", "Export directory")
	flagFormat = flag.String("format", "", "Export format (obj, stl)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagRadius > 0 {
		cfg.Sampler.Radius = float32(*flagRadius)
	}
	if *flagCount >= 0 {
		cfg.Sampler.Count = *flagCount
	}
	if *flagSeed != 0 {
		cfg.Sampler.Seed = *flagSeed
	}
	if *flagMorph > 0 {
		cfg.Morph.Radius = float32(*flagMorph)
	}
	if *flagOut != "" {
		cfg.Export.Dir = *flagOut
	}
	if *flagFormat != "" {
		cfg.Export.Format = *flagFormat
	}
}
