package config

import (
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ExportName is the default filename offered when saving the drawing.
const ExportName = "drawing.png"

// Config holds startup settings read from the environment.
type Config struct {
	WindowWidth  int
	WindowHeight int
	Background   color.NRGBA
	Color        color.NRGBA
	StrokeWidth  int
	MinStroke    int
	MaxStroke    int
	LogLevel     logrus.Level
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		WindowWidth:  1024,
		WindowHeight: 768,
		Background:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Color:        color.NRGBA{A: 255},
		StrokeWidth:  5,
		MinStroke:    1,
		MaxStroke:    50,
		LogLevel:     logrus.InfoLevel,
	}
}

// Load reads an optional .env file, then the process environment.
// Unparseable values keep their defaults.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) *Config {
	cfg := Default()

	intVar(getenv, "SKETCH_WIDTH", &cfg.WindowWidth)
	intVar(getenv, "SKETCH_HEIGHT", &cfg.WindowHeight)
	colorVar(getenv, "SKETCH_BACKGROUND", &cfg.Background)
	colorVar(getenv, "SKETCH_COLOR", &cfg.Color)
	intVar(getenv, "SKETCH_STROKE", &cfg.StrokeWidth)
	intVar(getenv, "SKETCH_MIN_STROKE", &cfg.MinStroke)
	intVar(getenv, "SKETCH_MAX_STROKE", &cfg.MaxStroke)

	if v := getenv("LOG_LEVEL"); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			logrus.Warnf("Invalid LOG_LEVEL %q, using %s", v, cfg.LogLevel)
		} else {
			cfg.LogLevel = lvl
		}
	}

	if cfg.MinStroke < 1 {
		cfg.MinStroke = 1
	}
	if cfg.MaxStroke < cfg.MinStroke {
		cfg.MaxStroke = cfg.MinStroke
	}
	if cfg.StrokeWidth < cfg.MinStroke {
		cfg.StrokeWidth = cfg.MinStroke
	} else if cfg.StrokeWidth > cfg.MaxStroke {
		cfg.StrokeWidth = cfg.MaxStroke
	}
	return cfg
}

func intVar(getenv func(string) string, key string, dst *int) {
	v := getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logrus.Warnf("Invalid %s %q, using %d", key, v, *dst)
		return
	}
	*dst = n
}

func colorVar(getenv func(string) string, key string, dst *color.NRGBA) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return
	}
	if !isHexColor(v) {
		logrus.Warnf("Invalid %s %q, keeping default", key, v)
		return
	}
	*dst = ParseHex(v)
}

// ParseHex converts "#rgb" or "#rrggbb" to an opaque color.
func ParseHex(s string) color.NRGBA {
	c := gg.Hex(s)
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 0xff,
	}
}

func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
