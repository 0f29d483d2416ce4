package patternlock

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	defaultResetDelay      = time.Second
	defaultHoverFactor     = 0.85
	defaultVibrateDuration = 150 * time.Millisecond
	defaultPulseDuration   = 250 * time.Millisecond
	defaultToleranceFactor = 1e-6
	minTolerance           = 1e-9
)

// Palette holds the colors the engine asks the renderer to use.
type Palette struct {
	Dot         Color `yaml:"dot"`          // unselected dot
	DotLit      Color `yaml:"dot_lit"`      // selected dot
	Inner       Color `yaml:"inner"`        // inner dot of a selected point
	Trace       Color `yaml:"trace"`        // connecting path
	DotFailed   Color `yaml:"dot_failed"`   // selected dot after a rejected gesture
	InnerFailed Color `yaml:"inner_failed"` // inner dot after a rejected gesture
	TraceFailed Color `yaml:"trace_failed"` // path after a rejected gesture
}

// DefaultPalette returns the stock mint-on-grey palette.
func DefaultPalette() Palette {
	return Palette{
		Dot:         MustHex("#eee"),
		DotLit:      MustHex("#a7ffeb"),
		Inner:       MustHex("#1de9b6"),
		Trace:       MustHex("#1de9b6"),
		DotFailed:   MustHex("#ffcdd2"),
		InnerFailed: MustHex("#ff5252"),
		TraceFailed: MustHex("#ff5252"),
	}
}

// Config tunes the engine. The zero value of any field means "use the
// default"; see DefaultConfig.
type Config struct {
	// ResetDelay is the cooldown between verification and the automatic reset.
	ResetDelay time.Duration `yaml:"reset_delay"`
	// HoverFactor scales the dot radius to get the live hit radius.
	HoverFactor float64 `yaml:"hover_factor"`
	// SegmentTolerance is the absolute distance within which a dot counts as
	// lying on the segment between two waypoints.
	SegmentTolerance float64 `yaml:"segment_tolerance"`
	// VibrateDuration is the length of the pulse requested on rejection.
	VibrateDuration time.Duration `yaml:"vibrate_duration"`
	// PulseDuration is the length of the inner-dot pop animation.
	PulseDuration time.Duration `yaml:"pulse_duration"`

	Palette Palette `yaml:"palette"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		ResetDelay:      defaultResetDelay,
		HoverFactor:     defaultHoverFactor,
		VibrateDuration: defaultVibrateDuration,
		PulseDuration:   defaultPulseDuration,
		Palette:         DefaultPalette(),
	}
}

// LoadConfig reads a YAML config file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.ResetDelay < 0:
		return fmt.Errorf("reset_delay must not be negative, got %v", c.ResetDelay)
	case c.HoverFactor < 0:
		return fmt.Errorf("hover_factor must not be negative, got %v", c.HoverFactor)
	case c.SegmentTolerance < 0:
		return fmt.Errorf("segment_tolerance must not be negative, got %v", c.SegmentTolerance)
	case c.VibrateDuration < 0:
		return fmt.Errorf("vibrate_duration must not be negative, got %v", c.VibrateDuration)
	case c.PulseDuration < 0:
		return fmt.Errorf("pulse_duration must not be negative, got %v", c.PulseDuration)
	}
	return nil
}

// withDefaults fills zero fields of a caller-built Config.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ResetDelay == 0 {
		c.ResetDelay = d.ResetDelay
	}
	if c.HoverFactor == 0 {
		c.HoverFactor = d.HoverFactor
	}
	if c.VibrateDuration == 0 {
		c.VibrateDuration = d.VibrateDuration
	}
	if c.PulseDuration == 0 {
		c.PulseDuration = d.PulseDuration
	}
	if c.Palette == (Palette{}) {
		c.Palette = d.Palette
	}
	return c
}

// tolerance returns the segment tolerance for a grid of the given size.
func (c Config) tolerance(size float64) float64 {
	if c.SegmentTolerance > 0 {
		return c.SegmentTolerance
	}
	return max(size*defaultToleranceFactor, minTolerance)
}

// ParseHex parses "#rgb" or "#rrggbb" (the leading '#' is optional) into an
// opaque Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustHex is like ParseHex but panics on malformed input. Use it for
// constants only.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// UnmarshalYAML decodes a hex color string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as a hex string.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}
