// Package config loads the rendering core's settings from TOML.
//
// Every field has a default, so an empty file (or no file at all) yields
// Default(). A config file only needs the keys it changes:
//
//	[drawlist]
//	version = 2
//	max_cmds = 50000
//
//	[text]
//	width_policy = "east_asian"
//	tab_width = 4
//
//	[record]
//	enabled = true
//	path = "frames.db"
//
//	[log]
//	level = "debug"
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/errors"
	"github.com/grindlemire/go-tuicore/internal/textwidth"
)

// Config is the full set of core settings.
type Config struct {
	Drawlist Drawlist `toml:"drawlist"`
	Text     Text     `toml:"text"`
	Record   Record   `toml:"record"`
	Log      Log      `toml:"log"`
}

// Drawlist selects the encoded format version and its resource limits.
type Drawlist struct {
	Version            uint32 `toml:"version"`
	MaxTotalBytes      int    `toml:"max_total_bytes"`
	MaxCmds            int    `toml:"max_cmds"`
	MaxStrings         int    `toml:"max_strings"`
	MaxBlobs           int    `toml:"max_blobs"`
	MaxClipDepth       int    `toml:"max_clip_depth"`
	MaxTextRunSegments int    `toml:"max_text_run_segments"`
}

// Text selects how display widths are computed.
type Text struct {
	WidthPolicy string `toml:"width_policy"`
	TabWidth    int    `toml:"tab_width"`
}

// Record controls the frame recorder.
type Record struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Log sets the logger level.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the engine defaults.
func Default() Config {
	l := drawlist.DefaultLimits()
	return Config{
		Drawlist: Drawlist{
			Version:            uint32(drawlist.Latest),
			MaxTotalBytes:      l.MaxTotalBytes,
			MaxCmds:            l.MaxCmds,
			MaxStrings:         l.MaxStrings,
			MaxBlobs:           l.MaxBlobs,
			MaxClipDepth:       l.MaxClipDepth,
			MaxTextRunSegments: l.MaxTextRunSegments,
		},
		Text: Text{
			WidthPolicy: string(textwidth.PolicyGrapheme),
			TabWidth:    4,
		},
		Record: Record{Path: "tuicore-frames.db"},
		Log:    Log{Level: "warn"},
	}
}

// Load reads the TOML file at path over the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeConfigInvalid, err, "read %s", path)
	}
	return Parse(data, cfg)
}

// Parse decodes TOML data over base and validates the result. Unknown keys
// are rejected.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeConfigInvalid, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeConfigInvalid, "unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeConfigInvalid, format, args...)
}

// Validate checks every field.
func (c Config) Validate() error {
	if !drawlist.Version(c.Drawlist.Version).Valid() {
		return invalid("drawlist.version %d is not supported", c.Drawlist.Version)
	}
	limits := map[string]int{
		"max_total_bytes":       c.Drawlist.MaxTotalBytes,
		"max_cmds":              c.Drawlist.MaxCmds,
		"max_strings":           c.Drawlist.MaxStrings,
		"max_blobs":             c.Drawlist.MaxBlobs,
		"max_clip_depth":        c.Drawlist.MaxClipDepth,
		"max_text_run_segments": c.Drawlist.MaxTextRunSegments,
	}
	for name, v := range limits {
		if v < 0 {
			return invalid("drawlist.%s must be >= 0, got %d", name, v)
		}
	}
	if c.Drawlist.MaxTotalBytes != 0 && c.Drawlist.MaxTotalBytes < drawlist.HeaderSize {
		return invalid("drawlist.max_total_bytes %d is smaller than the %d byte header",
			c.Drawlist.MaxTotalBytes, drawlist.HeaderSize)
	}
	if _, ok := textwidth.ForPolicy(textwidth.Policy(c.Text.WidthPolicy)); !ok {
		return invalid("text.width_policy %q is not one of %q, %q",
			c.Text.WidthPolicy, textwidth.PolicyGrapheme, textwidth.PolicyEastAsian)
	}
	if c.Text.TabWidth < 1 {
		return invalid("text.tab_width must be >= 1, got %d", c.Text.TabWidth)
	}
	if c.Record.Enabled && c.Record.Path == "" {
		return invalid("record.path is required when recording is enabled")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level %q: %v", c.Log.Level, err)
	}
	return nil
}

// Limits returns the drawlist limits.
func (c Config) Limits() drawlist.Limits {
	return drawlist.Limits{
		MaxTotalBytes:      c.Drawlist.MaxTotalBytes,
		MaxCmds:            c.Drawlist.MaxCmds,
		MaxStrings:         c.Drawlist.MaxStrings,
		MaxBlobs:           c.Drawlist.MaxBlobs,
		MaxClipDepth:       c.Drawlist.MaxClipDepth,
		MaxTextRunSegments: c.Drawlist.MaxTextRunSegments,
	}
}

// Version returns the drawlist version.
func (c Config) Version() drawlist.Version {
	return drawlist.Version(c.Drawlist.Version)
}

// WidthFunc returns the configured text-width function, tab expansion
// included.
func (c Config) WidthFunc() textwidth.Func {
	fn, ok := textwidth.ForPolicy(textwidth.Policy(c.Text.WidthPolicy))
	if !ok {
		fn = textwidth.Default
	}
	return textwidth.WithTabs(fn, c.Text.TabWidth)
}

// LogLevel returns the parsed log level, falling back to warn.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
