// Package config holds the settings of the hashcsv command. Settings come from
// an optional TOML file and are then overridden by flags.
package config

import (
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"

	"github.com/philpearl/hashcsv/internal/charset"
	"github.com/philpearl/hashcsv/internal/render"
)

// Log configures the command's logger.
type Log struct {
	// Log level.
	// One of "debug", "info", "warn", "error", "dpanic", "panic", and "fatal".
	Level string `toml:"level" json:"level"`
	// Format of the log, one of `text`, `json` or `console`.
	Format string `toml:"format" json:"format"`
}

// Config is the full command configuration.
type Config struct {
	// Charset of the input, see charset.Names.
	Charset string `toml:"charset" json:"charset"`
	// Style the table is rendered in, see render.Styles.
	Style string `toml:"style" json:"style"`
	// Missing fills the cells of rows shorter than the widest row.
	Missing string `toml:"missing" json:"missing"`
	// Quote shows every field Go-quoted.
	Quote bool `toml:"quote" json:"quote"`

	Log Log `toml:"log" json:"log"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Charset: "utf8",
		Style:   string(render.StyleRounded),
		Missing: "-",
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Annotatef(err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}

// Validate checks every setting names something that exists.
func (c *Config) Validate() error {
	if _, err := charset.Lookup(c.Charset); err != nil {
		return err
	}
	if !slices.Contains(render.Styles, render.Style(c.Style)) {
		return errors.Errorf("unknown style %q, want one of %v", c.Style, render.Styles)
	}
	return nil
}
