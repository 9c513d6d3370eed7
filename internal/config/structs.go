package config

import (
	"time"

	"github.com/pwdgen/pwdgen/internal/generator"
	"github.com/pwdgen/pwdgen/internal/logger"
)

// Defaults are used for positional values missing on the command line.
type Defaults struct {
	Length         int  `toml:"length" json:"length" validate:"min=4"`
	MixedCase      bool `toml:"mixedCase" json:"mixedCase"`
	IncludeNumbers bool `toml:"includeNumbers" json:"includeNumbers"`
	IncludeSymbols bool `toml:"includeSymbols" json:"includeSymbols"`
}

// Request converts the defaults into a generation request.
func (d Defaults) Request() generator.Request {
	return generator.Request{
		Length:         d.Length,
		MixedCase:      d.MixedCase,
		IncludeNumbers: d.IncludeNumbers,
		IncludeSymbols: d.IncludeSymbols,
	}
}

// Clipboard settings.
type Clipboard struct {
	Disabled bool          `toml:"disabled" json:"disabled"`
	Platform string        `toml:"platform" json:"platform" validate:"omitempty,oneof=darwin windows linux unknown"` // empty means detect
	Timeout  time.Duration `toml:"timeout" json:"timeout"`
}

// Metrics settings.
type Metrics struct {
	Textfile string `toml:"textfile" json:"textfile"` // node_exporter textfile, empty disables the export
}

// Config overall data structure.
type Config struct {
	Defaults  Defaults   `toml:"defaults" json:"defaults"`
	Clipboard Clipboard  `toml:"clipboard" json:"clipboard"`
	Metrics   Metrics    `toml:"metrics" json:"metrics"`
	Log       logger.Log `toml:"log" json:"log"`
}
