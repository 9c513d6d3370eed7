// Package platform maps the runtime OS identifier to a small enum.
package platform

import (
	"context"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/host"
)

// Platform is a recognised operating system.
type Platform int

// Recognised platforms. Anything else is Unknown.
const (
	Unknown Platform = iota
	Darwin
	Windows
	Linux
)

// String returns the OS identifier of p.
func (p Platform) String() string {
	switch p {
	case Darwin:
		return "darwin"
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	default:
		return "unknown"
	}
}

// Parse maps an OS identifier such as "darwin" to a Platform.
func Parse(id string) Platform {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "darwin":
		return Darwin
	case "windows":
		return Windows
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// Detect reads the host OS identifier. When the host information can not
// be read it falls back to runtime.GOOS.
func Detect(ctx context.Context) Platform {
	info, err := host.InfoWithContext(ctx)
	if err != nil || info.OS == "" {
		log.Debug().Err(err).Str("goos", runtime.GOOS).Msg("host info unavailable, using runtime.GOOS")

		return Parse(runtime.GOOS)
	}

	log.Debug().
		Str("os", info.OS).
		Str("platform", info.Platform).
		Str("platformVersion", info.PlatformVersion).
		Msg("detected host")

	return Parse(info.OS)
}
