package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if log.appName is not set in pwdgen.toml.
	ErrAppNameIsEmpty = errors.New("pwdgen.toml log.appName can not be empty")

	// ErrServiceNameIsEmpty is returned if log.serviceName is not set in pwdgen.toml.
	ErrServiceNameIsEmpty = errors.New("pwdgen.toml log.serviceName can not be empty")

	// ErrFilePathIsEmpty is returned if file logging is enabled without log.file.path.
	ErrFilePathIsEmpty = errors.New("pwdgen.toml log.file.path can not be empty when file logging is enabled")
)

// ErrorHandler reports events zerolog failed to write. It must not log itself.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "pwdgen: could not write log event: %v\n", err)
}
