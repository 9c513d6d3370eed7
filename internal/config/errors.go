package config

import (
	"errors"
)

var (
	// ErrConfigFileNotFound is returned when an explicitly given config directory holds no pwdgen.toml.
	ErrConfigFileNotFound = errors.New("config file pwdgen.toml not found")

	// ErrNegativeClipboardTimeout is returned if clipboard.timeout is below zero.
	ErrNegativeClipboardTimeout = errors.New("toml config clipboard.timeout can not be negative")

	// ErrInvalidConfig wraps struct tag validation failures.
	ErrInvalidConfig = errors.New("invalid config")
)
