// Package main provides the entry point of pwdgen, a command line tool that
// generates a random password of configurable length and character
// composition and tries to copy it to the system clipboard. Defaults,
// clipboard behaviour, logging and a Prometheus textfile export are read
// from etc/pwdgen.toml and PWDGEN_* environment variables.
package main
