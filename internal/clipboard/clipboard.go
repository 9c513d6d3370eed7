// Package clipboard places text on the system clipboard where the platform
// has a bound mechanism. Failing to copy is never an error for the caller.
package clipboard

import (
	"context"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pwdgen/pwdgen/internal/platform"
)

// DefaultTimeout bounds a clipboard utility run.
const DefaultTimeout = 5 * time.Second

// Sink copies text to a clipboard and reports whether it did.
type Sink interface {
	Copy(ctx context.Context, text string) bool
}

// Runner runs the named command with stdin attached.
type Runner func(ctx context.Context, stdin io.Reader, name string, args ...string) error

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, stdin io.Reader, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin

	return cmd.Run() //nolint:wrapcheck
}

// Options tune the sink returned by New.
type Options struct {
	Disabled bool          // always use the unsupported sink
	Timeout  time.Duration // zero means DefaultTimeout
	Runner   Runner        // nil means ExecRunner
}

// New returns the sink for p.
func New(p platform.Platform, opts Options) Sink {
	if opts.Disabled {
		return Unsupported{Platform: p}
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	if opts.Runner == nil {
		opts.Runner = ExecRunner
	}

	switch p {
	case platform.Darwin:
		return &Pasteboard{run: opts.Runner, timeout: opts.Timeout}
	default:
		// windows and linux have no clipboard binding
		return Unsupported{Platform: p}
	}
}

// Pasteboard pipes text into the macOS pbcopy utility.
type Pasteboard struct {
	run     Runner
	timeout time.Duration
}

// Copy implements Sink.
func (p *Pasteboard) Copy(ctx context.Context, text string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.run(ctx, strings.NewReader(text), "pbcopy"); err != nil {
		log.Warn().Err(err).Msg("pbcopy failed")

		return false
	}

	return true
}

// Unsupported is used on platforms without a clipboard binding.
type Unsupported struct {
	Platform platform.Platform
}

// Copy implements Sink and always reports false.
func (u Unsupported) Copy(_ context.Context, _ string) bool {
	log.Debug().Stringer("platform", u.Platform).Msg("clipboard not supported")

	return false
}
