package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/pwdgen/pwdgen/internal/clipboard"
	"github.com/pwdgen/pwdgen/internal/generator"
	"github.com/pwdgen/pwdgen/internal/metrics"
)

const (
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

// runner generates one password and reports it.
type runner struct {
	out      io.Writer
	defaults generator.Request
	gen      *generator.Generator
	sink     clipboard.Sink
	metrics  *metrics.Metrics
}

// run never fails: an invalid length is printed instead of a password.
func (r *runner) run(ctx context.Context, args []string) {
	r.usage()

	req, err := generator.ParseRequest(args, r.defaults)
	if err == nil {
		var pwd string

		if pwd, err = r.gen.Generate(req); err == nil {
			r.report(ctx, req, pwd)

			return
		}
	}

	if errors.Is(err, generator.ErrInvalidLength) || errors.Is(err, generator.ErrLengthTooLarge) {
		log.Info().Err(err).Strs("args", args).Msg("invalid length")

		if r.metrics != nil {
			r.metrics.Invalid()
		}
	}

	_, _ = fmt.Fprintf(r.out, "* %s\n", err)
}

func (r *runner) report(ctx context.Context, req generator.Request, pwd string) {
	size := generator.NewAlphabet(req.IncludeNumbers, req.IncludeSymbols).Len()
	copied := r.sink.Copy(ctx, pwd)

	log.Debug().
		Int("length", req.Length).
		Int("alphabetSize", size).
		Bool("mixedCase", req.MixedCase).
		Bool("copied", copied).
		Msg("password generated")

	if r.metrics != nil {
		r.metrics.Generated(size)
		r.metrics.Clipboard(copied)
	}

	if copied {
		_, _ = fmt.Fprintf(r.out, "* Password generated and saved to clipboard! \n* Password: %s%s%s\n\n",
			colorYellow, pwd, colorReset)

		return
	}

	_, _ = fmt.Fprintf(r.out, "* Password generated but could not be saved to clipboard! \nPassword: %s%s%s\n",
		colorYellow, pwd, colorReset)
}

func (r *runner) usage() {
	_, _ = fmt.Fprint(r.out,
		"* Usage: \n\npwdgen [length:int] [case sensitivity:1|0] [numbers:1|0] [symbols:1|0]\n\n")
	_, _ = fmt.Fprintf(r.out,
		"* Default settings are length = %d, case sensitivity = %d, numbers = %d, symbols = %d\n\n",
		r.defaults.Length, flag(r.defaults.MixedCase), flag(r.defaults.IncludeNumbers), flag(r.defaults.IncludeSymbols))
}

func flag(b bool) int {
	if b {
		return 1
	}

	return 0
}
