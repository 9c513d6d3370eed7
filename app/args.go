package app

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// separateNegativeNumbers keeps values like "-5" positional. pflag would read
// them as shorthand flags, so when one is present the flags are moved in
// front of a "--" and all positional values follow it in their original order.
func separateNegativeNumbers(cmd *cobra.Command, args []string) []string {
	var (
		flags, positional []string
		negative          bool
	)

	for i := 0; i < len(args); i++ {
		a := args[i]

		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(a):
			positional = append(positional, a)
			negative = true
		case strings.HasPrefix(a, "-") && len(a) > 1:
			flags = append(flags, a)

			if takesValue(cmd, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, a)
		}
	}

	if !negative {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, flags...)
	out = append(out, "--")

	return append(out, positional...)
}

func isNegativeNumber(a string) bool {
	if !strings.HasPrefix(a, "-") {
		return false
	}

	_, err := strconv.ParseFloat(a, 64)

	return err == nil
}

// takesValue reports whether a long flag given without "=" consumes the next argument.
func takesValue(cmd *cobra.Command, a string) bool {
	if !strings.HasPrefix(a, "--") || strings.Contains(a, "=") {
		return false
	}

	name := strings.TrimPrefix(a, "--")

	var f *pflag.Flag
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		if f = fs.Lookup(name); f != nil {
			break
		}
	}

	return f != nil && f.Value.Type() != "bool"
}
