package config

import (
	"github.com/jessevdk/go-flags"
)

// Options are the flags go-flags parses, plus --help generation.
type Options struct {
	Columns int `short:"c" long:"columns" description:"number of columns" default:"0"`
}

// ParseArgs parses tcvtArgs with go-flags. Columns == 0 means the flag was
// not given and the caller should fall back to config/default.
func ParseArgs(tcvtArgs []string) (Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[-c N] [--] <cmd> [args...]"
	if _, err := parser.ParseArgs(tcvtArgs); err != nil {
		return opts, err
	}
	return opts, nil
}

// SplitArgv separates tcvt's own flags from the child command's argv,
// exactly the way tcvt.py's optparse.disable_interspersed_args() behaves:
// parsing stops at the first token that isn't part of a recognized tcvt
// flag, and everything from there on — including strings that look like
// flags — is left untouched for the child. A literal "--" also ends tcvt's
// own flags without itself being forwarded.
func SplitArgv(args []string) (tcvtArgs, childArgv []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args[:i], args[i+1:]
		case arg == "-c" || arg == "--columns":
			if i+1 < len(args) {
				tcvtArgs = append(tcvtArgs, arg, args[i+1])
				i++
				continue
			}
			tcvtArgs = append(tcvtArgs, arg)
		case len(arg) > 10 && arg[:10] == "--columns=":
			tcvtArgs = append(tcvtArgs, arg)
		case len(arg) > 2 && arg[:2] == "-c":
			tcvtArgs = append(tcvtArgs, arg)
		default:
			return tcvtArgs, args[i:]
		}
	}
	return tcvtArgs, nil
}
