// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"msaclean/internal/cliutil"
	"msaclean/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Positionals
	File string // alignment to clean
	Ref  string // reference header substring

	// Output
	Out string // output path; "" = derive from File, "-" = stdout

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s: mask reference gap columns in a multiple sequence alignment\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s <file> <ref> [--out PATH]\n\n", name)
		fmt.Fprintln(out, "Arguments:")
		fmt.Fprintln(out, "  file                 alignment file (FASTA-like; gzip or '-' for STDIN)")
		fmt.Fprintln(out, "  ref                  substring uniquely identifying the reference header")
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --out string     output path ('-' for STDOUT) [cleaned_loci_<file>]")
		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet          suppress progress notices")
		fmt.Fprintln(out, "  -v, --version        print version and exit")
		fmt.Fprintln(out, "  -h, --help           show this help and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and the two positionals may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Out, "out", "", "output path ('-' for STDOUT) [cleaned_loci_<file>]")
	fs.StringVar(&opt.Out, "o", "", "alias of --out")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress notices [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	posArgs = append(posArgs, fs.Args()...)
	switch {
	case len(posArgs) < 1:
		return opt, errors.New("missing required <file> argument")
	case len(posArgs) < 2:
		return opt, errors.New("missing required <ref> argument")
	case len(posArgs) > 2:
		return opt, fmt.Errorf("unexpected extra arguments: %v", posArgs[2:])
	}
	opt.File = posArgs[0]
	opt.Ref = posArgs[1]
	if opt.Ref == "" {
		return opt, errors.New("<ref> must not be empty")
	}
	return opt, nil
}
