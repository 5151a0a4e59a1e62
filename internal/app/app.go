// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"msaclean-core/flank"
	"msaclean-core/msa"
	"msaclean/internal/cli"
	"msaclean/internal/output"
	"msaclean/internal/version"
	"msaclean/internal/writers"
)

// RunContext drives one cleaning run: parse options, load the
// alignment, locate the reference, derive its gap-run ranges, mask
// every record, and write the result.
//
// Exit codes: 0 success (broken pipe on stdout included), 1 open /
// malformed-input / reference errors, 2 usage errors, 3 write errors.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("msaclean")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		_ = outw.Flush()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "msaclean version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if !opts.Quiet {
		fmt.Fprintf(stderr, "processing %s using %q as the reference\n", opts.File, opts.Ref)
	}

	aln, err := msa.ReadPath(opts.File)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ref, err := aln.FindReference(opts.Ref)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if parent.Err() != nil {
		return 130
	}

	ranges := flank.Extract(ref.Seq)
	if err := flank.Apply(ranges, aln); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	outPath := opts.Out
	if outPath == "" {
		outPath = output.DefaultName(opts.File)
	}
	if outPath == "-" {
		if err := msa.Write(outw, aln); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}
	if err := output.WritePath(outPath, aln); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if !opts.Quiet {
		fmt.Fprintf(stderr, "wrote %s (%d records, %d masked ranges)\n", outPath, aln.Len(), len(ranges))
	}
	return 0
}

// Run uses a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
