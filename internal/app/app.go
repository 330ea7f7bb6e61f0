// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"

	"dnafix/internal/catalog"
	"dnafix/internal/cli"
	"dnafix/internal/cmdutil"
	"dnafix/internal/diag"
	"dnafix/internal/fasta"
	"dnafix/internal/record"
	"dnafix/internal/report"
	"dnafix/internal/update"
	"dnafix/internal/version"
	"dnafix/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitDiagnostics = 1 // only with --fail-on-diagnostics
	ExitUsage       = 2
	ExitIO          = 3
	ExitCancelled   = 130
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(version.Tool)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(stdout)
		if errors.Is(err, pflag.ErrHelp) {
			fs.Usage()
			return ExitOK
		}
		cmdutil.Errorf(stderr, "%v", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", version.Tool, version.Version)
		return ExitOK
	}
	if opts.CheckUpdate {
		if err := update.Check(update.Source(), version.Version, stdout); err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			return ExitIO
		}
		return ExitOK
	}
	return run(ctx, opts, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, opts cli.Options, stdout, stderr io.Writer) int {
	start := time.Now()
	s := opts.Settings

	cat, err := catalog.Load(s.Reference, catalog.Layout(s.Layout))
	if err != nil {
		cmdutil.Errorf(stderr, "reference: %v", err)
		return ExitUsage
	}

	in, err := fasta.Open(s.Diff)
	if err != nil {
		cmdutil.Errorf(stderr, "diff: %v", err)
		return ExitUsage
	}
	defer func() { _ = in.Close() }()

	out, err := writers.Create(s.Out, stdout, false)
	if err != nil {
		cmdutil.Errorf(stderr, "out: %v", err)
		return ExitIO
	}

	tally := report.NewTally()
	sinks := []diag.Sink{tally}
	var logSink *diag.Log
	var logDest *writers.Dest
	if s.Log != "" {
		logDest, err = writers.Create(s.Log, stdout, s.AppendLog)
		if err != nil {
			_ = out.Close()
			cmdutil.Errorf(stderr, "log: %v", err)
			return ExitIO
		}
		logSink = diag.NewLog(logDest)
		if err := logSink.WriteHeader(version.Tool, version.Version, start); err != nil {
			_ = out.Close()
			_ = logDest.Close()
			cmdutil.Errorf(stderr, "log: %v", err)
			return ExitIO
		}
		sinks = append(sinks, logSink)
	}
	if s.Verbose {
		sinks = append(sinks, diag.SinkFunc(func(d diag.Diagnostic) {
			cmdutil.Warnf(stderr, false, "%s", d)
		}))
	}

	fixer := &record.Fixer{Catalog: cat, Sink: diag.Tee(sinks...), Options: s.EditOptions()}
	st, perr := record.Process(ctx, in, out, fixer)

	code := ExitOK
	if cerr := out.Close(); cerr != nil && perr == nil {
		perr = cerr
	}
	if logDest != nil {
		if lerr := logSink.Err(); lerr != nil {
			cmdutil.Errorf(stderr, "log: %v", lerr)
			code = ExitIO
		}
		if lerr := logDest.Close(); lerr != nil && code == ExitOK {
			cmdutil.Errorf(stderr, "log: %v", lerr)
			code = ExitIO
		}
	}

	switch {
	case perr == nil:
	case writers.IsBrokenPipe(perr):
		// downstream closed early; not an error
	case errors.Is(perr, context.Canceled):
		return ExitCancelled
	default:
		cmdutil.Errorf(stderr, "%v", perr)
		return ExitIO
	}
	if code != ExitOK {
		return code
	}

	if s.Summary {
		_ = report.WriteSummary(stderr, report.Summary{
			Input:   s.Diff,
			Output:  s.Out,
			Log:     s.Log,
			Stats:   st,
			Tally:   tally,
			Elapsed: time.Since(start).Round(time.Millisecond).String(),
		})
	}
	if n := tally.Total(); n > 0 {
		if s.Log != "" {
			cmdutil.Warnf(stderr, s.Quiet, "%d diagnostics written to %s", n, s.Log)
		} else {
			cmdutil.Warnf(stderr, s.Quiet, "%d diagnostics (log disabled)", n)
		}
		if s.FailOnDiagnostics {
			return ExitDiagnostics
		}
	}
	return ExitOK
}
