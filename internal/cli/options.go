// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"dnafix/internal/config"
	"dnafix/internal/version"
)

// Options holds the parsed command line.
type Options struct {
	config.Settings

	ConfigPath  string
	CheckUpdate bool
	Version     bool
}

// NewFlagSet returns a FlagSet with ContinueOnError and the dnafix usage text.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, `%s: replay DIFF instructions against ALU/LINE1 baselines

Version: %s

Usage:
  %s [flags] [DIFF.tsv]

Reads LOC, SVTYPE and DIFF columns, applies the comma-separated DIFF
instructions to the baseline for SVTYPE, and writes the input with a
FIXED column appended. Problems with individual instructions go to the
log file; the run continues.

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags. Precedence is defaults, then
// the --config file, then flags given explicitly.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	v := config.Defaults()

	fs.StringVarP(&opt.ConfigPath, "config", "c", "", "YAML settings file")

	// Input / output
	fs.StringVarP(&v.Reference, "reference", "r", v.Reference, "baseline sequences (TSV or FASTA, .gz ok)")
	fs.StringVar(&v.Layout, "layout", v.Layout, "TSV reference layout: ordered | named")
	fs.StringVarP(&v.Diff, "diff", "d", v.Diff, "DIFF file to fix ('-' for stdin)")
	fs.StringVarP(&v.Out, "out", "o", v.Out, "output file ('-' for stdout)")
	fs.StringVarP(&v.Log, "log", "l", v.Log, "diagnostic log file ('' to disable)")
	fs.BoolVar(&v.AppendLog, "append-log", v.AppendLog, "append to the log instead of truncating it")

	// Edit semantics
	fs.StringVarP(&v.Substitute, "substitute", "s", v.Substitute, "substitution mode: splice | replace")
	fs.StringVar(&v.Overlap, "overlap", v.Overlap, "overlapping instructions: warn | reject")

	// Reporting
	fs.BoolVar(&v.Summary, "summary", v.Summary, "print a run summary to stderr")
	fs.BoolVar(&v.Verbose, "verbose", v.Verbose, "echo each diagnostic to stderr")
	fs.BoolVarP(&v.Quiet, "quiet", "q", v.Quiet, "suppress non-essential warnings")
	fs.BoolVar(&v.FailOnDiagnostics, "fail-on-diagnostics", v.FailOnDiagnostics, "exit 1 if any diagnostic was written")

	fs.BoolVar(&opt.CheckUpdate, "check-update", false, "check for a newer release and exit")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&help, "help", "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, pflag.ErrHelp
	}
	if opt.Version || opt.CheckUpdate {
		return opt, nil
	}

	set := fs.Changed
	switch pos := fs.Args(); {
	case len(pos) > 1:
		return opt, fmt.Errorf("expected at most one DIFF file, got %d", len(pos))
	case len(pos) == 1 && fs.Changed("diff"):
		return opt, errors.New("DIFF file given both as --diff and as an argument")
	case len(pos) == 1:
		v.Diff = pos[0]
		set = func(name string) bool { return name == "diff" || fs.Changed(name) }
	}

	opt.Settings = v
	if opt.ConfigPath != "" {
		base, err := config.Load(opt.ConfigPath)
		if err != nil {
			return opt, err
		}
		opt.Settings = config.Overlay(base, v, set)
	}
	return opt, opt.Settings.Validate()
}
