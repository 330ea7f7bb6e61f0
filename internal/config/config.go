// Package config resolves run settings from defaults, an optional YAML file
// and command-line flags, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dnafix/internal/catalog"
	"dnafix/internal/edit"
)

// Settings is everything a run needs. Field names double as YAML keys; the
// matching flag names use '-' instead of '_'.
type Settings struct {
	Reference         string `yaml:"reference"`
	Layout            string `yaml:"layout"`
	Diff              string `yaml:"diff"`
	Out               string `yaml:"out"`
	Log               string `yaml:"log"`
	AppendLog         bool   `yaml:"append_log"`
	Substitute        string `yaml:"substitute"`
	Overlap           string `yaml:"overlap"`
	Summary           bool   `yaml:"summary"`
	Verbose           bool   `yaml:"verbose"`
	Quiet             bool   `yaml:"quiet"`
	FailOnDiagnostics bool   `yaml:"fail_on_diagnostics"`
}

// Defaults are the historical file names of the original workflow.
func Defaults() Settings {
	return Settings{
		Reference:  "Reference.tsv",
		Layout:     string(catalog.LayoutOrdered),
		Diff:       "DIFF.tsv",
		Out:        "DIFF.fixed.tsv",
		Log:        "log.txt",
		Substitute: string(edit.SubstituteSplice),
		Overlap:    string(edit.OverlapWarn),
	}
}

// Load reads a YAML settings file on top of Defaults. Unknown keys are an
// error.
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	s, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads YAML settings from r on top of Defaults.
func Decode(r io.Reader) (Settings, error) {
	s := Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, err
	}
	return s, nil
}

// Overlay returns base with every field whose flag was set on the command
// line taken from flags. set reports whether a flag name was given.
func Overlay(base, flags Settings, set func(name string) bool) Settings {
	out := base
	str := func(name string, dst *string, v string) {
		if set(name) {
			*dst = v
		}
	}
	flag := func(name string, dst *bool, v bool) {
		if set(name) {
			*dst = v
		}
	}
	str("reference", &out.Reference, flags.Reference)
	str("layout", &out.Layout, flags.Layout)
	str("diff", &out.Diff, flags.Diff)
	str("out", &out.Out, flags.Out)
	str("log", &out.Log, flags.Log)
	flag("append-log", &out.AppendLog, flags.AppendLog)
	str("substitute", &out.Substitute, flags.Substitute)
	str("overlap", &out.Overlap, flags.Overlap)
	flag("summary", &out.Summary, flags.Summary)
	flag("verbose", &out.Verbose, flags.Verbose)
	flag("quiet", &out.Quiet, flags.Quiet)
	flag("fail-on-diagnostics", &out.FailOnDiagnostics, flags.FailOnDiagnostics)
	return out
}

// EditOptions converts the edit-related settings.
func (s Settings) EditOptions() edit.Options {
	return edit.Options{
		Substitute: edit.SubstituteMode(s.Substitute),
		Overlap:    edit.OverlapPolicy(s.Overlap),
	}
}

// Validate checks the settings for a run.
func (s Settings) Validate() error {
	switch {
	case strings.TrimSpace(s.Reference) == "":
		return errors.New("--reference is required")
	case strings.TrimSpace(s.Diff) == "":
		return errors.New("--diff is required")
	case strings.TrimSpace(s.Out) == "":
		return errors.New("--out is required")
	case s.Reference == "-":
		return errors.New("--reference cannot be read from stdin")
	case s.Diff != "-" && s.Diff == s.Out:
		return fmt.Errorf("--out %q would overwrite the input", s.Out)
	case s.Log != "" && (s.Log == s.Out || s.Log == s.Diff):
		return fmt.Errorf("--log %q collides with input or output", s.Log)
	case s.Quiet && s.Verbose:
		return errors.New("--quiet conflicts with --verbose")
	}
	switch catalog.Layout(s.Layout) {
	case catalog.LayoutOrdered, catalog.LayoutNamed:
	default:
		return fmt.Errorf("invalid --layout %q (want ordered | named)", s.Layout)
	}
	return s.EditOptions().Validate()
}
