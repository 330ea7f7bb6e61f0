// Package update compares the running version with the latest GitHub
// release tag.
package update

import (
	"fmt"
	"io"

	"github.com/tcnksm/go-latest"
)

const (
	Owner      = "dnafix"
	Repository = "dnafix"
)

// Source is where release tags come from.
func Source() latest.Source {
	return &latest.GithubTag{Owner: Owner, Repository: Repository}
}

// Check reports to w whether current is outdated according to src.
// Development builds cannot be compared and say so.
func Check(src latest.Source, current string, w io.Writer) error {
	if current == "" || current == "dev" {
		_, err := fmt.Fprintln(w, "development build; no release to compare against")
		return err
	}
	res, err := latest.Check(src, current)
	if err != nil {
		return fmt.Errorf("update check: %w", err)
	}
	if res.Outdated {
		_, err = fmt.Fprintf(w, "A new version is available: %s (you have %s)\n", res.Current, current)
		return err
	}
	_, err = fmt.Fprintf(w, "You are using the latest version: %s\n", current)
	return err
}
