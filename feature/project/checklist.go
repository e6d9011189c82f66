package project

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrMissingRequired is returned when a required project file is absent.
var ErrMissingRequired = errors.New("required files are missing")

// Checklist lists the files expected in the project root.
type Checklist struct {
	Required []string
	Optional []string
}

// DefaultChecklist is the checklist for the storefront project.
var DefaultChecklist = Checklist{
	Required: []string{
		"index.html",
	},
	Optional: []string{
		"js/order-manager.js",
		"quick-order-test.html",
		"test-order-saving.html",
	},
}

// Report is the result of a checklist run.
type Report struct {
	MissingRequired []string
	MissingOptional []string
}

// OK reports whether startup may proceed.
func (r Report) OK() bool {
	return len(r.MissingRequired) == 0
}

// Err returns ErrMissingRequired naming the missing files, or nil.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrMissingRequired, r.MissingRequired)
}

// Check returns the files of list that do not exist under dir.
// Paths in list use forward slashes.
func Check(fs afero.Fs, dir string, list Checklist) (Report, error) {
	var report Report

	missing, err := missingFiles(fs, dir, list.Required)
	if err != nil {
		return report, err
	}
	report.MissingRequired = missing

	missing, err = missingFiles(fs, dir, list.Optional)
	if err != nil {
		return report, err
	}
	report.MissingOptional = missing

	return report, nil
}

func missingFiles(fs afero.Fs, dir string, files []string) ([]string, error) {
	var missing []string
	for _, file := range files {
		exists, err := afero.Exists(fs, filepath.Join(dir, filepath.FromSlash(file)))
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", file, err)
		}
		if !exists {
			missing = append(missing, file)
		}
	}
	return missing, nil
}

// Print writes the human-readable outcome of the report to w.
// Nothing is written when every file is present.
func (r Report) Print(w io.Writer) {
	if !r.OK() {
		fmt.Fprintln(w, "❌ Error: Required files are missing:")
		for _, file := range r.MissingRequired {
			fmt.Fprintf(w, "   • %s\n", file)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "💡 Make sure you're running this from the project root directory")
		return
	}

	if len(r.MissingOptional) > 0 {
		fmt.Fprintln(w, "⚠️  Note: Some optional files are missing (server will still start):")
		for _, file := range r.MissingOptional {
			fmt.Fprintf(w, "   • %s\n", file)
		}
		fmt.Fprintln(w)
	}
}
