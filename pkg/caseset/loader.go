package caseset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/shearwater-labs/needle/pkg/engine"
	"gopkg.in/yaml.v3"
)

// Loader handles loading cases from YAML files.
type Loader struct {
	fs     fs.FS // embedded filesystem for built-in case sets
	onSkip func(path string, err error)
}

// NewLoader creates a loader with built-in case sets from the embedded
// filesystem.
func NewLoader() *Loader {
	return &Loader{fs: builtinCasesFS}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// OnSkip installs a hook invoked when LoadDir skips a malformed file.
// Without a hook malformed files are skipped silently; the CLI wires this
// to a stderr warning.
func (l *Loader) OnSkip(fn func(path string, err error)) {
	l.onSkip = fn
}

// LoadCases parses cases from YAML bytes. Every case must carry all four
// keys, and expected must be a canonical offsets string.
func (l *Loader) LoadCases(data []byte) ([]*Case, error) {
	var file yamlCaseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Cases) == 0 {
		return nil, fmt.Errorf("no cases found in YAML")
	}

	cases := make([]*Case, 0, len(file.Cases))
	for i, yc := range file.Cases {
		c, err := convertYAMLCase(yc)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// LoadFile loads cases from a YAML file path on the OS filesystem.
func (l *Loader) LoadFile(path string) ([]*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	cases, err := l.LoadCases(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// LoadDir loads every *.yml and *.yaml file in a directory on the OS
// filesystem, in sorted order. Malformed files are skipped via the OnSkip
// hook so one bad file never hides the rest of the set.
func (l *Loader) LoadDir(dir string) ([]*Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var cases []*Case
	for _, name := range names {
		ext := filepath.Ext(name)
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		path := filepath.Join(dir, name)
		fileCases, err := l.LoadFile(path)
		if err != nil {
			if l.onSkip != nil {
				l.onSkip(path, err)
			}
			continue
		}
		cases = append(cases, fileCases...)
	}
	return cases, nil
}

// LoadShared loads the built-in shared case set.
func (l *Loader) LoadShared() ([]*Case, error) {
	return l.loadBuiltin("cases/shared")
}

// LoadHidden loads the built-in hidden case set.
func (l *Loader) LoadHidden() ([]*Case, error) {
	return l.loadBuiltin("cases/hidden")
}

// LoadAll loads both built-in sets, shared first.
func (l *Loader) LoadAll() ([]*Case, error) {
	shared, err := l.LoadShared()
	if err != nil {
		return nil, err
	}
	hidden, err := l.LoadHidden()
	if err != nil {
		return nil, err
	}
	return append(shared, hidden...), nil
}

// loadBuiltin loads all case files under dir in the loader's filesystem.
// Built-in sets ship with the binary, so any error here is a packaging bug
// and propagates instead of being skipped.
func (l *Loader) loadBuiltin(dir string) ([]*Case, error) {
	var cases []*Case

	err := fs.WalkDir(l.fs, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		fileCases, err := l.LoadCases(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		cases = append(cases, fileCases...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cases, nil
}

// convertYAMLCase validates a parsed case and converts it to a Case.
func convertYAMLCase(yc yamlCase) (*Case, error) {
	switch {
	case yc.Name == nil:
		return nil, fmt.Errorf("missing key %q", "name")
	case yc.Text == nil:
		return nil, fmt.Errorf("missing key %q", "text")
	case yc.Pattern == nil:
		return nil, fmt.Errorf("missing key %q", "pattern")
	case yc.Expected == nil:
		return nil, fmt.Errorf("missing key %q", "expected")
	}

	if _, err := engine.ParseOffsets(*yc.Expected); err != nil {
		return nil, fmt.Errorf("case %q: expected is not a canonical offsets string: %w", *yc.Name, err)
	}

	return &Case{
		Name:     *yc.Name,
		Text:     *yc.Text,
		Pattern:  *yc.Pattern,
		Expected: *yc.Expected,
	}, nil
}
