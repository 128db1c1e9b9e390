// Package prior - YAML loading and the embedded defaults.
package prior

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// tableSpec is the YAML shape of one table document.
type tableSpec struct {
	NumVars   int                `yaml:"num_vars"`
	NumParams int                `yaml:"num_params"`
	Weights   map[string]float64 `yaml:"weights"`
}

// defaultsSpec is the YAML shape of the embedded defaults file.
type defaultsSpec struct {
	Tables []tableSpec `yaml:"tables"`
}

// defaults holds the parsed embedded tables; built once at init.
// A broken embedded file is a build defect, so init panics rather than
// returning an error nobody can act on.
var defaults = func() []Table {
	var spec defaultsSpec
	if err := yaml.Unmarshal(defaultsYAML, &spec); err != nil {
		panic(fmt.Sprintf("prior: embedded defaults are not valid YAML: %v", err))
	}
	out := make([]Table, 0, len(spec.Tables))
	for _, ts := range spec.Tables {
		t, err := New(ts.NumVars, ts.NumParams, ts.Weights)
		if err != nil {
			panic(fmt.Sprintf("prior: embedded defaults are invalid: %v", err))
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		panic("prior: embedded defaults contain no tables")
	}
	return out
}()

// Default returns the single-variable default table (nv=1, np=5), the
// regime the search engine assumes when the caller expresses no preference.
func Default() Table { return defaults[0] }

// For returns the embedded default table for the given regime, preferring an
// exact (numVars, numParams) match and falling back to the nearest available
// numVars.  Returns ErrNoTable only for non-positive regimes.
//
// Complexity: O(len(defaults)).
func For(numVars, numParams int) (Table, error) {
	if numVars < 1 || numParams < 1 {
		return Table{}, ErrNoTable
	}
	best := defaults[0]
	bestDist := -1
	for _, t := range defaults {
		if t.NumVars == numVars && t.NumParams == numParams {
			return t, nil
		}
		d := numVars - t.NumVars
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, nil
}

// Load parses one YAML table document from r and validates it.
func Load(r io.Reader) (Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Table{}, fmt.Errorf("prior: read: %w", err)
	}
	var ts tableSpec
	if err = yaml.Unmarshal(raw, &ts); err != nil {
		return Table{}, fmt.Errorf("prior: parse: %w", err)
	}
	return New(ts.NumVars, ts.NumParams, ts.Weights)
}

// LoadFile parses and validates the YAML table document at path.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("prior: open: %w", err)
	}
	defer f.Close()
	return Load(f)
}
