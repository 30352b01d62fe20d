package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nopa/matrix"
)

// ErrDecode is returned when a document is not valid YAML of the expected shape.
var ErrDecode = errors.New("fixture: cannot decode document")

// Case is one annotated scenario.
type Case struct {
	Name       string  `yaml:"name"`
	Costs      bool    `yaml:"costs"`
	Matrix     []any   `yaml:"matrix"`
	Assignment []int   `yaml:"assignment"`
	Value      float64 `yaml:"value"`
}

// Build validates the case's matrix in the case's mode.
func (c Case) Build() (*matrix.Matrix[float64], error) {
	return matrix.FromAny(c.Matrix, c.Costs)
}

// casesDoc is the top-level shape of a scenario file.
type casesDoc struct {
	Cases []Case `yaml:"cases"`
}

// Load decodes a grid document from r and validates it.
// An empty document yields matrix.ErrNoItems.
func Load(r io.Reader, costs bool) (*matrix.Matrix[float64], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fixture: read: %w", err)
	}

	var rows []any
	if err = yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return matrix.FromAny(rows, costs)
}

// LoadFile is Load on the file at path.
func LoadFile(path string, costs bool) (*matrix.Matrix[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()

	m, err := Load(f, costs)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}

	return m, nil
}

// LoadCases decodes a scenario document from r. Matrices are not validated
// here; call Case.Build.
func LoadCases(r io.Reader) ([]Case, error) {
	var doc casesDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return doc.Cases, nil
}

// LoadCasesFile is LoadCases on the file at path.
func LoadCasesFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()

	cases, err := LoadCases(f)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}

	return cases, nil
}
