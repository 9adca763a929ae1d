package fixture

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a fixture file omits the field.
const (
	DefaultChunkSize = 15
	DefaultPreview   = 5
	DefaultDoneLimit = 200
)

// ErrInvalid is returned when a fixture fails validation.
var ErrInvalid = errors.New("invalid fixture")

//go:embed sample.yaml
var sample []byte

// Fixture is the input of a simulation run.
type Fixture struct {
	Name      string `json:"name"`
	Text      string `json:"text"`
	ChunkSize int    `json:"chunk_size"`
	// Preview is how many chunks the report shows.
	Preview int `json:"preview"`
	// DoneLimit is how many code points of the done line the report shows.
	DoneLimit int `json:"done_limit"`
}

// Default returns the built-in sample.
func Default() Fixture {
	fx, err := Parse(sample, ".yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded fixture is broken: %v", err))
	}
	return fx
}

// Load reads a fixture file. JSON is used for ".json" files, YAML otherwise.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("failed to read fixture: %w", err)
	}
	fx, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Fixture{}, err
	}
	if fx.Name == "" {
		fx.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return fx, nil
}

// document is the on-disk shape of a fixture. Sizes are pointers so an absent
// key can be told apart from an explicit zero.
type document struct {
	Name      string     `yaml:"name" json:"name"`
	Text      scalarText `yaml:"text" json:"text"`
	ChunkSize *int       `yaml:"chunk_size" json:"chunk_size"`
	Preview   *int       `yaml:"preview" json:"preview"`
	DoneLimit *int       `yaml:"done_limit" json:"done_limit"`
}

// scalarText only accepts YAML string scalars. Plain yaml.v3 decoding would
// turn `text: 12345` into "12345".
type scalarText string

func (t *scalarText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return fmt.Errorf("line %d: text must be a string, got %s", node.Line, node.ShortTag())
	}
	*t = scalarText(node.Value)
	return nil
}

// Parse decodes a fixture and fills in defaults for omitted sizes.
// Sizes given explicitly are kept as-is and checked by Validate.
func Parse(data []byte, ext string) (Fixture, error) {
	var doc document
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Fixture{}, fmt.Errorf("failed to parse fixture json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Fixture{}, fmt.Errorf("failed to parse fixture yaml: %w", err)
		}
	}

	fx := Fixture{
		Name:      doc.Name,
		Text:      string(doc.Text),
		ChunkSize: valueOr(doc.ChunkSize, DefaultChunkSize),
		Preview:   valueOr(doc.Preview, DefaultPreview),
		DoneLimit: valueOr(doc.DoneLimit, DefaultDoneLimit),
	}
	return fx, fx.Validate()
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// Validate checks the sizes of the fixture.
func (f Fixture) Validate() error {
	switch {
	case f.ChunkSize <= 0:
		return fmt.Errorf("%w: chunk_size must be positive, got %d", ErrInvalid, f.ChunkSize)
	case f.Preview < 0:
		return fmt.Errorf("%w: preview must not be negative, got %d", ErrInvalid, f.Preview)
	case f.DoneLimit < 0:
		return fmt.Errorf("%w: done_limit must not be negative, got %d", ErrInvalid, f.DoneLimit)
	}
	return nil
}
