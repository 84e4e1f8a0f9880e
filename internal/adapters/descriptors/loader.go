package descriptors

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/workitems/internal/adapters/descriptors/schema"
	"github.com/jsamuelsen11/workitems/internal/domain/descriptor"
)

// Decode reads every YAML document in r and returns one work item type per
// document, in order.
func Decode(r io.Reader) ([]*descriptor.Type, error) {
	dec := yaml.NewDecoder(r)

	var types []*descriptor.Type
	for {
		var dto schema.TypeDTO
		err := dec.Decode(&dto)
		if errors.Is(err, io.EOF) {
			return types, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding descriptor document: %w", err)
		}

		t, err := schema.ToDomainType(&dto)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
}

// LoadFile decodes the work item types in the YAML file at path.
func LoadFile(path string) ([]*descriptor.Type, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening descriptor file: %w", err)
	}
	defer f.Close()

	types, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return types, nil
}

// LoadDir builds a Registry from every .yaml and .yml file in dir, read in
// lexical order. Subdirectories are ignored.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	var types []*descriptor.Type
	for _, name := range names {
		loaded, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		types = append(types, loaded...)
	}

	return NewRegistry(types...)
}
