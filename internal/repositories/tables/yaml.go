package tables

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
)

// YAMLConfig holds the configuration for the flat-file repository
type YAMLConfig struct {
	// Dir is scanned non-recursively for .yaml/.yml files. Each file is
	// a YAML stream; each document is one table.
	Dir string
}

// Validate ensures all required configuration is provided
func (c *YAMLConfig) Validate() error {
	if c.Dir == "" {
		return errors.InvalidArgument("data directory is required")
	}
	return nil
}

type yamlRepository struct {
	byName map[string]*entities.LookupTable
}

// Ensure yamlRepository implements Repository
var _ Repository = (*yamlRepository)(nil)

// NewYAMLRepository loads every table definition under cfg.Dir into
// memory. Each table is coverage-validated on load; a defective file
// fails construction rather than surfacing mid-resolution.
func NewYAMLRepository(cfg *YAMLConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dirEntries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read table directory %q", cfg.Dir)
	}

	repo := &yamlRepository{byName: make(map[string]*entities.LookupTable)}

	for _, entry := range dirEntries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}
		path := filepath.Join(cfg.Dir, entry.Name())
		if err := repo.loadFile(path); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func (r *yamlRepository) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %q", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	dec := yaml.NewDecoder(f)
	for {
		var table entities.LookupTable
		if err := dec.Decode(&table); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.WrapWithCodef(err, errors.CodeFailedPrecondition,
				"invalid YAML in %q", path)
		}

		if err := ValidateCoverage(&table); err != nil {
			return errors.Wrapf(err, "in %q", path)
		}
		if _, exists := r.byName[table.Name]; exists {
			return errors.AlreadyExistsf("duplicate table %q in %q", table.Name, path)
		}

		t := table
		r.byName[table.Name] = &t
	}
}

// GetByName retrieves a table by its exact name
func (r *yamlRepository) GetByName(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("table name is required")
	}

	table, ok := r.byName[input.Name]
	if !ok {
		return nil, errors.TableNotFound(input.Name)
	}

	return &GetOutput{Table: table}, nil
}

// List returns all loaded tables, ordered by name
func (r *yamlRepository) List(_ context.Context) (*ListOutput, error) {
	out := make([]*entities.LookupTable, 0, len(r.byName))
	for _, table := range r.byName {
		out = append(out, table)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return &ListOutput{Tables: out}, nil
}
