package creatures

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xavierbriand/dolmenwood-sub001/internal/dice"
	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
)

// YAMLConfig holds the configuration for the flat-file repository
type YAMLConfig struct {
	// Dir is scanned non-recursively for .yaml/.yml files. Each file is
	// a YAML stream; each document is one creature.
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
	byName map[string]*entities.CreatureDefinition
}

// Ensure yamlRepository implements Repository
var _ Repository = (*yamlRepository)(nil)

// NewYAMLRepository loads every creature definition under cfg.Dir into
// memory. Dice notations inside a statblock are checked on load.
func NewYAMLRepository(cfg *YAMLConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dirEntries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read creature directory %q", cfg.Dir)
	}

	repo := &yamlRepository{byName: make(map[string]*entities.CreatureDefinition)}

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
		var creature entities.CreatureDefinition
		if err := dec.Decode(&creature); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.WrapWithCodef(err, errors.CodeFailedPrecondition,
				"invalid YAML in %q", path)
		}

		if err := validate(&creature); err != nil {
			return errors.Wrapf(err, "in %q", path)
		}
		if _, exists := r.byName[creature.Name]; exists {
			return errors.AlreadyExistsf("duplicate creature %q in %q", creature.Name, path)
		}

		c := creature
		r.byName[creature.Name] = &c
	}
}

func validate(creature *entities.CreatureDefinition) error {
	if creature.Name == "" {
		return errors.FailedPrecondition("creature is missing its name")
	}
	if creature.NumberAppearing != "" {
		if _, err := dice.Parse(creature.NumberAppearing); err != nil {
			return errors.Wrapf(err, "creature %q number_appearing", creature.Name)
		}
	}
	for _, attack := range creature.Attacks {
		if attack.Damage == "" {
			continue
		}
		if _, err := dice.Parse(attack.Damage); err != nil {
			return errors.Wrapf(err, "creature %q attack %q damage", creature.Name, attack.Name)
		}
	}
	return nil
}

// GetByName retrieves a creature by its exact name
func (r *yamlRepository) GetByName(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	creature, ok := r.byName[input.Name]
	if !ok {
		return nil, errors.CreatureNotFound(input.Name)
	}

	return &GetOutput{Creature: creature}, nil
}

// List returns all loaded creatures, ordered by name
func (r *yamlRepository) List(_ context.Context) (*ListOutput, error) {
	out := make([]*entities.CreatureDefinition, 0, len(r.byName))
	for _, creature := range r.byName {
		out = append(out, creature)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return &ListOutput{Creatures: out}, nil
}
