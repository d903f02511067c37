// Package encounter implements the encounter orchestrator: recursive,
// weighted resolution of lookup tables down to a terminal result.
package encounter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xavierbriand/dolmenwood-sub001/internal/dice"
	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/clock"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/idgen"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/rng"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/creatures"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/history"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/tables"
	"github.com/xavierbriand/dolmenwood-sub001/internal/selection"
)

// Default context for history records
const ContextEncounters = "encounters"

// Service defines the interface for encounter operations
type Service interface {
	// Resolve recursively resolves a named table down to a terminal encounter
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// Check rolls whether a wandering encounter happens at all
	Check(ctx context.Context, input *CheckInput) (*CheckOutput, error)

	// RollDice evaluates an ad-hoc dice notation
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	TableRepo    tables.Repository
	CreatureRepo creatures.Repository

	// HistoryRepo is optional; without it nothing is recorded
	HistoryRepo history.Repository

	// HistoryTTL bounds how long a newly created session log survives.
	// Zero leaves the repository's default in place.
	HistoryTTL time.Duration

	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.TableRepo == nil {
		vb.RequiredField("TableRepo")
	}
	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	tableRepo    tables.Repository
	creatureRepo creatures.Repository
	historyRepo  history.Repository
	historyTTL   time.Duration
	idGen        idgen.Generator
	clock        clock.Clock
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		tableRepo:    cfg.TableRepo,
		creatureRepo: cfg.CreatureRepo,
		historyRepo:  cfg.HistoryRepo,
		historyTTL:   cfg.HistoryTTL,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
	}, nil
}

// Resolve recursively resolves a named table down to a terminal encounter.
// Failures abort the whole resolution; no partial encounter is returned.
func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TableName == "" {
		return nil, errors.InvalidArgument("table name is required")
	}
	if input.Source == nil {
		return nil, errors.InvalidArgument("random source is required")
	}

	visited := make(map[string]struct{})
	enc, err := o.resolveTable(ctx, input.TableName, input.Context, input.Source, visited)
	if err != nil {
		return nil, err
	}

	enc.ID = o.idGen.Generate()
	enc.RolledAt = o.clock.Now()

	slog.Info("Encounter resolved",
		"table", input.TableName,
		"region", input.Context.RegionID,
		"type", enc.Type,
		"summary", enc.Summary,
		"encounter_id", enc.ID,
	)

	if input.SessionID != "" {
		record := history.Record{
			RecordID:  enc.ID,
			Kind:      history.KindEncounter,
			Summary:   enc.Summary,
			Encounter: enc,
		}
		if err := o.recordHistory(ctx, input.SessionID, input.SessionContext, record); err != nil {
			return nil, errors.Wrap(err, "failed to record encounter")
		}
	}

	return &ResolveOutput{Encounter: enc}, nil
}

// resolveTable is one step of the resolution state machine. The visited
// set spans a single Resolve call and trips the cycle guard when a
// table name repeats along the recursion path.
func (o *orchestrator) resolveTable(
	ctx context.Context,
	name string,
	gctx entities.GenerationContext,
	src rng.Source,
	visited map[string]struct{},
) (*entities.Encounter, error) {
	if _, seen := visited[name]; seen {
		return nil, errors.CyclicReference(name)
	}
	visited[name] = struct{}{}

	table, err := o.lookupTable(ctx, name, gctx)
	if err != nil {
		return nil, err
	}

	entries := make([]selection.Weighted[entities.RangeEntry], len(table.Rows))
	for i, row := range table.Rows {
		entries[i] = selection.Weighted[entities.RangeEntry]{Weight: row.Width(), Value: row}
	}

	row, err := selection.Pick(entries, src)
	if err != nil {
		return nil, errors.Wrapf(err, "selecting from table %q", table.Name)
	}

	switch row.Type {
	case entities.TypeTable:
		// Tail resolution: the routing table contributes no detail of
		// its own.
		return o.resolveTable(ctx, row.Ref, gctx, src, visited)

	case entities.TypeCreature:
		return o.resolveCreature(ctx, row.Ref, gctx, src)

	default:
		return &entities.Encounter{
			Type:    row.Type,
			Summary: row.Ref,
		}, nil
	}
}

// lookupTable loads a table by name, falling back once to the
// region-qualified variant when the exact name is absent.
func (o *orchestrator) lookupTable(ctx context.Context, name string, gctx entities.GenerationContext) (*entities.LookupTable, error) {
	for _, candidate := range lookupCandidates(name, gctx.RegionID) {
		got, err := o.tableRepo.GetByName(ctx, tables.GetInput{Name: candidate})
		if err == nil {
			return got.Table, nil
		}
		if !errors.IsTableNotFound(err) {
			return nil, errors.Wrapf(err, "loading table %q", candidate)
		}
	}

	// The failure names what the caller asked for, not the fallback.
	return nil, errors.TableNotFound(name)
}

func (o *orchestrator) resolveCreature(ctx context.Context, name string, gctx entities.GenerationContext, src rng.Source) (*entities.Encounter, error) {
	got, err := o.creatureRepo.GetByName(ctx, creatures.GetInput{Name: name})
	if err != nil {
		if errors.IsCreatureNotFound(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "loading creature %q", name)
	}

	details, err := rollCreatureDetails(got.Creature, gctx, src)
	if err != nil {
		return nil, errors.Wrapf(err, "rolling details for creature %q", name)
	}

	return &entities.Encounter{
		Type:    entities.TypeCreature,
		Summary: creatureSummary(got.Creature, details),
		Details: details,
	}, nil
}

// Check rolls whether a wandering encounter happens at all
func (o *orchestrator) Check(_ context.Context, input *CheckInput) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Source == nil {
		return nil, errors.InvalidArgument("random source is required")
	}

	chance := encounterChance(input.Context)
	roll := checkDie.Roll(input.Source)

	slog.Info("Encounter check",
		"terrain", input.Context.Terrain,
		"camping", input.Context.Camping,
		"roll", roll,
		"chance", chance,
	)

	return &CheckOutput{
		Triggered: roll <= chance,
		Roll:      roll,
		Chance:    chance,
	}, nil
}

// RollDice evaluates an ad-hoc dice notation
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}
	if input.Source == nil {
		return nil, errors.InvalidArgument("random source is required")
	}

	expr, err := dice.Parse(input.Notation)
	if err != nil {
		return nil, err
	}

	total := expr.Roll(input.Source)

	slog.Info("Dice rolled",
		"notation", expr.String(),
		"total", total,
	)

	if input.SessionID != "" {
		record := history.Record{
			RecordID: o.idGen.Generate(),
			Kind:     history.KindRoll,
			Summary:  fmt.Sprintf("%s = %d", expr.String(), total),
			Notation: expr.String(),
			Total:    total,
		}
		if err := o.recordHistory(ctx, input.SessionID, input.SessionContext, record); err != nil {
			return nil, errors.Wrap(err, "failed to record roll")
		}
	}

	return &RollDiceOutput{
		Notation: expr.String(),
		Total:    total,
	}, nil
}

// recordHistory appends a record to the session log, creating the
// session on first use.
func (o *orchestrator) recordHistory(ctx context.Context, sessionID, sessionContext string, record history.Record) error {
	if o.historyRepo == nil {
		return errors.FailedPrecondition("no history repository configured")
	}
	if sessionContext == "" {
		sessionContext = ContextEncounters
	}

	getOutput, err := o.historyRepo.Get(ctx, history.GetInput{
		SessionID: sessionID,
		Context:   sessionContext,
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			return errors.Wrap(err, "failed to check for existing session")
		}

		_, err := o.historyRepo.Create(ctx, history.CreateInput{
			SessionID: sessionID,
			Context:   sessionContext,
			Records:   []history.Record{record},
			TTL:       o.historyTTL,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create history session")
		}
		return nil
	}

	session := getOutput.Session
	session.Records = append(session.Records, record)

	if err := o.historyRepo.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to update history session")
	}
	return nil
}
