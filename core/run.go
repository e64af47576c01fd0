package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/auditgauge/auditgauge/internal/catalog"
	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// ExecuteReport runs a full scoring session: load the catalog and weights,
// fetch the response snapshot, aggregate and assemble the report model.
// Weight configuration problems are fatal unless the config is lenient, in
// which case they are logged and scoring proceeds with the weights as given.
func ExecuteReport(ctx context.Context, cfg *contract.Config, store contract.SnapshotStore) (*schema.ReportModel, error) {
	q, weights, err := loadInputs(cfg)
	if err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, cfg, store)
	if err != nil {
		return nil, err
	}

	tree, err := Aggregate(q, weights, snap.Responses, snap.SubResponses, cfg.OnInvalid)
	if err != nil {
		return nil, err
	}
	for _, inv := range tree.Invalid {
		contract.LogWarn("invalid response scored as zero",
			fmt.Errorf("question %s/%s has value %d", inv.SectionID, inv.QuestionID, inv.Value))
	}

	return Assemble(q, weights, tree, snap.Responses, snap.SubResponses, cfg.Locale, cfg.FallbackLocale), nil
}

// ExecuteValidate checks the catalog and weight configuration without
// scoring anything. It returns the first loading error, or the collected
// weight cross-check problems.
func ExecuteValidate(cfg *contract.Config) error {
	q, err := catalog.LoadQuestionnaire(cfg.CatalogDocs)
	if err != nil {
		return err
	}
	weights, err := catalog.LoadWeights(cfg.WeightsPath)
	if err != nil {
		return err
	}
	return ValidateWeightConfig(q, weights)
}

// loadInputs loads and cross-checks the catalog and weight documents.
func loadInputs(cfg *contract.Config) (*schema.Questionnaire, *schema.WeightConfig, error) {
	q, err := catalog.LoadQuestionnaire(cfg.CatalogDocs)
	if err != nil {
		return nil, nil, err
	}
	weights, err := catalog.LoadWeights(cfg.WeightsPath)
	if err != nil {
		return nil, nil, err
	}

	if err := ValidateWeightConfig(q, weights); err != nil {
		if !cfg.Lenient {
			return nil, nil, err
		}
		contract.LogWarn("weight configuration has problems, continuing (lenient)", err)
	}
	return q, weights, nil
}

// loadSnapshot resolves the response snapshot for a session. An explicit
// responses file wins; otherwise the latest stored snapshot is used, and an
// empty store yields an empty (all unanswered) snapshot.
func loadSnapshot(ctx context.Context, cfg *contract.Config, store contract.SnapshotStore) (*schema.Snapshot, error) {
	if cfg.ResponsesFile != "" {
		return ReadSnapshotFile(cfg.ResponsesFile)
	}

	snap, err := store.LoadLatest(ctx)
	if errors.Is(err, schema.ErrNoSnapshot) {
		return &schema.Snapshot{
			Responses:    schema.ResponseSet{},
			SubResponses: schema.SubResponseSet{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// ReadSnapshotFile reads a snapshot from a JSON file, as written by the
// snapshot save command.
func ReadSnapshotFile(path string) (*schema.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file %q: %w", path, err)
	}
	var snap schema.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("responses file %q: %w", path, err)
	}
	if snap.Responses == nil {
		snap.Responses = schema.ResponseSet{}
	}
	if snap.SubResponses == nil {
		snap.SubResponses = schema.SubResponseSet{}
	}
	return &snap, nil
}
