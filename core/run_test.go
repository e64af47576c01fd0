package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/internal/snapstore"
	"github.com/auditgauge/auditgauge/schema"
)

const runCatalog = `
leadership:
  name: Leadership
  questions:
    q1:
      type: XO
      description: Policy exists.
    q2:
      type: PJ
      description: Roles are assigned.
planning:
  name: Planning
  questions:
    q1:
      type: PW
      description: Risk criteria are defined.
      sub_questions:
        - Risk register exists
        - Criteria reviewed yearly
        - Owners assigned
`

const runWeights = `
section_weights:
  leadership: 60
  planning: 40
question_weights:
  leadership:
    q1: 20
    q2: 40
  planning:
    q1: 40
question_type_base_scores:
  XO:
    "yes": 100
    "no": 0
  PJ:
    0: 0
    1: 25
    2: 50
    3: 75
    4: 100
`

func runConfig(t *testing.T) *contract.Config {
	t.Helper()
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "questionnaire.yaml")
	weightsPath := filepath.Join(dir, "score_weights.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(runCatalog), 0o644))
	require.NoError(t, os.WriteFile(weightsPath, []byte(runWeights), 0o644))

	return &contract.Config{
		CatalogDocs:    []contract.CatalogDoc{{Locale: "en", Path: catalogPath}},
		WeightsPath:    weightsPath,
		Locale:         "en",
		FallbackLocale: "en",
		OnInvalid:      schema.InvalidZero,
	}
}

func TestExecuteReportFromStore(t *testing.T) {
	cfg := runConfig(t)
	store := snapstore.NewMemoryStore()
	ctx := context.Background()

	snap := schema.NewSnapshot(
		schema.ResponseSet{
			schema.ResponseKey("leadership", "q1"): schema.ResponseYes, // 20
			schema.ResponseKey("leadership", "q2"): 3,                  // 30
		},
		schema.SubResponseSet{
			schema.SubResponseKey("planning", "q1", 1): true, // 40/3
			schema.SubResponseKey("planning", "q1", 2): true, // 40/3
		},
	)
	require.NoError(t, store.Save(ctx, snap))

	model, err := ExecuteReport(ctx, cfg, store)
	require.NoError(t, err)

	assert.InDelta(t, 100, model.NominalMax, Epsilon)
	assert.InDelta(t, 50+80.0/3, model.Overall, Epsilon)
	require.Len(t, model.Sections, 2)
	assert.Equal(t, "Leadership", model.Sections[0].Name)
	assert.InDelta(t, 50, model.Sections[0].Total, Epsilon)
}

func TestExecuteReportEmptyStore(t *testing.T) {
	cfg := runConfig(t)
	store := snapstore.NewMemoryStore()

	// An empty store scores as an all-unanswered assessment, not an error.
	model, err := ExecuteReport(context.Background(), cfg, store)
	require.NoError(t, err)
	assert.Zero(t, model.Overall)
}

func TestExecuteReportRoundTripIdentity(t *testing.T) {
	cfg := runConfig(t)
	store := snapstore.NewMemoryStore()
	ctx := context.Background()

	snap := schema.NewSnapshot(
		schema.ResponseSet{schema.ResponseKey("leadership", "q2"): 2},
		schema.SubResponseSet{schema.SubResponseKey("planning", "q1", 3): true},
	)
	require.NoError(t, store.Save(ctx, snap))

	first, err := ExecuteReport(ctx, cfg, store)
	require.NoError(t, err)

	// Saving the loaded snapshot again and re-scoring must not change the
	// report in any way.
	loaded, err := store.LoadLatest(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, schema.NewSnapshot(loaded.Responses, loaded.SubResponses)))

	second, err := ExecuteReport(ctx, cfg, store)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExecuteReportFromResponsesFile(t *testing.T) {
	cfg := runConfig(t)
	dir := t.TempDir()
	responsesPath := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(responsesPath, []byte(
		`{"responses": {"leadership_q1": 4}, "sub_responses": {}}`), 0o644))
	cfg.ResponsesFile = responsesPath

	// The explicit file wins even when the store has newer data.
	store := snapstore.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), schema.NewSnapshot(
		schema.ResponseSet{schema.ResponseKey("leadership", "q2"): 4}, schema.SubResponseSet{})))

	model, err := ExecuteReport(context.Background(), cfg, store)
	require.NoError(t, err)
	assert.InDelta(t, 20, model.Overall, Epsilon)
}

func TestExecuteReportStrictWeights(t *testing.T) {
	cfg := runConfig(t)
	badWeights := filepath.Join(t.TempDir(), "bad_weights.yaml")
	require.NoError(t, os.WriteFile(badWeights, []byte(`
section_weights:
  leadership: 60
  planning: 40
question_weights:
  leadership:
    q1: 20
    q2: 10
  planning:
    q1: 40
question_type_base_scores:
  XO:
    "yes": 100
    "no": 0
  PJ:
    0: 0
    1: 25
    2: 50
    3: 75
    4: 100
`), 0o644))
	cfg.WeightsPath = badWeights
	store := snapstore.NewMemoryStore()

	_, err := ExecuteReport(context.Background(), cfg, store)
	var cfgErr *schema.ConfigError
	require.ErrorAs(t, err, &cfgErr)

	// Lenient mode downgrades the mismatch to a warning and scores anyway.
	cfg.Lenient = true
	model, err := ExecuteReport(context.Background(), cfg, store)
	require.NoError(t, err)
	assert.NotNil(t, model)
}

func TestExecuteValidate(t *testing.T) {
	cfg := runConfig(t)
	require.NoError(t, ExecuteValidate(cfg))

	cfg.WeightsPath = filepath.Join(t.TempDir(), "absent.yaml")
	require.Error(t, ExecuteValidate(cfg))
}
