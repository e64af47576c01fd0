package schema

// Custom string types for type safety.
type (
	// QuestionKind represents the closed set of question type codes.
	QuestionKind string

	// OutputMode represents the format of rendered output.
	OutputMode string

	// StoreBackend represents the snapshot store backend.
	StoreBackend string

	// InvalidPolicy represents how aggregation treats invalid responses.
	InvalidPolicy string
)

// All question kinds supported.
const (
	KindXO QuestionKind = "XO" // binary yes/no, all-or-nothing
	KindPJ QuestionKind = "PJ" // professional judgement, five-point ordinal
	KindPW QuestionKind = "PW" // multi-part checklist, fractional score
)

// Response sentinels for XO questions. The persisted snapshot format keeps
// XO answers on the same 0-4 scale as PJ, with only the two extremes valid.
const (
	ResponseNo  = 0
	ResponseYes = 4
)

// Bounds of the PJ ordinal scale.
const (
	PJMin = 0
	PJMax = 4
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	MongoBackend      StoreBackend = "mongo"
	MemoryBackend     StoreBackend = "memory"
)

// Aggregation policies for invalid responses. The scoring engine only
// signals the condition; the policy decides whether the run degrades the
// affected question to zero or fails outright.
const (
	InvalidZero InvalidPolicy = "zero" // default
	InvalidFail InvalidPolicy = "fail"
)

// DefaultFallbackLocale is used when a localized text has no entry for the
// requested locale and no explicit fallback is configured.
const DefaultFallbackLocale = "en"

// ValidQuestionKinds lists all valid question kinds.
var ValidQuestionKinds = map[QuestionKind]struct{}{
	KindXO: {},
	KindPJ: {},
	KindPW: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid snapshot store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	MongoBackend:      {},
	MemoryBackend:     {},
}

// ValidInvalidPolicies lists all valid invalid-response policies.
var ValidInvalidPolicies = map[InvalidPolicy]struct{}{
	InvalidZero: {},
	InvalidFail: {},
}
