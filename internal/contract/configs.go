package contract

import (
	"fmt"
	"strings"

	"github.com/auditgauge/auditgauge/schema"
)

// Default values for configuration.
const (
	DefaultPrecision      = 1
	MaxPrecision          = 2
	DefaultLocale         = "en"
	DefaultCatalogDoc     = "questionnaire.yaml"
	DefaultWeightsPath    = "score_weights.yaml"
	DefaultSnapshotsTable = "assessment_snapshots"
)

// CatalogDoc is one catalog document plus the locale its scalar text values
// belong to. An empty locale means the document carries explicit locale
// maps for every text value.
type CatalogDoc struct {
	Locale string
	Path   string
}

// Config holds the validated, final runtime configuration.
type Config struct {
	CatalogDocs    []CatalogDoc
	WeightsPath    string
	Locale         string
	FallbackLocale string

	ResponsesFile string // Explicit snapshot file; empty = latest from store

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Detail     bool
	UseColors  bool
	Width      int // Terminal width override (0 = auto-detect)

	Lenient   bool // Downgrade weight-sum mismatches to warnings
	OnInvalid schema.InvalidPolicy

	StoreBackend schema.StoreBackend
	StoreConnect string // Please use env var as this is plaintext
}

// Clone returns a shallow copy safe for per-request mutation.
func (c *Config) Clone() *Config {
	out := *c
	out.CatalogDocs = append([]CatalogDoc(nil), c.CatalogDocs...)
	return &out
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct; ValidateRawInput produces the
// final Config.
type ConfigRawInput struct {
	Catalog        []string `mapstructure:"catalog"`
	Weights        string   `mapstructure:"weights"`
	Locale         string   `mapstructure:"locale"`
	FallbackLocale string   `mapstructure:"fallback-locale"`
	Responses      string   `mapstructure:"responses"`
	Output         string   `mapstructure:"output"`
	OutputFile     string   `mapstructure:"output-file"`
	Precision      int      `mapstructure:"precision"`
	Detail         bool     `mapstructure:"detail"`
	Color          string   `mapstructure:"color"`
	Width          int      `mapstructure:"width"`
	Lenient        bool     `mapstructure:"lenient"`
	OnInvalid      string   `mapstructure:"on-invalid"`
	StoreBackend   string   `mapstructure:"store-backend"`
	StoreConnect   string   `mapstructure:"store-db-connect"`
}

// ValidateRawInput processes the raw input in stages and fills cfg.
func ValidateRawInput(cfg *Config, input *ConfigRawInput) error {
	if err := validateCatalogInputs(cfg, input); err != nil {
		return err
	}
	if err := validateOutputInputs(cfg, input); err != nil {
		return err
	}
	return validateStoreInputs(cfg, input)
}

// validateCatalogInputs handles catalog documents, weights and locales.
func validateCatalogInputs(cfg *Config, input *ConfigRawInput) error {
	docs := input.Catalog
	if len(docs) == 0 {
		docs = []string{DefaultCatalogDoc}
	}
	cfg.CatalogDocs = cfg.CatalogDocs[:0]
	for _, entry := range docs {
		doc, err := ParseCatalogDoc(entry)
		if err != nil {
			return err
		}
		cfg.CatalogDocs = append(cfg.CatalogDocs, doc)
	}

	cfg.WeightsPath = input.Weights
	if cfg.WeightsPath == "" {
		cfg.WeightsPath = DefaultWeightsPath
	}

	cfg.Locale = input.Locale
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	cfg.FallbackLocale = input.FallbackLocale
	if cfg.FallbackLocale == "" {
		cfg.FallbackLocale = schema.DefaultFallbackLocale
	}

	cfg.ResponsesFile = input.Responses
	return nil
}

// validateOutputInputs handles rendering-related fields.
func validateOutputInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	if input.Precision < DefaultPrecision || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between %d and %d (received %d)", DefaultPrecision, MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision
	cfg.Detail = input.Detail
	cfg.Width = input.Width
	cfg.Lenient = input.Lenient

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.OnInvalid = schema.InvalidPolicy(strings.ToLower(input.OnInvalid))
	if cfg.OnInvalid == "" {
		cfg.OnInvalid = schema.InvalidZero
	}
	if _, ok := schema.ValidInvalidPolicies[cfg.OnInvalid]; !ok {
		return fmt.Errorf("invalid on-invalid policy '%s'. must be zero or fail", input.OnInvalid)
	}
	return nil
}

// validateStoreInputs handles snapshot store backend fields.
func validateStoreInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.StoreBackend(strings.ToLower(input.StoreBackend))
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, mongo, memory", input.StoreBackend)
	}
	cfg.StoreConnect = input.StoreConnect
	return ValidateStoreConnectionString(cfg.StoreBackend, cfg.StoreConnect)
}

// ParseCatalogDoc parses a "locale=path" or bare "path" catalog flag entry.
func ParseCatalogDoc(entry string) (CatalogDoc, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return CatalogDoc{}, fmt.Errorf("empty catalog document entry")
	}
	locale, path, found := strings.Cut(entry, "=")
	if !found {
		return CatalogDoc{Path: entry}, nil
	}
	locale = strings.TrimSpace(locale)
	path = strings.TrimSpace(path)
	if locale == "" || path == "" {
		return CatalogDoc{}, fmt.Errorf("invalid catalog document entry %q, expected 'locale=path' or 'path'", entry)
	}
	return CatalogDoc{Locale: locale, Path: path}, nil
}

// ValidateStoreConnectionString validates the connection string format for
// backends that need one.
func ValidateStoreConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.MemoryBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	case schema.MongoBackend:
		if !strings.HasPrefix(connStr, "mongodb://") && !strings.HasPrefix(connStr, "mongodb+srv://") {
			return fmt.Errorf("Mongo connection string must start with mongodb:// or mongodb+srv://")
		}
	}
	return nil
}

// ParseBoolString interprets yes/no style flag values. An empty string
// defaults to true so colored output stays on unless disabled.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no/true/false/1/0, got %q", s)
	}
}
