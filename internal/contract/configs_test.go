package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditgauge/auditgauge/schema"
)

func TestParseCatalogDoc(t *testing.T) {
	cases := []struct {
		name    string
		entry   string
		want    CatalogDoc
		wantErr bool
	}{
		{"bare path", "questionnaire.yaml", CatalogDoc{Path: "questionnaire.yaml"}, false},
		{"locale and path", "ja=i18n/ja.yaml", CatalogDoc{Locale: "ja", Path: "i18n/ja.yaml"}, false},
		{"spaces trimmed", " en = docs/en.yaml ", CatalogDoc{Locale: "en", Path: "docs/en.yaml"}, false},
		{"empty entry", "", CatalogDoc{}, true},
		{"missing path", "en=", CatalogDoc{}, true},
		{"missing locale", "=x.yaml", CatalogDoc{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCatalogDoc(tc.entry)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateRawInputDefaults(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{Precision: DefaultPrecision}

	require.NoError(t, ValidateRawInput(cfg, input))

	assert.Equal(t, []CatalogDoc{{Path: DefaultCatalogDoc}}, cfg.CatalogDocs)
	assert.Equal(t, DefaultWeightsPath, cfg.WeightsPath)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, schema.DefaultFallbackLocale, cfg.FallbackLocale)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.InvalidZero, cfg.OnInvalid)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.True(t, cfg.UseColors)
}

func TestValidateRawInputRejectsBadValues(t *testing.T) {
	cases := []struct {
		name  string
		input ConfigRawInput
	}{
		{"bad output", ConfigRawInput{Precision: 1, Output: "xml"}},
		{"precision too high", ConfigRawInput{Precision: 9}},
		{"precision too low", ConfigRawInput{Precision: 0}},
		{"bad color", ConfigRawInput{Precision: 1, Color: "maybe"}},
		{"bad invalid policy", ConfigRawInput{Precision: 1, OnInvalid: "shrug"}},
		{"bad backend", ConfigRawInput{Precision: 1, StoreBackend: "cassandra"}},
		{"mysql without connect", ConfigRawInput{Precision: 1, StoreBackend: "mysql"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, ValidateRawInput(&Config{}, &tc.input))
		})
	}
}

func TestValidateStoreConnectionString(t *testing.T) {
	cases := []struct {
		name    string
		backend schema.StoreBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty is fine", schema.SQLiteBackend, "", false},
		{"memory empty is fine", schema.MemoryBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "root:pw@tcp(localhost:3306)/auditgauge", false},
		{"mysql missing tcp", schema.MySQLBackend, "root:pw@localhost/auditgauge", true},
		{"mysql missing db", schema.MySQLBackend, "root:pw@tcp(localhost:3306)", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost dbname=auditgauge", false},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=auditgauge", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
		{"mongo valid", schema.MongoBackend, "mongodb://localhost:27017", false},
		{"mongo srv valid", schema.MongoBackend, "mongodb+srv://cluster.example.com", false},
		{"mongo bad scheme", schema.MongoBackend, "http://localhost", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStoreConnectionString(tc.backend, tc.connStr)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"", "yes", "TRUE", "1", "on"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err, "value %q", s)
		assert.True(t, got, "value %q", s)
	}
	for _, s := range []string{"no", "False", "0", "off"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err, "value %q", s)
		assert.False(t, got, "value %q", s)
	}
	_, err := ParseBoolString("maybe")
	require.Error(t, err)
}

func TestConfigClone(t *testing.T) {
	orig := &Config{
		CatalogDocs: []CatalogDoc{{Locale: "en", Path: "en.yaml"}},
		Locale:      "en",
	}
	clone := orig.Clone()
	clone.Locale = "ja"
	clone.CatalogDocs[0].Path = "other.yaml"

	assert.Equal(t, "en", orig.Locale)
	assert.Equal(t, "en.yaml", orig.CatalogDocs[0].Path)
}
