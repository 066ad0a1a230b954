package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	conf := New()

	assert.Equal(t, "8080", conf.Port)
	assert.Equal(t, "production", conf.Environment)
	assert.Equal(t, "file", conf.DataSource)
	assert.Equal(t, "data/lawsuits.json", conf.DataFile)
	assert.Equal(t, "lawsuits", conf.MongoDatabase)
	assert.Equal(t, "lawsuits", conf.MongoCollection)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("DATA_SOURCE", "mongo")
	t.Setenv("DB_URI", "mongodb://localhost:27017")

	conf := New()

	assert.Equal(t, "9090", conf.Port)
	assert.Equal(t, "development", conf.Environment)
	assert.Equal(t, "mongo", conf.DataSource)
	assert.Equal(t, "mongodb://localhost:27017", conf.MongoURI)
}

func TestNew_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("port: \"3000\"\ndataFile: fixtures/cases.json\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	conf := New()

	assert.Equal(t, "3000", conf.Port)
	assert.Equal(t, "fixtures/cases.json", conf.DataFile)
}

func TestNew_EnvWinsOverConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("port: \"3000\"\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "4000")

	conf := New()

	assert.Equal(t, "4000", conf.Port)
}

func TestNew_BrokenConfigFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	assert.Panics(t, func() { New() })
}

func TestSetLogger(t *testing.T) {
	for _, environment := range []string{"development", "local", "production", ""} {
		logger, err := setLogger(environment)
		assert.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()

	ErrorStatus("NOT_FOUND", "lawsuit with number 123 not found", http.StatusNotFound, rr, errors.New("boom"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"lawsuit with number 123 not found"}`, rr.Body.String())
}
