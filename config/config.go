package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/juscode/lawsuit-api/models"
)

// Config holds the project config values. Environment variables win over the
// optional YAML config file.
type Config struct {
	Port            string `yaml:"port"`
	BaseURL         string `yaml:"baseUrl"`
	Environment     string `yaml:"environment"`
	DataSource      string `yaml:"dataSource"`
	DataFile        string `yaml:"dataFile"`
	MongoURI        string `yaml:"mongoUri"`
	MongoDatabase   string `yaml:"mongoDatabase"`
	MongoCollection string `yaml:"mongoCollection"`
}

// New sets up all config related services
func New() *Config {
	conf := &Config{
		Port:            "8080",
		Environment:     "production",
		DataSource:      "file",
		DataFile:        "data/lawsuits.json",
		MongoDatabase:   "lawsuits",
		MongoCollection: "lawsuits",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := conf.loadFile(path); err != nil {
			// a broken config file should not be silently ignored
			panic(fmt.Sprintf("failed to load config file %s: %v", path, err))
		}
	}

	overrideEnv(&conf.Port, "PORT")
	overrideEnv(&conf.BaseURL, "BASE_URL")
	overrideEnv(&conf.Environment, "ENVIRONMENT")
	overrideEnv(&conf.DataSource, "DATA_SOURCE")
	overrideEnv(&conf.DataFile, "DATA_FILE")
	overrideEnv(&conf.MongoURI, "DB_URI")
	overrideEnv(&conf.MongoDatabase, "DB_NAME")
	overrideEnv(&conf.MongoCollection, "DB_COLLECTION")

	logger, err := setLogger(conf.Environment)
	if err != nil {
		panic(fmt.Sprintf("failed to set up logger: %v", err))
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return conf
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, c)
}

func overrideEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// setLogger builds the zap logger matching the runtime environment
func setLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "development":
		return zap.NewDevelopment()
	case "local":
		return zap.NewExample(), nil
	default:
		return zap.NewProduction()
	}
}

// ErrorStatus logs err and writes the uniform {code, message} error body
// with the given status code
func ErrorStatus(code, message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With("error", err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorResponse{Code: code, Message: message})
	w.Write(b)
}
