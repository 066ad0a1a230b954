package databases

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/juscode/lawsuit-api/config"
	"github.com/juscode/lawsuit-api/models"
)

// loadTimeout bounds the one-time mongo read at startup
const loadTimeout = 30 * time.Second

// LoadFromFile reads the lawsuit dataset from a JSON document shaped as
// {"content": [...]}. Any read or parse failure is returned as-is so the
// process refuses to start with a bad dataset.
func LoadFromFile(path string) ([]models.Lawsuit, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", path, err)
	}

	var file models.LawsuitsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file %s: %w", path, err)
	}

	if err := validate(file.Content); err != nil {
		return nil, err
	}

	zap.S().Infow("loaded lawsuit dataset from file",
		"path", path,
		"records", len(file.Content),
	)
	return file.Content, nil
}

// LoadFromMongo performs the one-time read of the lawsuit collection. The
// connection is closed once the records are in memory; the dataset never
// touches the database again.
func LoadFromMongo(conf *config.Config) ([]models.Lawsuit, error) {
	client, err := NewClient(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer client.Disconnect(context.Background())

	db := NewLawsuitDatabase(NewDatabase(conf, client))
	lawsuits, err := db.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to read lawsuit collection: %w", err)
	}

	if err := validate(lawsuits); err != nil {
		return nil, err
	}

	zap.S().Infow("loaded lawsuit dataset from mongo",
		"database", conf.MongoDatabase,
		"records", len(lawsuits),
	)
	return lawsuits, nil
}

// validate enforces ingestion invariants: every record carries a case number
// and at least one proceeding. Violations are fatal, not defaulted.
func validate(lawsuits []models.Lawsuit) error {
	for i, l := range lawsuits {
		if l.NumeroProcesso == "" {
			return fmt.Errorf("dataset record %d has no case number", i)
		}
		if len(l.Tramitacoes) == 0 {
			return fmt.Errorf("lawsuit %s has no proceedings", l.NumeroProcesso)
		}
	}
	return nil
}
