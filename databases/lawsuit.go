package databases

// go generate: mockery --name LawsuitDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/juscode/lawsuit-api/models"
)

const lawsuitName = "lawsuits"

// LawsuitDatabase contains the methods to use with the lawsuit collection
type LawsuitDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Lawsuit, error)
}

type lawsuitDatabase struct {
	db DatabaseHelper
}

// NewLawsuitDatabase initializes a new instance of lawsuit database with the provided db connection
func NewLawsuitDatabase(db DatabaseHelper) LawsuitDatabase {
	return &lawsuitDatabase{
		db: db,
	}
}

func (c *lawsuitDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Lawsuit, error) {
	var lawsuits []models.Lawsuit
	curr, err := c.db.Collection(lawsuitName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &lawsuits)
	if err != nil {
		return nil, err
	}
	return lawsuits, nil
}
