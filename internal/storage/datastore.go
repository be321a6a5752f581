package storage

import (
	"fmt"

	"github.com/formbridge/formbridge/internal/config"
	"github.com/formbridge/formbridge/internal/models"
)

type Datastore interface {
	// CreateSubmission persists a new row; the backend assigns id and createdAt.
	CreateSubmission(*models.Submission) error
	// ListSubmissions returns every stored row, newest first.
	ListSubmissions() ([]models.Submission, error)
}

// New selects the datastore backend from config. SQLite is the default;
// DynamoDB serves serverless deployments without a disk.
func New(cfg *config.Config) (Datastore, error) {
	switch cfg.Datastore {
	case "", "sqlite":
		return NewDataBase(cfg.DBPath)
	case "dynamodb":
		return NewDynamoDB(cfg.DynamoTable)
	default:
		return nil, fmt.Errorf("unknown datastore backend: %s", cfg.Datastore)
	}
}
