package mongo

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/seu-repo/medsys/internal/domain"
)

// translateWriteError maps driver write errors onto domain errors.
func translateWriteError(collection string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert %s: %w: %v", collection, domain.ErrDuplicateKey, err)
	}
	return fmt.Errorf("insert %s: %w", collection, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
