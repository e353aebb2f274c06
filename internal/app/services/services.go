package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/swcatalog/starwars/internal/app/importer"
	"github.com/swcatalog/starwars/internal/pkg/apperrors"
	"github.com/swcatalog/starwars/internal/swapi"
)

// CatalogPopulator fills an empty table from the external catalog
type CatalogPopulator interface {
	PopulateIfEmpty(ctx context.Context, resource swapi.Resource, isEmpty func(context.Context) (bool, error)) (*importer.Summary, error)
}

// populateIfEmpty runs the lazy import guard in front of a listing. Catalog
// failures only shorten the import; a store failure is returned.
func populateIfEmpty(ctx context.Context, catalog CatalogPopulator, resource swapi.Resource, isEmpty func(context.Context) (bool, error)) error {
	if catalog == nil {
		return nil
	}
	if _, err := catalog.PopulateIfEmpty(ctx, resource, isEmpty); err != nil {
		return fmt.Errorf("error populating %s: %w", resource, err)
	}
	return nil
}

// nowUTC stamps created and edited columns
func nowUTC() time.Time {
	return time.Now().UTC()
}

// validateID short-circuits ids no row can have
func validateID(id int64, entity string) error {
	if id <= 0 {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", entity, id))
	}
	return nil
}

func requireText(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s is required", field))
	}
	return nil
}

func requireNonNegativeInt(value *int64, field string) error {
	if value != nil && *value < 0 {
		return apperrors.NewValidationError(fmt.Sprintf("%s must be non-negative", field))
	}
	return nil
}

func requireNonNegativeFloat(value *float64, field string) error {
	if value != nil && *value < 0 {
		return apperrors.NewValidationError(fmt.Sprintf("%s must be non-negative", field))
	}
	return nil
}
