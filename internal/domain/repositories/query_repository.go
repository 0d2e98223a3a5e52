package repositories

import (
	"context"

	"insure-dw.backend/internal/domain/entities"
)

// QueryRepository exposes the entity store to the NL-to-SQL gateway:
// schema introspection and raw query execution. Statement vetting
// (SELECT-only, row limits) happens in the usecase, not here.
type QueryRepository interface {
	DescribeSchema(ctx context.Context) (string, error)
	ExecuteQuery(ctx context.Context, query string) (*entities.SQLResult, error)
}
