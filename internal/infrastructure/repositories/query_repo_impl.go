package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"insure-dw.backend/internal/domain/entities"
	"insure-dw.backend/internal/infrastructure/models"
)

// QueryRepository exposes the warehouse to the NL-to-SQL gateway
type QueryRepository struct {
	db *gorm.DB
}

// NewQueryRepository creates a new query repository
func NewQueryRepository(db *gorm.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

// schemaNotes are facts the column listing cannot express; they are fed
// to the LLM alongside the live column introspection.
var schemaNotes = []string{
	"Relationships:",
	"- quotes.user_id references users.id",
	"- policies.user_id references users.id",
	"- policies.quote_id references quotes.id",
	"- payment_transactions.policy_id references policies.id",
	"",
	"Notes:",
	"- payment_transactions.payment_type is one of 'Credit', 'Debit', 'Prepaid'",
	"- quotes.bind_time is NULL until the quote is bound into a policy",
	"- features is keyed by (feature_type, entity_id) with at most one row per key",
}

// DescribeSchema renders the warehouse schema as text for the LLM prompt
func (r *QueryRepository) DescribeSchema(ctx context.Context) (string, error) {
	tables := []interface{}{
		&models.User{},
		&models.Quote{},
		&models.Policy{},
		&models.PaymentTransaction{},
		&models.Feature{},
		&models.FeatureMetadata{},
	}

	var b strings.Builder
	migrator := r.db.WithContext(ctx).Migrator()
	stmt := &gorm.Statement{DB: r.db}

	for _, table := range tables {
		if err := stmt.Parse(table); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "Table %s:\n", stmt.Schema.Table)

		columns, err := migrator.ColumnTypes(table)
		if err != nil {
			return "", err
		}
		for _, col := range columns {
			fmt.Fprintf(&b, "  - %s (%s)\n", col.Name(), col.DatabaseTypeName())
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Join(schemaNotes, "\n"))
	return b.String(), nil
}

// ExecuteQuery runs a raw query and returns rows as column-name maps.
// Column order from the driver is preserved in Columns.
func (r *QueryRepository) ExecuteQuery(ctx context.Context, query string) (*entities.SQLResult, error) {
	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	data := make([]map[string]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		scanTargets := make([]interface{}, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, name := range columns {
			row[name] = normalizeValue(values[i])
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &entities.SQLResult{
		Data:     data,
		Columns:  columns,
		RowCount: len(data),
		Query:    query,
	}, nil
}

// normalizeValue makes driver values JSON friendly
func normalizeValue(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
