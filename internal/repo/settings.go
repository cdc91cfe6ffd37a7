package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// settingsRepo reads the configuracoes name/value rows. Values are stored as
// strings by contract; parsing to numbers is the pricing table's job.
type settingsRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewSettingsRepo(db *sqlx.DB) *settingsRepo {
	return &settingsRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *settingsRepo) GetAll(ctx context.Context) (map[string]string, error) {
	query, args := r.qb.Select("name", "value").
		From("configuracoes").
		MustSql()

	var rows []struct {
		Name  string `db:"name"`
		Value string `db:"value"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Name] = row.Value
	}
	return values, nil
}
