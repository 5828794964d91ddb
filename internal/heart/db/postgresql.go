package heartdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xw1nchester/storefront-backend/internal/logging"
	pgtx "github.com/xw1nchester/storefront-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

type repository struct {
	client pgtx.DBExecutor
	logger *zap.Logger
}

func New(client pgtx.DBExecutor, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

// Toggle removes the heart when present and adds it otherwise, in one
// statement so a concurrent toggle cannot leave a duplicate.
func (r *repository) Toggle(ctx context.Context, userID, storeID int) error {
	query := `
		WITH removed AS (
			DELETE FROM hearts
			WHERE user_id=$1 AND store_id=$2
			RETURNING store_id
		)
		INSERT INTO hearts (user_id, store_id)
		SELECT $1, $2
		WHERE NOT EXISTS (SELECT 1 FROM removed)
		ON CONFLICT DO NOTHING
	`

	logging.LogSQLQuery(r.logger, query)

	if _, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, userID, storeID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			switch pgErr.ConstraintName {
			case storeForeignKeyName:
				return ErrStoreNotFound
			case userForeignKeyName:
				return ErrUserNotFound
			}
		}
		return err
	}

	return nil
}

func (r *repository) ListStoreIDs(ctx context.Context, userID int) ([]int, error) {
	query := `SELECT store_id FROM hearts WHERE user_id=$1 ORDER BY store_id`

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
