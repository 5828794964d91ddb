package storedb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xw1nchester/storefront-backend/internal/logging"
	"github.com/xw1nchester/storefront-backend/internal/store"
	"github.com/xw1nchester/storefront-backend/internal/store/geo"
	pgtx "github.com/xw1nchester/storefront-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const storeColumns = `
	s.id,
	s.name,
	s.slug,
	s.description,
	s.tags,
	s.created,
	s.lng,
	s.lat,
	s.address,
	s.photo,
	s.author_id
`

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

func (r *repository) executor(ctx context.Context) pgtx.DBExecutor {
	return pgtx.GetExecutor(ctx, r.client)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStore(row scanner, extra ...any) (store.Store, error) {
	var (
		s        store.Store
		lng, lat float64
	)

	dest := []any{
		&s.ID,
		&s.Name,
		&s.Slug,
		&s.Description,
		&s.Tags,
		&s.Created,
		&lng,
		&lat,
		&s.Location.Address,
		&s.Photo,
		&s.AuthorID,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return store.Store{}, err
	}

	s.Location = store.NewLocation(lng, lat, s.Location.Address)
	if s.Tags == nil {
		s.Tags = []string{}
	}

	return s, nil
}

// queryStores runs a store query and attaches reviews to the result.
func (r *repository) queryStores(ctx context.Context, query string, args ...any) ([]store.Store, error) {
	logging.LogSQLQuery(r.logger, query)

	rows, err := r.executor(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]store.Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		stores = append(stores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	if err := r.attachReviews(ctx, stores); err != nil {
		return nil, err
	}

	return stores, nil
}

func (r *repository) queryStore(ctx context.Context, query string, args ...any) (*store.Store, error) {
	logging.LogSQLQuery(r.logger, query)

	s, err := scanStore(r.executor(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	stores := []store.Store{s}
	if err := r.attachReviews(ctx, stores); err != nil {
		return nil, err
	}

	return &stores[0], nil
}

func (r *repository) GetStoreByID(ctx context.Context, id int) (*store.Store, error) {
	query := `
		SELECT` + storeColumns + `
		FROM stores s
		WHERE s.id=$1
	`

	return r.queryStore(ctx, query, id)
}

// LockStoreByID is GetStoreByID holding a row lock until the surrounding
// transaction ends.
func (r *repository) LockStoreByID(ctx context.Context, id int) (*store.Store, error) {
	query := `
		SELECT` + storeColumns + `
		FROM stores s
		WHERE s.id=$1
		FOR UPDATE
	`

	return r.queryStore(ctx, query, id)
}

func (r *repository) GetStoreBySlug(ctx context.Context, slug string) (*store.Store, error) {
	query := `
		SELECT` + storeColumns + `, u.name
		FROM stores s
		LEFT JOIN users u ON s.author_id = u.id
		WHERE lower(s.slug) = lower($1)
	`

	logging.LogSQLQuery(r.logger, query)

	var authorName *string
	s, err := scanStore(r.executor(ctx).QueryRow(ctx, query, slug), &authorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	if authorName != nil {
		s.Author = &store.Author{ID: s.AuthorID, Name: *authorName}
	}

	stores := []store.Store{s}
	if err := r.attachReviews(ctx, stores); err != nil {
		return nil, err
	}

	return &stores[0], nil
}

func (r *repository) CheckStoreExists(ctx context.Context, id int) error {
	query := `SELECT id FROM stores WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	var existingID int
	if err := r.executor(ctx).QueryRow(ctx, query, id).Scan(&existingID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrStoreNotFound
		}
		return err
	}

	return nil
}

// CountSlugs counts stores whose slug matches pattern case-insensitively,
// ignoring the store with excludeID.
func (r *repository) CountSlugs(ctx context.Context, pattern string, excludeID int) (int, error) {
	query := `
		SELECT COUNT(*) FROM stores
		WHERE slug ~* $1 AND id <> $2
	`

	logging.LogSQLQuery(r.logger, query)

	var count int
	if err := r.executor(ctx).QueryRow(ctx, query, pattern, excludeID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) CreateStore(ctx context.Context, data store.Store) (*store.Store, error) {
	query := `
		INSERT INTO stores (name, slug, description, tags, lng, lat, address, photo, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int
	if err := r.executor(ctx).QueryRow(
		ctx,
		query,
		data.Name,
		data.Slug,
		data.Description,
		nonNilTags(data.Tags),
		data.Location.Coordinates[0],
		data.Location.Coordinates[1],
		data.Location.Address,
		data.Photo,
		data.AuthorID,
	).Scan(&id); err != nil {
		return nil, translateWriteErr(err)
	}

	return r.GetStoreByID(ctx, id)
}

// UpdateStore replaces the mutable fields. Author and id are never written.
func (r *repository) UpdateStore(ctx context.Context, data store.Store) (*store.Store, error) {
	query := `
		UPDATE stores
		SET name=$1, slug=$2, description=$3, tags=$4, lng=$5, lat=$6, address=$7, photo=$8
		WHERE id=$9
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int
	if err := r.executor(ctx).QueryRow(
		ctx,
		query,
		data.Name,
		data.Slug,
		data.Description,
		nonNilTags(data.Tags),
		data.Location.Coordinates[0],
		data.Location.Coordinates[1],
		data.Location.Address,
		data.Photo,
		data.ID,
	).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, translateWriteErr(err)
	}

	return r.GetStoreByID(ctx, id)
}

func (r *repository) GetStores(ctx context.Context, limit, offset int) ([]store.Store, error) {
	query := `
		SELECT` + storeColumns + `
		FROM stores s
		ORDER BY s.created DESC, s.id DESC
		LIMIT $1 OFFSET $2
	`

	return r.queryStores(ctx, query, limit, offset)
}

func (r *repository) CountStores(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM stores`

	logging.LogSQLQuery(r.logger, query)

	var count int
	if err := r.executor(ctx).QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) GetStoresByIDs(ctx context.Context, ids []int) ([]store.Store, error) {
	query := `
		SELECT` + storeColumns + `
		FROM stores s
		WHERE s.id = ANY($1)
		ORDER BY s.id
	`

	return r.queryStores(ctx, query, ids)
}

// GetStoresByTag returns stores carrying tag, or every store with at least
// one tag when tag is empty.
func (r *repository) GetStoresByTag(ctx context.Context, tag string) ([]store.Store, error) {
	if tag == "" {
		query := `
			SELECT` + storeColumns + `
			FROM stores s
			WHERE cardinality(s.tags) > 0
			ORDER BY s.id
		`

		return r.queryStores(ctx, query)
	}

	query := `
		SELECT` + storeColumns + `
		FROM stores s
		WHERE s.tags @> ARRAY[$1::text]
		ORDER BY s.id
	`

	return r.queryStores(ctx, query, tag)
}

// GetTagLists returns the tags of every store, one slice per store.
func (r *repository) GetTagLists(ctx context.Context) ([][]string, error) {
	query := `SELECT tags FROM stores WHERE cardinality(tags) > 0`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.executor(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tagLists := make([][]string, 0)
	for rows.Next() {
		var tags []string
		if err := rows.Scan(&tags); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		tagLists = append(tagLists, tags)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return tagLists, nil
}

func (r *repository) SearchStores(ctx context.Context, text string, limit int) ([]store.Store, error) {
	query := `
		SELECT` + storeColumns + `
		FROM stores s, websearch_to_tsquery('english', $1) q
		WHERE s.search @@ q
		ORDER BY ts_rank(s.search, q) DESC, s.id
		LIMIT $2
	`

	return r.queryStores(ctx, query, text, limit)
}

// GetStoresInBox returns the candidates for a proximity query. The exact
// distance filter runs on the caller side.
func (r *repository) GetStoresInBox(ctx context.Context, box geo.Box) ([]store.Store, error) {
	query := `
		SELECT` + storeColumns + `
		FROM stores s
		WHERE s.lat BETWEEN $1 AND $2
		AND (
			($5 AND (s.lng >= $3 OR s.lng <= $4))
			OR (NOT $5 AND s.lng BETWEEN $3 AND $4)
		)
		ORDER BY s.id
	`

	return r.queryStores(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng, box.WrapsAntimeridian())
}

func (r *repository) GetStoresWithMinReviews(ctx context.Context, minReviews int) ([]store.Store, error) {
	query := `
		SELECT` + storeColumns + `
		FROM stores s
		WHERE (SELECT COUNT(*) FROM reviews r WHERE r.store_id = s.id) >= $1
		ORDER BY s.id
	`

	return r.queryStores(ctx, query, minReviews)
}

// attachReviews fills Reviews for every store from the live reviews table.
func (r *repository) attachReviews(ctx context.Context, stores []store.Store) error {
	if len(stores) == 0 {
		return nil
	}

	ids := make([]int, len(stores))
	byID := make(map[int]int, len(stores))
	for i := range stores {
		ids[i] = stores[i].ID
		byID[stores[i].ID] = i
		stores[i].Reviews = make([]store.Review, 0)
	}

	query := `
		SELECT id, store_id, author_id, text, rating, created
		FROM reviews
		WHERE store_id = ANY($1)
		ORDER BY created, id
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.executor(ctx).Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var review store.Review
		if err := rows.Scan(
			&review.ID,
			&review.StoreID,
			&review.AuthorID,
			&review.Text,
			&review.Rating,
			&review.Created,
		); err != nil {
			return fmt.Errorf("failed to scan row: %v", err)
		}

		i := byID[review.StoreID]
		stores[i].Reviews = append(stores[i].Reviews, review)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("row error: %v", err)
	}

	return nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func translateWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == slugConstraintName:
		return ErrSlugTaken
	case pgErr.Code == foreignKeyViolationCode && pgErr.ConstraintName == authorForeignKeyName:
		return ErrAuthorNotFound
	}

	return err
}
