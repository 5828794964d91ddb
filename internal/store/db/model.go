package storedb

import "errors"

var (
	ErrStoreNotFound  = errors.New("store not found")
	ErrSlugTaken      = errors.New("store slug already taken")
	ErrAuthorNotFound = errors.New("store author not found")
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	slugConstraintName      = "stores_slug_key"
	authorForeignKeyName    = "stores_author_id_fkey"
)
