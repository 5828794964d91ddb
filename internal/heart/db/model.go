package heartdb

import "errors"

var (
	ErrStoreNotFound = errors.New("hearted store not found")
	ErrUserNotFound  = errors.New("hearting user not found")
)

const (
	foreignKeyViolationCode = "23503"
	storeForeignKeyName     = "hearts_store_id_fkey"
	userForeignKeyName      = "hearts_user_id_fkey"
)
