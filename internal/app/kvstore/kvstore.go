package kvstore

import (
	"context"
	"errors"
)

// Имена слотов хранилища. Раскладка совместима с данными, которые
// фронтенд исторически писал в localStorage.
const (
	KeyUsers       = "users"
	KeyStores      = "stores"
	KeyRatings     = "ratings"
	KeyNextUserID  = "nextUserId"
	KeyNextStoreID = "nextStoreId"
)

// ErrNotFound возвращается когда слот отсутствует в хранилище
var ErrNotFound = errors.New("kvstore: key not found")

// Store — порт key-value хранилища. Значение слота читается и пишется
// целиком, частичных обновлений нет.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
