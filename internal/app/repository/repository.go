package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"storerating/internal/app/ds"
	"storerating/internal/app/kvstore"
	"storerating/internal/app/role"

	"github.com/sirupsen/logrus"
)

// Repository работает поверх key-value порта: каждая коллекция читается и
// пишется целиком как JSON в своем слоте.
type Repository struct {
	store kvstore.Store
}

func New(store kvstore.Store) *Repository {
	return &Repository{store: store}
}

// Сидовый администратор, создается при первом запуске
var seedAdmin = ds.User{
	ID:       "admin1",
	Name:     "System Administrator",
	Email:    "admin@example.com",
	Password: "Admin@123",
	Address:  "123 Admin Street, Admin City",
	Role:     role.Admin,
}

// InitData наполняет хранилище начальными данными если их еще нет.
// Признак инициализации — наличие слота users.
func (r *Repository) InitData(ctx context.Context) error {
	_, err := r.store.Get(ctx, kvstore.KeyUsers)
	if err == nil {
		return nil
	}
	if !errors.Is(err, kvstore.ErrNotFound) {
		return fmt.Errorf("failed to check seed data: %w", err)
	}

	if err := r.saveCollection(ctx, kvstore.KeyUsers, []ds.User{seedAdmin}); err != nil {
		return err
	}
	if err := r.saveCollection(ctx, kvstore.KeyStores, []ds.Store{}); err != nil {
		return err
	}
	if err := r.saveCollection(ctx, kvstore.KeyRatings, []ds.Rating{}); err != nil {
		return err
	}
	if err := r.store.Put(ctx, kvstore.KeyNextUserID, []byte("2")); err != nil {
		return fmt.Errorf("failed to write counter %s: %w", kvstore.KeyNextUserID, err)
	}
	if err := r.store.Put(ctx, kvstore.KeyNextStoreID, []byte("1")); err != nil {
		return fmt.Errorf("failed to write counter %s: %w", kvstore.KeyNextStoreID, err)
	}

	logrus.Info("seed data initialized")
	return nil
}

// loadCollection читает слот и декодирует его в dest. Отсутствующий слот —
// пустая коллекция, испорченный JSON — ошибка (чтобы не маскировать потерю данных).
func (r *Repository) loadCollection(ctx context.Context, key string, dest interface{}) error {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read collection %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("collection %s is corrupted: %w", key, err)
	}
	return nil
}

func (r *Repository) saveCollection(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	if err := r.store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}

// nextID читает счетчик и записывает инкремент. Счетчик хранится как
// десятичный текст и никогда не переиспользуется.
func (r *Repository) nextID(ctx context.Context, key string) (int, error) {
	next := 1
	raw, err := r.store.Get(ctx, key)
	if err == nil {
		next, err = strconv.Atoi(string(raw))
		if err != nil {
			return 0, fmt.Errorf("counter %s is corrupted: %w", key, err)
		}
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		return 0, fmt.Errorf("failed to read counter %s: %w", key, err)
	}

	if err := r.store.Put(ctx, key, []byte(strconv.Itoa(next+1))); err != nil {
		return 0, fmt.Errorf("failed to write counter %s: %w", key, err)
	}
	return next, nil
}
