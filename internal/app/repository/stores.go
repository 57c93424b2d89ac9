package repository

import (
	"context"
	"strconv"

	"storerating/internal/app/ds"
	"storerating/internal/app/kvstore"
	"storerating/internal/app/role"
)

// Методы для магазинов

func (r *Repository) GetStores(ctx context.Context) ([]ds.Store, error) {
	var stores []ds.Store
	if err := r.loadCollection(ctx, kvstore.KeyStores, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *Repository) GetStoreByID(ctx context.Context, id string) (*ds.Store, error) {
	stores, err := r.GetStores(ctx)
	if err != nil {
		return nil, err
	}

	for i := range stores {
		if stores[i].ID == id {
			return &stores[i], nil
		}
	}
	return nil, nil
}

func (r *Repository) GetStoreByEmail(ctx context.Context, email string) (*ds.Store, error) {
	stores, err := r.GetStores(ctx)
	if err != nil {
		return nil, err
	}

	for i := range stores {
		if stores[i].Email == email {
			return &stores[i], nil
		}
	}
	return nil, nil
}

// AddStore назначает магазину очередной ID вида "store<N>" и сохраняет его
func (r *Repository) AddStore(ctx context.Context, draft ds.Store) (*ds.Store, error) {
	stores, err := r.GetStores(ctx)
	if err != nil {
		return nil, err
	}

	next, err := r.nextID(ctx, kvstore.KeyNextStoreID)
	if err != nil {
		return nil, err
	}

	store := draft
	store.ID = "store" + strconv.Itoa(next)

	stores = append(stores, store)
	if err := r.saveCollection(ctx, kvstore.KeyStores, stores); err != nil {
		return nil, err
	}

	return &store, nil
}

// UpdateStore накладывает непустые поля на запись магазина (сейчас нужен
// только для привязки загруженной картинки)
func (r *Repository) UpdateStore(ctx context.Context, updated ds.Store) (*ds.Store, error) {
	stores, err := r.GetStores(ctx)
	if err != nil {
		return nil, err
	}

	for i := range stores {
		if stores[i].ID != updated.ID {
			continue
		}

		if updated.Name != "" {
			stores[i].Name = updated.Name
		}
		if updated.Email != "" {
			stores[i].Email = updated.Email
		}
		if updated.Address != "" {
			stores[i].Address = updated.Address
		}
		if updated.ImageURL != "" {
			stores[i].ImageURL = updated.ImageURL
		}

		if err := r.saveCollection(ctx, kvstore.KeyStores, stores); err != nil {
			return nil, err
		}
		return &stores[i], nil
	}

	return nil, nil
}

// CreateStoreWithOwner создает магазин вместе с пользователем-владельцем
// (роль store, те же имя/email/адрес) одной операцией, чтобы презентационный
// слой не мог создать одно без другого.
func (r *Repository) CreateStoreWithOwner(ctx context.Context, draft ds.Store, ownerPassword string) (*ds.Store, *ds.User, error) {
	store, err := r.AddStore(ctx, draft)
	if err != nil {
		return nil, nil, err
	}

	owner, err := r.AddUser(ctx, ds.User{
		Name:     draft.Name,
		Email:    draft.Email,
		Address:  draft.Address,
		Password: ownerPassword,
		Role:     role.StoreOwner,
	})
	if err != nil {
		return nil, nil, err
	}

	return store, owner, nil
}
