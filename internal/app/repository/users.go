package repository

import (
	"context"
	"strconv"

	"storerating/internal/app/ds"
	"storerating/internal/app/kvstore"
)

// Методы для пользователей. Поиск — линейный проход по коллекции,
// отсутствие записи не является ошибкой.

func (r *Repository) GetUsers(ctx context.Context) ([]ds.User, error) {
	var users []ds.User
	if err := r.loadCollection(ctx, kvstore.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*ds.User, error) {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*ds.User, error) {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// AddUser назначает пользователю очередной ID вида "user<N>" и сохраняет его.
// Уникальность email здесь не проверяется — это ответственность вызывающего.
func (r *Repository) AddUser(ctx context.Context, draft ds.User) (*ds.User, error) {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	next, err := r.nextID(ctx, kvstore.KeyNextUserID)
	if err != nil {
		return nil, err
	}

	user := draft
	user.ID = "user" + strconv.Itoa(next)

	users = append(users, user)
	if err := r.saveCollection(ctx, kvstore.KeyUsers, users); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUser накладывает заданные поля patch на запись с тем же ID.
// Возвращает nil если пользователь не найден.
func (r *Repository) UpdateUser(ctx context.Context, patch ds.UserPatch) (*ds.User, error) {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != patch.ID {
			continue
		}

		if patch.Name != nil {
			users[i].Name = *patch.Name
		}
		if patch.Email != nil {
			users[i].Email = *patch.Email
		}
		if patch.Address != nil {
			users[i].Address = *patch.Address
		}
		if patch.Password != nil {
			users[i].Password = *patch.Password
		}
		if patch.Role != nil {
			users[i].Role = *patch.Role
		}

		if err := r.saveCollection(ctx, kvstore.KeyUsers, users); err != nil {
			return nil, err
		}
		return &users[i], nil
	}

	return nil, nil
}

// UpdatePassword заменяет пароль пользователя. false — пользователь не найден.
func (r *Repository) UpdatePassword(ctx context.Context, userID, newPassword string) (bool, error) {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return false, err
	}

	for i := range users {
		if users[i].ID == userID {
			users[i].Password = newPassword
			if err := r.saveCollection(ctx, kvstore.KeyUsers, users); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, nil
}
