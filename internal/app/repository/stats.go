package repository

import (
	"context"
	"math"
	"time"

	"storerating/internal/app/ds"
	"storerating/internal/app/role"
)

// Производные данные. Ничего из этого не персистится: агрегаты каждый раз
// пересчитываются по исходным коллекциям.

// Магазин вместе со средней оценкой
type StoreWithRating struct {
	ds.Store
	Rating float64 `json:"rating"`
}

// Пользователь, оценивший магазин, вместе со значением и временем оценки
type StoreRater struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Rating  int       `json:"rating"`
	RatedAt time.Time `json:"ratedAt"`
}

// Счетчики для админской панели
type DashboardStats struct {
	TotalUsers   int `json:"totalUsers"`
	TotalStores  int `json:"totalStores"`
	TotalRatings int `json:"totalRatings"`
	NormalUsers  int `json:"normalUsers"`
	StoreOwners  int `json:"storeOwners"`
	AdminUsers   int `json:"adminUsers"`
}

// StoreAverageRating считает среднюю оценку магазина с округлением до одного
// знака. Для магазина без оценок возвращает 0.
func (r *Repository) StoreAverageRating(ctx context.Context, storeID string) (float64, error) {
	ratings, err := r.GetRatingsByStore(ctx, storeID)
	if err != nil {
		return 0, err
	}

	if len(ratings) == 0 {
		return 0, nil
	}

	sum := 0
	for _, rating := range ratings {
		sum += rating.Rating
	}

	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10, nil
}

// GetStoreWithRating возвращает магазин вместе со средней оценкой,
// nil если магазин не найден
func (r *Repository) GetStoreWithRating(ctx context.Context, storeID string) (*StoreWithRating, error) {
	store, err := r.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}

	avg, err := r.StoreAverageRating(ctx, storeID)
	if err != nil {
		return nil, err
	}

	return &StoreWithRating{Store: *store, Rating: avg}, nil
}

// AllStoresWithRatings возвращает все магазины со средними оценками
func (r *Repository) AllStoresWithRatings(ctx context.Context) ([]StoreWithRating, error) {
	stores, err := r.GetStores(ctx)
	if err != nil {
		return nil, err
	}

	ratings, err := r.GetRatings(ctx)
	if err != nil {
		return nil, err
	}

	sums := map[string]int{}
	counts := map[string]int{}
	for _, rating := range ratings {
		sums[rating.StoreID] += rating.Rating
		counts[rating.StoreID]++
	}

	result := make([]StoreWithRating, len(stores))
	for i, store := range stores {
		avg := 0.0
		if counts[store.ID] > 0 {
			avg = float64(sums[store.ID]) / float64(counts[store.ID])
			avg = math.Round(avg*10) / 10
		}
		result[i] = StoreWithRating{Store: store, Rating: avg}
	}
	return result, nil
}

// GetUsersWhoRatedStore возвращает оценки магазина вместе с данными оценивших
// пользователей. Оценки, чей пользователь больше не находится, молча
// пропускаются.
func (r *Repository) GetUsersWhoRatedStore(ctx context.Context, storeID string) ([]StoreRater, error) {
	storeRatings, err := r.GetRatingsByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	users, err := r.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	byID := map[string]ds.User{}
	for _, user := range users {
		byID[user.ID] = user
	}

	raters := []StoreRater{}
	for _, rating := range storeRatings {
		user, ok := byID[rating.UserID]
		if !ok {
			continue
		}
		raters = append(raters, StoreRater{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Rating:  rating.Rating,
			RatedAt: rating.UpdatedAt,
		})
	}
	return raters, nil
}

// GetDashboardStats считает суммарные и поролевые счетчики для панели администратора
func (r *Repository) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := r.GetStores(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := r.GetRatings(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalUsers:   len(users),
		TotalStores:  len(stores),
		TotalRatings: len(ratings),
	}
	for _, user := range users {
		switch user.Role {
		case role.User:
			stats.NormalUsers++
		case role.StoreOwner:
			stats.StoreOwners++
		case role.Admin:
			stats.AdminUsers++
		}
	}
	return stats, nil
}
