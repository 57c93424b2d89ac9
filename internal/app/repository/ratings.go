package repository

import (
	"context"
	"time"

	"storerating/internal/app/ds"
	"storerating/internal/app/kvstore"
)

// Методы для оценок. Оценки никогда не удаляются.

func (r *Repository) GetRatings(ctx context.Context) ([]ds.Rating, error) {
	var ratings []ds.Rating
	if err := r.loadCollection(ctx, kvstore.KeyRatings, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *Repository) GetRatingsByStore(ctx context.Context, storeID string) ([]ds.Rating, error) {
	ratings, err := r.GetRatings(ctx)
	if err != nil {
		return nil, err
	}

	result := []ds.Rating{}
	for _, rating := range ratings {
		if rating.StoreID == storeID {
			result = append(result, rating)
		}
	}
	return result, nil
}

func (r *Repository) GetRatingByUserAndStore(ctx context.Context, userID, storeID string) (*ds.Rating, error) {
	ratings, err := r.GetRatings(ctx)
	if err != nil {
		return nil, err
	}

	for i := range ratings {
		if ratings[i].UserID == userID && ratings[i].StoreID == storeID {
			return &ratings[i], nil
		}
	}
	return nil, nil
}

// AddOrUpdateRating сохраняет оценку по ключу (userID, storeID): существующая
// запись обновляется на месте с сохранением createdAt, иначе добавляется новая.
// Повторные вызовы с тем же значением сходятся к одной записи.
func (r *Repository) AddOrUpdateRating(ctx context.Context, userID, storeID string, value int) (*ds.Rating, error) {
	ratings, err := r.GetRatings(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	for i := range ratings {
		if ratings[i].UserID == userID && ratings[i].StoreID == storeID {
			ratings[i].Rating = value
			ratings[i].UpdatedAt = now
			if err := r.saveCollection(ctx, kvstore.KeyRatings, ratings); err != nil {
				return nil, err
			}
			return &ratings[i], nil
		}
	}

	rating := ds.Rating{
		UserID:    userID,
		StoreID:   storeID,
		Rating:    value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ratings = append(ratings, rating)
	if err := r.saveCollection(ctx, kvstore.KeyRatings, ratings); err != nil {
		return nil, err
	}
	return &rating, nil
}
