package ds

import "time"

// Оценка магазина пользователем. Собственного ID нет:
// ключ уникальности — пара (UserID, StoreID).
type Rating struct {
	UserID    string    `json:"userId"`
	StoreID   string    `json:"storeId"`
	Rating    int       `json:"rating"` // 1..5
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
