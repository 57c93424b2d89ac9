package dto

import (
	"time"

	"storerating/internal/app/role"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Ошибки валидации формы: поле -> сообщение
type ValidationErrorResponse struct {
	Status string            `json:"status"`
	Errors map[string]string `json:"errors"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
	Role    role.Role `json:"role"`
	// Заполняются только для владельцев магазинов (role=store)
	StoreID     string   `json:"store_id,omitempty"`
	StoreRating *float64 `json:"store_rating,omitempty"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type RegisterRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Address         string  `json:"address"`
	Password        string  `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
}

// Создание пользователя администратором: роль выбирается
type CreateUserRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Address  string    `json:"address"`
	Password string    `json:"password"`
	Role     role.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ============ Магазины (Stores) ============

type StoreResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Address  string  `json:"address"`
	Rating   float64 `json:"rating"`
	ImageURL string  `json:"image_url,omitempty"`
}

type StoreListResponse struct {
	Stores []StoreResponse `json:"stores"`
	Total  int             `json:"total"`
}

// Создание магазина вместе с пользователем-владельцем
type CreateStoreRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	OwnerPassword string `json:"ownerPassword"`
}

type CreateStoreResponse struct {
	Store StoreResponse `json:"store"`
	Owner UserResponse  `json:"owner"`
}

// ============ Оценки (Ratings) ============

type SubmitRatingRequest struct {
	Rating int `json:"rating"`
}

type RatingResponse struct {
	UserID    string    `json:"userId"`
	StoreID   string    `json:"storeId"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type StoreRaterResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Rating  int       `json:"rating"`
	RatedAt time.Time `json:"ratedAt"`
}

// Панель владельца магазина: свой магазин и все его оценки
type OwnerDashboardResponse struct {
	Store  StoreResponse        `json:"store"`
	Raters []StoreRaterResponse `json:"raters"`
}

// ============ Панель администратора ============

type DashboardStatsResponse struct {
	TotalUsers   int `json:"totalUsers"`
	TotalStores  int `json:"totalStores"`
	TotalRatings int `json:"totalRatings"`
	NormalUsers  int `json:"normalUsers"`
	StoreOwners  int `json:"storeOwners"`
	AdminUsers   int `json:"adminUsers"`
}
