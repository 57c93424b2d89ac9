package ds

import "storerating/internal/app/role"

// Пользователь системы. ID имеет вид "user<N>", кроме сидового администратора "admin1".
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Address  string    `json:"address"`
	Password string    `json:"password"`
	Role     role.Role `json:"role"`
}

// UserPatch — частичное обновление пользователя: применяются только заданные поля
type UserPatch struct {
	ID       string
	Name     *string
	Email    *string
	Address  *string
	Password *string
	Role     *role.Role
}
