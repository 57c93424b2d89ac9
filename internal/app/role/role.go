package role

// Role определяет права пользователя в системе
type Role string

const (
	Admin      Role = "admin" // администратор: управление пользователями и магазинами
	User       Role = "user"  // обычный пользователь: просмотр магазинов и оценки
	StoreOwner Role = "store" // владелец магазина: просмотр оценок своего магазина
)

// Valid проверяет что роль одна из известных
func (r Role) Valid() bool {
	return r == Admin || r == User || r == StoreOwner
}
