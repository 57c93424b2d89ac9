package ds

// Магазин. ID имеет вид "store<N>". Пароля нет: владелец моделируется
// отдельным пользователем с ролью store и тем же email.
type Store struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	ImageURL string `json:"imageUrl,omitempty"`
}
