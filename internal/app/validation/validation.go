package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Чистые валидаторы полей. Возвращают пустую строку если значение корректно,
// иначе — готовое сообщение об ошибке для пользователя.

var (
	emailRegex       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperCaseRegex   = regexp.MustCompile(`[A-Z]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// ValidateName проверяет имя (20-60 символов без учета пробелов по краям).
// Длина считается в символах, не в байтах.
func ValidateName(name string) string {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	if name == "" || length < 20 || length > 60 {
		return "Name must be between 20 and 60 characters"
	}
	return ""
}

// ValidateAddress проверяет адрес (максимум 400 символов)
func ValidateAddress(address string) string {
	if address == "" {
		return "Address is required"
	}
	if utf8.RuneCountInString(strings.TrimSpace(address)) > 400 {
		return "Address must not exceed 400 characters"
	}
	return ""
}

// ValidatePassword проверяет пароль: 8-16 символов, минимум одна заглавная
// буква и один специальный символ
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}

	if length := utf8.RuneCountInString(password); length < 8 || length > 16 {
		return "Password must be between 8 and 16 characters"
	}

	if !upperCaseRegex.MatchString(password) {
		return "Password must contain at least one uppercase letter"
	}

	if !specialCharRegex.MatchString(password) {
		return "Password must contain at least one special character"
	}

	return ""
}

// ValidateConfirmPassword проверяет совпадение паролей
func ValidateConfirmPassword(password, confirmPassword string) string {
	if confirmPassword == "" {
		return "Please confirm your password"
	}

	if password != confirmPassword {
		return "Passwords do not match"
	}

	return ""
}

// ValidateEmail проверяет формат email
func ValidateEmail(email string) string {
	if email == "" {
		return "Email is required"
	}

	if !emailRegex.MatchString(email) {
		return "Invalid email format"
	}

	return ""
}

// ValidateRating проверяет оценку (1-5)
func ValidateRating(rating int) string {
	if rating < 1 || rating > 5 {
		return "Rating must be between 1 and 5"
	}
	return ""
}

// UserFormValues — поля формы регистрации/создания пользователя.
// ConfirmPassword == nil означает что форма без поля подтверждения.
type UserFormValues struct {
	Name            string
	Email           string
	Address         string
	Password        string
	ConfirmPassword *string
}

// ValidateUserForm валидирует форму регистрации/создания пользователя.
// Пустая map означает что форма принята.
func ValidateUserForm(values UserFormValues) map[string]string {
	errors := map[string]string{}

	if err := ValidateName(values.Name); err != "" {
		errors["name"] = err
	}
	if err := ValidateEmail(values.Email); err != "" {
		errors["email"] = err
	}
	if err := ValidateAddress(values.Address); err != "" {
		errors["address"] = err
	}
	if err := ValidatePassword(values.Password); err != "" {
		errors["password"] = err
	}
	if values.ConfirmPassword != nil {
		if err := ValidateConfirmPassword(values.Password, *values.ConfirmPassword); err != "" {
			errors["confirmPassword"] = err
		}
	}

	return errors
}

// ValidateLoginForm валидирует форму входа (только наличие полей, без формата)
func ValidateLoginForm(email, password string) map[string]string {
	errors := map[string]string{}

	if email == "" {
		errors["email"] = "Email is required"
	}
	if password == "" {
		errors["password"] = "Password is required"
	}

	return errors
}

// StoreFormValues — поля формы создания магазина (пароль владельца
// валидируется вызывающей стороной отдельно)
type StoreFormValues struct {
	Name    string
	Email   string
	Address string
}

// ValidateStoreForm валидирует форму создания магазина
func ValidateStoreForm(values StoreFormValues) map[string]string {
	errors := map[string]string{}

	if err := ValidateName(values.Name); err != "" {
		errors["name"] = err
	}
	if err := ValidateEmail(values.Email); err != "" {
		errors["email"] = err
	}
	if err := ValidateAddress(values.Address); err != "" {
		errors["address"] = err
	}

	return errors
}

// ValidatePasswordChangeForm валидирует форму смены пароля
func ValidatePasswordChangeForm(currentPassword, newPassword, confirmPassword string) map[string]string {
	errors := map[string]string{}

	if currentPassword == "" {
		errors["currentPassword"] = "Current password is required"
	}
	if err := ValidatePassword(newPassword); err != "" {
		errors["newPassword"] = err
	}
	if err := ValidateConfirmPassword(newPassword, confirmPassword); err != "" {
		errors["confirmPassword"] = err
	}

	return errors
}
