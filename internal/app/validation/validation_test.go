package validation

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"empty", "", false},
		{"too short", "Short Name", false},
		{"exactly 19", strings.Repeat("a", 19), false},
		{"exactly 20", strings.Repeat("a", 20), true},
		{"exactly 60", strings.Repeat("a", 60), true},
		{"exactly 61", strings.Repeat("a", 61), false},
		{"trimmed below minimum", "   " + strings.Repeat("a", 19) + "   ", false},
		{"trimmed into range", "  " + strings.Repeat("a", 25) + "  ", true},
		// длина считается в символах, не в байтах
		{"cyrillic 15 runes", strings.Repeat("я", 15), false},
		{"cyrillic 20 runes", strings.Repeat("я", 20), true},
		{"cyrillic 60 runes", strings.Repeat("я", 60), true},
		{"cyrillic 61 runes", strings.Repeat("я", 61), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateName(tt.input)
			if (msg == "") != tt.valid {
				t.Errorf("ValidateName(%q) = %q, valid = %v", tt.input, msg, tt.valid)
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	if msg := ValidateAddress(""); msg != "Address is required" {
		t.Errorf("empty address: got %q", msg)
	}
	if msg := ValidateAddress("X"); msg != "" {
		t.Errorf("short address should be valid, got %q", msg)
	}
	if msg := ValidateAddress(strings.Repeat("a", 400)); msg != "" {
		t.Errorf("400 chars should be valid, got %q", msg)
	}
	if msg := ValidateAddress(strings.Repeat("a", 401)); msg == "" {
		t.Error("401 chars should be rejected")
	}
	// длина считается в символах, не в байтах
	if msg := ValidateAddress(strings.Repeat("я", 400)); msg != "" {
		t.Errorf("400 cyrillic chars should be valid, got %q", msg)
	}
	if msg := ValidateAddress(strings.Repeat("я", 401)); msg == "" {
		t.Error("401 cyrillic chars should be rejected")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"empty", "", false},
		{"too short", "Ab@1", false},
		{"too long", "Abcdefgh@1234567890", false},
		{"no uppercase", "abcdefg@1", false},
		{"no special char", "Abcdefgh1", false},
		{"valid", "Admin@123", true},
		{"valid minimum length", "Abcdef@1", true},
		{"valid maximum length", "Abcdefghijklm@12", true},
		{"special char from set", "Password[1]", true},
		{"backslash special", `Password\one`, true},
		// длина считается в символах, не в байтах
		{"cyrillic 8 runes", "Abc@" + strings.Repeat("я", 4), true},
		{"cyrillic 7 runes", "Abc@" + strings.Repeat("я", 3), false},
		{"cyrillic 16 runes", "Abc@" + strings.Repeat("я", 12), true},
		{"cyrillic 17 runes", "Abc@" + strings.Repeat("я", 13), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidatePassword(tt.password)
			if (msg == "") != tt.valid {
				t.Errorf("ValidatePassword(%q) = %q, valid = %v", tt.password, msg, tt.valid)
			}
		})
	}
}

func TestValidateConfirmPassword(t *testing.T) {
	if msg := ValidateConfirmPassword("Admin@123", ""); msg != "Please confirm your password" {
		t.Errorf("empty confirm: got %q", msg)
	}
	if msg := ValidateConfirmPassword("Admin@123", "Admin@124"); msg != "Passwords do not match" {
		t.Errorf("mismatch: got %q", msg)
	}
	if msg := ValidateConfirmPassword("Admin@123", "Admin@123"); msg != "" {
		t.Errorf("match: got %q", msg)
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"", false},
		{"plain", false},
		{"a@b", false},
		{"a b@c.com", false},
		{"a@b.com", true},
		{"user.name@sub.domain.org", true},
	}

	for _, tt := range tests {
		msg := ValidateEmail(tt.email)
		if (msg == "") != tt.valid {
			t.Errorf("ValidateEmail(%q) = %q, valid = %v", tt.email, msg, tt.valid)
		}
	}
}

func TestValidateRating(t *testing.T) {
	for rating, valid := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false, -1: false} {
		msg := ValidateRating(rating)
		if (msg == "") != valid {
			t.Errorf("ValidateRating(%d) = %q, valid = %v", rating, msg, valid)
		}
	}
}

func TestValidateUserForm(t *testing.T) {
	confirm := "Admin@123"
	errors := ValidateUserForm(UserFormValues{
		Name:            "Valid User Name For Tests",
		Email:           "user@example.com",
		Address:         "Some address",
		Password:        "Admin@123",
		ConfirmPassword: &confirm,
	})
	if len(errors) != 0 {
		t.Errorf("valid form should pass, got %v", errors)
	}

	errors = ValidateUserForm(UserFormValues{})
	for _, field := range []string{"name", "email", "address", "password"} {
		if errors[field] == "" {
			t.Errorf("empty form should report %q", field)
		}
	}
	if _, ok := errors["confirmPassword"]; ok {
		t.Error("confirmPassword must not be checked when the field is absent")
	}

	badConfirm := "Other@123"
	errors = ValidateUserForm(UserFormValues{
		Name:            "Valid User Name For Tests",
		Email:           "user@example.com",
		Address:         "Some address",
		Password:        "Admin@123",
		ConfirmPassword: &badConfirm,
	})
	if errors["confirmPassword"] != "Passwords do not match" {
		t.Errorf("mismatched confirm: got %v", errors)
	}
}

func TestValidateLoginForm(t *testing.T) {
	errors := ValidateLoginForm("", "")
	if errors["email"] == "" || errors["password"] == "" {
		t.Errorf("empty login form should report both fields, got %v", errors)
	}

	// формат не проверяется, только наличие
	errors = ValidateLoginForm("not-an-email", "x")
	if len(errors) != 0 {
		t.Errorf("login form checks presence only, got %v", errors)
	}
}

func TestValidateStoreForm(t *testing.T) {
	errors := ValidateStoreForm(StoreFormValues{
		Name:    strings.Repeat("A", 25),
		Email:   "a@b.com",
		Address: "X",
	})
	if len(errors) != 0 {
		t.Errorf("valid store form should pass, got %v", errors)
	}
	if _, ok := ValidateStoreForm(StoreFormValues{})["password"]; ok {
		t.Error("store form must not validate a password")
	}
}

func TestValidatePasswordChangeForm(t *testing.T) {
	errors := ValidatePasswordChangeForm("", "weak", "other")
	if errors["currentPassword"] == "" || errors["newPassword"] == "" || errors["confirmPassword"] == "" {
		t.Errorf("bad change form should report all fields, got %v", errors)
	}

	errors = ValidatePasswordChangeForm("Old@12345", "New@12345", "New@12345")
	if len(errors) != 0 {
		t.Errorf("valid change form should pass, got %v", errors)
	}
}
