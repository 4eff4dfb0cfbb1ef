package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()
	secret, err := GenerateSecureSecret()
	if err != nil {
		t.Fatalf("Ошибка генерации секрета: %v", err)
	}
	m, err := NewTokenManager(secret, ttl)
	if err != nil {
		t.Fatalf("Ошибка создания менеджера: %v", err)
	}
	return m
}

// TestGenerateAndValidate тестирует выпуск и проверку токена
func TestGenerateAndValidate(t *testing.T) {
	m := newManager(t, time.Hour)

	token, err := m.Generate("ci-bot", true)
	if err != nil {
		t.Fatalf("Ошибка генерации JWT: %v", err)
	}

	// Проверяем, что токен содержит точки (разделители частей JWT)
	if strings.Count(token, ".") != 2 {
		t.Errorf("Неверный формат JWT токена: %s", token)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Валидный токен определен как недействительный: %v", err)
	}
	if claims.Subject != "ci-bot" {
		t.Errorf("Неверный subject: %s", claims.Subject)
	}
	if !claims.CanSolve {
		t.Error("Потерян флаг can_solve")
	}
}

// TestValidateInvalidJWT тестирует валидацию недействительных токенов
func TestValidateInvalidJWT(t *testing.T) {
	m := newManager(t, time.Hour)
	other := newManager(t, time.Hour)

	foreign, err := other.Generate("intruder", true)
	if err != nil {
		t.Fatalf("Ошибка генерации JWT: %v", err)
	}

	testCases := []string{
		"invalid.token.here",
		"",
		"not.a.jwt",
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature",
		foreign,
	}

	for _, invalidToken := range testCases {
		if _, err := m.Validate(invalidToken); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Недействительный токен '%s' прошел валидацию: %v", invalidToken, err)
		}
	}
}

// TestExpiredToken тестирует истёкший токен
func TestExpiredToken(t *testing.T) {
	m := newManager(t, time.Hour)
	m.ttl = -time.Minute

	token, err := m.Generate("late", false)
	if err != nil {
		t.Fatalf("Ошибка генерации JWT: %v", err)
	}
	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Error("Истёкший токен прошел валидацию")
	}
}

// TestNewTokenManagerSecrets тестирует проверку секрета
func TestNewTokenManagerSecrets(t *testing.T) {
	invalidSecrets := []string{
		"too-short",
		"invalid-base64-@#$%",
		"c2hvcnQ=", // "short"
	}
	for _, secret := range invalidSecrets {
		if _, err := NewTokenManager(secret, 0); err == nil {
			t.Errorf("Недействительный секрет '%s' принят", secret)
		}
	}

	secret1, err1 := GenerateSecureSecret()
	secret2, err2 := GenerateSecureSecret()
	if err1 != nil || err2 != nil {
		t.Fatalf("Ошибка генерации секрета: %v %v", err1, err2)
	}
	if secret1 == secret2 {
		t.Error("Два последовательных вызова GenerateSecureSecret вернули одинаковый результат")
	}
	if _, err := NewTokenManager(secret1, 0); err != nil {
		t.Errorf("Ошибка установки валидного секрета: %v", err)
	}
}
