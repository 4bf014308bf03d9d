package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Ошибки хеширования токенов
var (
	ErrEmptyToken    = errors.New("token cannot be empty")
	ErrTokenMismatch = errors.New("token does not match hash")
	ErrInvalidHash   = errors.New("invalid token hash format")
	ErrTokenTooLong  = errors.New("token exceeds maximum length of 72 bytes")
)

// DefaultCost - стоимость хеширования по умолчанию.
// Токен дашборда проверяется один раз на запрос, поэтому умеренная
// стоимость достаточна и не нагружает каждый HTTP запрос.
const DefaultCost = 10

// MaxTokenLength - ограничение bcrypt на длину входа (72 байта)
const MaxTokenLength = 72

// HashToken хеширует API токен дашборда с использованием bcrypt.
// Salt генерируется автоматически.
//
// Используется утилитой выпуска токенов; сервер хранит только хеш
// (переменная окружения DASHBOARD_TOKEN_HASH).
func HashToken(token string) (string, error) {
	if token == "" {
		return "", ErrEmptyToken
	}
	if len(token) > MaxTokenLength {
		return "", ErrTokenTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyToken проверяет соответствие токена хешу.
// Использует constant-time сравнение для защиты от timing attacks.
func VerifyToken(token, hash string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if hash == "" {
		return ErrInvalidHash
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrTokenMismatch
		}
		return ErrInvalidHash
	}

	return nil
}

// CheckTokenMatch проверяет соответствие токена хешу и возвращает bool.
// Удобная обёртка для использования в условиях.
func CheckTokenMatch(token, hash string) bool {
	return VerifyToken(token, hash) == nil
}
