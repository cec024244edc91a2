package entity

import "time"

// PasswordReset representa un código OTP de recuperación de contraseña.
// Se guarda el hash SHA-256 del código, nunca el código plano; es de un solo uso.
type PasswordReset struct {
	ID        string
	UserID    string
	CodeHash  string // hex(sha256(código))
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
