package repository

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// PasswordResetRepository define el puerto de persistencia para códigos OTP de reset.
type PasswordResetRepository interface {
	Create(reset *entity.PasswordReset) error
	// FindValid busca un código no usado y no expirado para el usuario por hash del código.
	// Devuelve nil si no hay coincidencia.
	FindValid(userID, codeHash string, now time.Time) (*entity.PasswordReset, error)
	// MarkUsed consume el código (un solo uso).
	MarkUsed(id string) error
	// InvalidateForUser marca como usados los códigos pendientes del usuario
	// (al emitir uno nuevo solo el último queda vigente).
	InvalidateForUser(userID string) error
}
