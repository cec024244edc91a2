package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.PasswordResetRepository = (*PasswordResetRepo)(nil)

// PasswordResetRepo implementación del puerto PasswordResetRepository sobre PostgreSQL.
type PasswordResetRepo struct {
	pool *pgxpool.Pool
}

// NewPasswordResetRepository construye el adaptador de códigos OTP de reset.
func NewPasswordResetRepository(pool *pgxpool.Pool) *PasswordResetRepo {
	return &PasswordResetRepo{pool: pool}
}

// Create persiste un código de reset (solo el hash del código).
func (r *PasswordResetRepo) Create(reset *entity.PasswordReset) error {
	query := `
		INSERT INTO password_resets (id, user_id, code_hash, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		reset.ID, reset.UserID, reset.CodeHash, reset.ExpiresAt, reset.Used, reset.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert password reset: %w", err)
	}
	return nil
}

// FindValid busca un código no usado y no expirado para el usuario por hash del código.
func (r *PasswordResetRepo) FindValid(userID, codeHash string, now time.Time) (*entity.PasswordReset, error) {
	query := `
		SELECT id, user_id, code_hash, expires_at, used, created_at
		FROM password_resets
		WHERE user_id = $1 AND code_hash = $2 AND used = false AND expires_at > $3
		ORDER BY created_at DESC LIMIT 1`
	var p entity.PasswordReset
	err := r.pool.QueryRow(context.Background(), query, userID, codeHash, now).Scan(
		&p.ID, &p.UserID, &p.CodeHash, &p.ExpiresAt, &p.Used, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find password reset: %w", err)
	}
	return &p, nil
}

// MarkUsed consume el código (un solo uso).
func (r *PasswordResetRepo) MarkUsed(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE password_resets SET used = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark password reset used: %w", err)
	}
	return nil
}

// InvalidateForUser marca como usados los códigos pendientes del usuario.
func (r *PasswordResetRepo) InvalidateForUser(userID string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE password_resets SET used = true WHERE user_id = $1 AND used = false`, userID)
	if err != nil {
		return fmt.Errorf("invalidate password resets: %w", err)
	}
	return nil
}
