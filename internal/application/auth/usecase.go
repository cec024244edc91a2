package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Mailer envía el código OTP de recuperación. Implementado en infrastructure/mailer;
// en tests se usa un fake.
type Mailer interface {
	SendPasswordResetCode(toEmail, code string, expiresAt time.Time) error
}

// AuthUseCase casos de uso de autenticación: registro, login y reset de contraseña por OTP.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	resetRepo repository.PasswordResetRepository
	mailer    Mailer
	jwtCfg    JWTConfig
	codeTTL   time.Duration
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetRepository,
	mailer Mailer,
	jwtCfg JWTConfig,
	codeTTLMinutes int,
) *AuthUseCase {
	if codeTTLMinutes <= 0 {
		codeTTLMinutes = 15
	}
	return &AuthUseCase{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		mailer:    mailer,
		jwtCfg:    jwtCfg,
		codeTTL:   time.Duration(codeTTLMinutes) * time.Minute,
	}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleOperador
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// RequestPasswordReset emite un código OTP de 6 dígitos, guarda su hash con vigencia
// limitada y lo envía por correo. Si el email no existe no devuelve error: el endpoint
// responde igual para no revelar qué correos están registrados.
func (uc *AuthUseCase) RequestPasswordReset(email string) error {
	if email == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil // respuesta indistinguible para emails no registrados
	}
	code, err := generateOTP()
	if err != nil {
		return err
	}
	now := time.Now()
	expiresAt := now.Add(uc.codeTTL)

	// Solo el último código queda vigente.
	if err := uc.resetRepo.InvalidateForUser(user.ID); err != nil {
		return err
	}
	reset := &entity.PasswordReset{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CodeHash:  HashCode(code),
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := uc.resetRepo.Create(reset); err != nil {
		return err
	}
	return uc.mailer.SendPasswordResetCode(user.Email, code, expiresAt)
}

// ConfirmPasswordReset verifica el código OTP y cambia la contraseña. El código es de
// un solo uso: se consume antes de actualizar el hash.
func (uc *AuthUseCase) ConfirmPasswordReset(in dto.ResetPasswordRequest) error {
	if in.Email == "" || in.Code == "" || len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrCodeExpired // mismo error que código inválido: sin enumeración
	}
	reset, err := uc.resetRepo.FindValid(user.ID, HashCode(in.Code), time.Now())
	if err != nil {
		return err
	}
	if reset == nil {
		return domain.ErrCodeExpired
	}
	if err := uc.resetRepo.MarkUsed(reset.ID); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePasswordHash(user.ID, string(hash))
}

// HashCode devuelve hex(sha256(code)); el código plano nunca se persiste.
func HashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// generateOTP genera un código de 6 dígitos con crypto/rand (ceros a la izquierda incluidos).
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
