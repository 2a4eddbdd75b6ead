package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
	"github.com/jhoicas/MiNegocio-api/pkg/jwt"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// Principal identidad autenticada de una petición.
type Principal struct {
	UserID    string
	Email     string
	SessionID string
}

// AuthUseCase inicio y cierre de sesión. No hay registro público: las cuentas se crean con CreateUser.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions repository.SessionStore
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions repository.SessionStore, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// CreateUser hashea el password con bcrypt y persiste la cuenta activa.
func (uc *AuthUseCase) CreateUser(ctx context.Context, email, password, name string) (*dto.UserResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: el password debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Login verifica email/password, registra una sesión nueva y firma el JWT con su id (jti).
// Email desconocido y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}

	sessionID := uuid.New().String()
	if err := uc.sessions.Save(ctx, sessionID, user.ID, uc.jwtCfg.TTL); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, user.ID, user.Email, sessionID, uc.jwtCfg.TTL)
	if err != nil {
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("inicio de sesión")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(uc.jwtCfg.TTL),
		User:      dto.NewUserResponse(user),
	}, nil
}

// Authenticate valida el token y que su sesión siga viva (no expirada ni cerrada).
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*Principal, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	ok, err := uc.sessions.Exists(ctx, claims.SessionID())
	if err != nil {
		return nil, fmt.Errorf("consultar sesión: %w", err)
	}
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &Principal{UserID: claims.UserID, Email: claims.Email, SessionID: claims.SessionID()}, nil
}

// Logout cierra la sesión; el token deja de servir aunque no haya expirado.
func (uc *AuthUseCase) Logout(ctx context.Context, p Principal) error {
	if err := uc.sessions.Delete(ctx, p.SessionID); err != nil {
		return fmt.Errorf("cerrar sesión: %w", err)
	}
	uc.log.Info().Str("user_id", p.UserID).Msg("cierre de sesión")
	return nil
}

// Session datos del usuario de la sesión actual.
func (uc *AuthUseCase) Session(ctx context.Context, p Principal) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	return &dto.SessionResponse{SessionID: p.SessionID, User: dto.NewUserResponse(user)}, nil
}
