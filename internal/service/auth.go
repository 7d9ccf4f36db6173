package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/igrii/tienda/internal/hash"
	"github.com/igrii/tienda/internal/logging"
	"github.com/igrii/tienda/internal/models"
	"github.com/igrii/tienda/internal/mykafka"
	"github.com/igrii/tienda/internal/repo"
	"github.com/igrii/tienda/internal/tokens"
	"gorm.io/gorm"
)

var (
	ErrValidation         = errors.New("faltan datos")
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	// Both login failures belong to the invalid-credentials class; the
	// messages stay distinct because the shipped client displays them.
	ErrUserNotFound  = fmt.Errorf("usuario no encontrado: %w", ErrInvalidCredentials)
	ErrWrongPassword = fmt.Errorf("contraseña incorrecta: %w", ErrInvalidCredentials)
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Producer  *mykafka.Producer
}

type LoginResult struct {
	Token string
	Exp   time.Time
	User  *models.Usuario
}

func (s *AuthService) Register(ctx context.Context, nombre, email, password string, role models.Role) (*models.Usuario, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if nombre == "" || email == "" || password == "" {
		return nil, ErrValidation
	}
	if role == "" {
		role = models.RoleCliente
	}
	if !role.Valid() {
		return nil, ErrValidation
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := &models.Usuario{
		Nombre:       nombre,
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
	}
	if err := s.Repo.CreateUsuarioIfNotExists(ctx, user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_conflict", "email", email)
		} else {
			l.Error("register_failed", "error", err)
		}
		return nil, err
	}

	s.publish(ctx, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	l.Info("register_success", "user_id", user.ID)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.Repo.FindUsuarioByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "reason", "unknown email")
			return nil, ErrUserNotFound
		}
		l.Error("login_failed", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "wrong password", "user_id", user.ID)
		return nil, ErrWrongPassword
	}

	token, exp, err := tokens.SignAccessToken(user.ID, user.Email, user.Role, s.JWTSecret)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	s.publish(ctx, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":    "user_logged_in",
		"user_id": user.ID,
		"email":   user.Email,
	})

	l.Info("login_success", "user_id", user.ID)
	return &LoginResult{Token: token, Exp: exp, User: user}, nil
}

// Verify reports the claim set of a valid token. Any failure (missing,
// malformed, bad signature, expired) comes back as an error, not a panic
// path; callers translate it into {valid:false}.
func (s *AuthService) Verify(tokenStr string) (*tokens.AccessClaims, error) {
	if tokenStr == "" {
		return nil, ErrValidation
	}
	return tokens.AccessClaimsFromToken(tokenStr, s.JWTSecret)
}

func (s *AuthService) publish(ctx context.Context, topic, key string, event map[string]any) {
	if err := s.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("kafka_publish_failed", "topic", topic, "error", err)
	}
}
