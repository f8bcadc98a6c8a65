package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/session"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

// SignInResult é devolvido no login
type SignInResult struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Identity  *domain.Identity `json:"user"`
}

//go:generate mockgen -source=service.go -destination=mocks/authenticator_mock.go -package=mocks
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	SignOut(sessionID string) bool
	ValidateToken(tokenString string) (*domain.Claims, error)
	Provider(sessionID string) session.Provider
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	sessions *sessionRegistry
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) *Service {
	s := &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
	s.sessions = newSessionRegistry(func() time.Time { return s.now() })
	return s
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func containsEmail(list []string, email string) bool {
	for _, item := range list {
		if handleEmail(item) == email {
			return true
		}
	}
	return false
}

// emailAllowed: lista vazia libera qualquer email cadastrado
func (s *Service) emailAllowed(email string) bool {
	if len(s.cfg.Auth.AllowedEmails) == 0 {
		return true
	}
	return containsEmail(s.cfg.Auth.AllowedEmails, email)
}

func (s *Service) isAdmin(email string) bool {
	return containsEmail(s.cfg.Auth.AdminEmails, email)
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	if !s.emailAllowed(email) {
		logrus.WithField("user_id", user.ID).Warn("Login recusado: email fora da lista de acesso")
		return nil, NewUserAuthError(ErrEmailNotAuthorized, apiErrors.ErrEmailNotAuthorized, user.ID, "Acesso negado: seu email não está autorizado")
	}

	identity := domain.Identity{
		UID:         strconv.Itoa(user.ID),
		DisplayName: user.DisplayName(),
		Email:       user.Email,
		Admin:       s.isAdmin(email),
	}
	if user.AvatarURL != nil {
		identity.PhotoURL = *user.AvatarURL
	}

	sessionID := uuid.New().String()
	expiresAt := s.now().Add(s.tokenTTL())

	token, err := s.generateJWT(user, sessionID, expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	s.sessions.open(sessionID, identity, expiresAt)

	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"session_id": sessionID,
	}).Info("Sessão iniciada")

	return &SignInResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Identity:  &identity,
	}, nil
}

// SignOut encerra a sessão; os assinantes recebem identidade nil
func (s *Service) SignOut(sessionID string) bool {
	closed := s.sessions.close(sessionID)
	if closed {
		logrus.WithField("session_id", sessionID).Info("Sessão encerrada")
	}
	return closed
}

// ExpireSessions encerra as sessões cujo token já venceu. Os assinantes recebem identidade nil,
// como no logout, e os IDs devolvidos servem para descartar os workspaces.
func (s *Service) ExpireSessions() []string {
	expired := s.sessions.expire(s.now())
	if len(expired) > 0 {
		logrus.WithField("count", len(expired)).Info("Sessões vencidas encerradas")
	}
	return expired
}

// OpenSessions conta as sessões em memória
func (s *Service) OpenSessions() int {
	return s.sessions.count()
}

func (s *Service) Provider(sessionID string) session.Provider {
	return &sessionProvider{registry: s.sessions, sessionID: sessionID}
}

func (s *Service) tokenTTL() time.Duration {
	if s.cfg.Auth.TokenTTL <= 0 {
		return defaultTokenTTL
	}
	return s.cfg.Auth.TokenTTL
}

func (s *Service) generateJWT(user *domain.User, sessionID string, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		SessionID:     sessionID,
		UserID:        user.ID,
		UserName:      user.DisplayName(),
		UserEmail:     user.Email,
		UserAvatarURL: user.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

// ValidateToken confere assinatura, expiração e se a sessão ainda está aberta
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	identity := s.sessions.identity(claims.SessionID, s.now())
	if identity == nil {
		return nil, ErrSessionEnded
	}
	claims.Admin = identity.Admin

	return claims, nil
}

// HashPassword gera o hash bcrypt usado na tabela de usuários
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrMissingRequiredData
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}
	return string(hash), nil
}
