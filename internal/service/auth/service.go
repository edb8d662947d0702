package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/clinicore/clinic-api/pkg/errors"
	"github.com/clinicore/clinic-api/pkg/logger"
	"github.com/clinicore/clinic-api/pkg/security"
	"github.com/clinicore/clinic-api/pkg/session"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
)

// Service authenticates users and manages their sessions. Tokens are
// JWTs that carry a server-side session id, so logout takes effect
// immediately regardless of the token's remaining lifetime.
type Service struct {
	users    repository.UserRepository
	sessions session.Store
	hasher   security.PasswordHasher
	secret   []byte
	ttl      time.Duration
	logger   *logger.Logger
}

func NewService(users repository.UserRepository, sessions session.Store, hasher security.PasswordHasher, secret string, ttl time.Duration, logger *logger.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		secret:   []byte(secret),
		ttl:      ttl,
		logger:   logger.WithComponent("auth_service"),
	}
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Unauthorized("invalid username or password")
		}
		return nil, apperrors.Internal(err)
	}
	if !user.IsActive {
		return nil, apperrors.Unauthorized("invalid username or password")
	}

	needsRehash, err := s.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid username or password")
	}
	if needsRehash {
		// Upgrade legacy digests to bcrypt on successful login.
		if hash, hashErr := s.hasher.Hash(req.Password); hashErr == nil {
			if updErr := s.users.UpdatePassword(ctx, user.ID, hash); updErr != nil {
				s.logger.Warn("failed to upgrade password hash", "user_id", user.ID, "error", updErr.Error())
			}
		}
	}

	sess := &session.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Role:      user.Role,
		Email:     user.Email,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Put(ctx, sess, s.ttl); err != nil {
		return nil, apperrors.Internal(err)
	}

	token, err := s.issueToken(sess)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)

	return &model.LoginResponse{Token: token, User: user}, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, session.ErrNotFound) {
		return apperrors.Internal(err)
	}
	return nil
}

// Authenticate validates a bearer token and resolves the session
// behind it. An expired token or a deleted session both fail.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*session.Session, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("invalid or expired token")
	}

	sess, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, apperrors.Unauthorized("session expired")
		}
		return nil, apperrors.Internal(err)
	}
	return sess, nil
}

func (s *Service) issueToken(sess *session.Session) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		Subject:   sess.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
