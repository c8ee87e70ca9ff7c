// Package auth issues PASETO token pairs backed by Redis-tracked sessions.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mindchat/mindchat_backend/config"
	"github.com/mindchat/mindchat_backend/internal/service/directory"
	pasetotoken "github.com/mindchat/mindchat_backend/pkg/paseto"
	"github.com/mindchat/mindchat_backend/pkg/util/password"
)

const sessionKeyPrefix = "session:"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       uuid.UUID `json:"user_id"`
	Role         string    `json:"role"`
	FullName     string    `json:"full_name"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, email, plainPassword string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, claims *pasetotoken.Claims) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	users      directory.Service
	tokens     *pasetotoken.Manager
	rdb        *redis.Client
	sessionTTL time.Duration
}

func New(users directory.Service, tokens *pasetotoken.Manager, rdb *redis.Client, cfg *config.Config) Service {
	ttl := time.Duration(cfg.Authentication.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authService{users: users, tokens: tokens, rdb: rdb, sessionTTL: ttl}
}

func (s *authService) Login(ctx context.Context, email, plainPassword string) (*TokenPair, error) {
	u, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		return nil, ErrInvalidCredentials
	}

	if err := password.Verify(u.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.New()
	if err := s.storeSession(ctx, sessionID, u.ID); err != nil {
		return nil, err
	}

	return s.issuePair(u.ID, sessionID, string(u.Role), u.FullName)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil || claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	// The session must still be alive; logout kills refresh too.
	if err := s.rdb.Get(ctx, sessionKeyPrefix+claims.SessionID.String()).Err(); err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("check session: %w", err)
	}

	u, err := s.users.UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// Rotate the session on refresh.
	sessionID := uuid.New()
	if err := s.storeSession(ctx, sessionID, u.ID); err != nil {
		return nil, err
	}
	_ = s.rdb.Del(ctx, sessionKeyPrefix+claims.SessionID.String()).Err()

	return s.issuePair(u.ID, sessionID, string(u.Role), u.FullName)
}

func (s *authService) Logout(ctx context.Context, claims *pasetotoken.Claims) error {
	if claims.SessionID == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, sessionKeyPrefix+claims.SessionID.String()).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *authService) storeSession(ctx context.Context, sessionID, userID uuid.UUID) error {
	key := sessionKeyPrefix + sessionID.String()
	if err := s.rdb.Set(ctx, key, userID.String(), s.sessionTTL).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *authService) issuePair(userID, sessionID uuid.UUID, role, fullName string) (*TokenPair, error) {
	access, err := s.tokens.IssueAccess(userID, &sessionID, role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(userID, &sessionID, role)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       userID,
		Role:         role,
		FullName:     fullName,
	}, nil
}
