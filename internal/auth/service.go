package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/posturelab/posturecheck/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	sessionKeyPrefix = "posturecheck-session||"
	tokenLength      = 35
)

var (
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrNotLoggedIn      = errors.New("not logged in")
)

// Admin is the single service administrator account.
type Admin struct {
	Username     string
	PasswordHash string
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service manages admin login sessions backed by redis.
type Service struct {
	admin Admin
	rdb   *redis.Client

	// RandStringFunc generates session tokens, swappable in tests.
	RandStringFunc func(length int) (string, error)
}

func NewService(rdb *redis.Client, admin Admin) *Service {
	return &Service{
		admin:          admin,
		rdb:            rdb,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, token)
}

// Login validates the credentials and creates a new session,
// returning its token.
func (s *Service) Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error) {
	if credentials.Username != s.admin.Username {
		return "", ErrWrongCredentials
	}
	if !pkg.CheckPasswordHash(credentials.Password, s.admin.PasswordHash) {
		return "", ErrWrongCredentials
	}

	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	if err := s.rdb.Set(ctx, sessionKey(token), createdAt.Unix(), 0).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Logout removes the session of the given token.
func (s *Service) Logout(ctx context.Context, token string) error {
	removed, err := s.rdb.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	if removed == 0 {
		return ErrNotLoggedIn
	}
	return nil
}

// IsLogged says whether the given token belongs to an active session.
func (s *Service) IsLogged(ctx context.Context, token string) (bool, error) {
	found, err := s.rdb.Exists(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}
	return found > 0, nil
}

// ScanAndClean walks through all sessions and removes the ones
// created before the given time.
func (s *Service) ScanAndClean(ctx context.Context, olderThan time.Time) {
	iter := s.rdb.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()

	var checked, removed int
	for iter.Next(ctx) {
		checked++
		key := iter.Val()

		createdAtUnix, err := s.rdb.Get(ctx, key).Int64()
		if err != nil {
			log.Errorf("sessions cleanup: get %s: %s", key, err)
			continue
		}

		if time.Unix(createdAtUnix, 0).After(olderThan) {
			continue
		}

		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			log.Errorf("sessions cleanup: remove %s: %s", key, err)
			continue
		}
		removed++
	}

	if err := iter.Err(); err != nil {
		log.Errorf("sessions cleanup: scan: %s", err)
	}

	log.Debugf("sessions cleanup done: %d checked, %d removed", checked, removed)
}
