package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo"
	"github.com/Egor213/LogSentinel/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen     = 8
	defaultMaxAttempts = 5
	defaultLockFor     = 15 * time.Minute
	defaultTokenTTL    = 12 * time.Hour
	tokenIssuer        = "logsentinel"
)

type TokenClaims struct {
	UserID   int    `json:"uid"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

type AuthService struct {
	userRepo  repo.User
	prefsRepo repo.Preferences
	trManager TxManager
	cfg       AuthConfig
	hashCost  int
	now       func() time.Time
}

func NewAuthService(ur repo.User, pr repo.Preferences, tm TxManager, cfg AuthConfig) *AuthService {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.LockFor <= 0 {
		cfg.LockFor = defaultLockFor
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &AuthService{
		userRepo:  ur,
		prefsRepo: pr,
		trManager: tm,
		cfg:       cfg,
		hashCost:  bcrypt.DefaultCost,
		now:       time.Now,
	}
}

// Login checks credentials and returns a signed token. After MaxAttempts consecutive
// failures the account is locked for LockFor.
func (s *AuthService) Login(ctx context.Context, username, password, ip string) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", errorsUtils.WrapPathErr(err)
	}

	now := s.now()
	if user.IsLocked(now) {
		return "", ErrAccountLocked
	}
	if !user.IsActive {
		return "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		attempts := user.LoginAttempts
		if user.LockedUntil != nil {
			// previous lock has expired
			attempts = 0
		}
		attempts++

		var lockUntil *time.Time
		if attempts >= s.cfg.MaxAttempts {
			until := now.Add(s.cfg.LockFor)
			lockUntil = &until
			log.WithField("username", username).Warn("Account locked after repeated login failures")
		}
		if err := s.userRepo.RecordLoginFailure(ctx, user.Id, attempts, lockUntil); err != nil {
			return "", errorsUtils.WrapPathErr(err)
		}
		return "", ErrInvalidCredentials
	}

	if err := s.userRepo.RecordLoginSuccess(ctx, user.Id, ip); err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	return s.issueToken(user, now)
}

func (s *AuthService) issueToken(u domain.User, now time.Time) (string, error) {
	claims := TokenClaims{
		UserID:   u.Id,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}
	return signed, nil
}

func (s *AuthService) ParseToken(token string) (*TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CreateUser stores the account and its default preferences in one transaction.
func (s *AuthService) CreateUser(ctx context.Context, in domain.NewUser) (int, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return 0, ErrInvalidCredentials
	}
	if len(in.Password) < minPasswordLen {
		return 0, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		IsActive:     true,
		IsAdmin:      in.IsAdmin,
	}

	var id int
	err = s.trManager.Do(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}
		return s.prefsRepo.CreatePreferences(ctx, domain.DefaultPreferences(id))
	})
	if err != nil {
		if errors.Is(err, repoerrs.ErrAlreadyExists) {
			return 0, ErrUserAlreadyExists
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

// EnsureAdmin creates the bootstrap admin when no operator exists yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}

	n, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if n > 0 {
		return nil
	}

	id, err := s.CreateUser(ctx, domain.NewUser{Username: username, Password: password, IsAdmin: true})
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"id": id, "username": username}).Info("Bootstrap admin created")
	return nil
}

func (s *AuthService) getUser(ctx context.Context, userID int) (domain.User, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, errorsUtils.WrapPathErr(err)
	}
	return u, nil
}

func (s *AuthService) Settings(ctx context.Context, userID int) (domain.UserSettings, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserSettings{}, err
	}
	prefs, err := s.Preferences(ctx, userID)
	if err != nil {
		return domain.UserSettings{}, err
	}
	return domain.UserSettings{User: u, Preferences: prefs}, nil
}

// Preferences returns the user's preferences, creating the defaults on first access.
func (s *AuthService) Preferences(ctx context.Context, userID int) (domain.UserPreferences, error) {
	prefs, err := s.prefsRepo.GetPreferences(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, repoerrs.ErrNotFound) {
		return domain.UserPreferences{}, errorsUtils.WrapPathErr(err)
	}

	if err := s.prefsRepo.CreatePreferences(ctx, domain.DefaultPreferences(userID)); err != nil {
		return domain.UserPreferences{}, errorsUtils.WrapPathErr(err)
	}
	prefs, err = s.prefsRepo.GetPreferences(ctx, userID)
	if err != nil {
		return domain.UserPreferences{}, errorsUtils.WrapPathErr(err)
	}
	return prefs, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int, p domain.ProfileUpdate) error {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)

	if err := s.userRepo.UpdateProfile(ctx, userID, p); err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return ErrUserNotFound
		}
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func (s *AuthService) UpdateDisplay(ctx context.Context, userID int, d domain.DisplayPreferences) error {
	if _, err := s.Preferences(ctx, userID); err != nil {
		return err
	}
	if err := s.prefsRepo.UpdateDisplay(ctx, userID, d); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func (s *AuthService) UpdateNotifications(ctx context.Context, userID int, n domain.NotificationPreferences) error {
	if _, err := s.Preferences(ctx, userID); err != nil {
		return err
	}
	if err := s.prefsRepo.UpdateNotifications(ctx, userID, n); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int, pc domain.PasswordChange) error {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(pc.Current)) != nil {
		return ErrWrongPassword
	}
	if pc.New != pc.Confirm {
		return ErrPasswordMismatch
	}
	if len(pc.New) < minPasswordLen {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pc.New), s.hashCost)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
