package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/akarpovs/stockkeeper/internal/common"
	"github.com/akarpovs/stockkeeper/internal/dbx"
	"github.com/akarpovs/stockkeeper/internal/logging"
	"github.com/akarpovs/stockkeeper/internal/server/auth"
	"github.com/akarpovs/stockkeeper/internal/server/config"
	"github.com/akarpovs/stockkeeper/internal/server/models"
	"github.com/akarpovs/stockkeeper/internal/server/repositories/users"
)

// UserService registers accounts and issues session tokens.
type UserService struct {
	conn      *sql.DB
	repo      users.Repository
	jwtSecret string
	tokenTTL  time.Duration
	logger    logging.Logger
}

func NewUserService(conn *sql.DB, repo users.Repository, cfg *config.AuthConfig, logger logging.Logger) *UserService {
	return &UserService{
		conn:      conn,
		repo:      repo,
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  cfg.TokenTTL,
		logger:    logger,
	}
}

// Register creates a new account with a bcrypt password hash. The
// uniqueness check and the insert run in one transaction.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	err = dbx.WithTx(ctx, s.conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo.WithTx(tx)

		_, err := repo.GetByUsername(ctx, username)
		if err == nil {
			return common.ErrAlreadyExists
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		return repo.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		s.logger.Error(ctx, "registering user", "username", username, "error", err)
		return nil, common.ErrInternal
	}

	return user, nil
}

// Authenticate checks the credentials and returns a signed session token.
// Wrong username and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidLogin
		}
		s.logger.Error(ctx, "loading user", "username", username, "error", err)
		return "", common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrInvalidLogin
	}

	token, err := auth.GenerateToken(s.jwtSecret, user.Username, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "generating token", "username", username, "error", err)
		return "", common.ErrInternal
	}

	return token, nil
}
