package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpovs/stockkeeper/internal/common"
	"github.com/akarpovs/stockkeeper/internal/server/auth"
	"github.com/akarpovs/stockkeeper/internal/server/config"
	"github.com/akarpovs/stockkeeper/internal/server/repositories/users"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	conn := newTestDB(t)
	cfg := &config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
	return NewUserService(conn, users.NewSQLiteRepository(conn), cfg, testLogger())
}

func TestRegister(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, "", "s3cret")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	token, err := svc.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)

	claims, err := auth.ValidateToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidLogin)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Authenticate(context.Background(), "nobody", "pw")
	assert.ErrorIs(t, err, common.ErrInvalidLogin)
}
