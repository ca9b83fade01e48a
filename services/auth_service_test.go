package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
	"github.com/Derescio/bugleworldmusic/repository"
	"github.com/Derescio/bugleworldmusic/utils"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}))
	return NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Fan@Example.COM ", "secret123", "A Fan")
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "secret123", user.Password) // stored hashed

	token, logged, err := svc.Login("fan@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("fan@example.com", "secret123", "A Fan")
	require.NoError(t, err)

	_, err = svc.Register("FAN@example.com", "other", "Impostor")
	assert.EqualError(t, err, "email already registered")
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Register("fan@example.com", "secret123", "A Fan")
	require.NoError(t, err)

	_, _, err = svc.Login("fan@example.com", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	_, _, err = svc.Login("nobody@example.com", "secret123")
	assert.EqualError(t, err, "invalid credentials")
}
