package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/averyld/teamtalk/internal/store"
	"github.com/averyld/teamtalk/pkg/auth"
)

// env wires every service against a fresh temp-file store.
type env struct {
	store         *store.Store
	tokens        *auth.TokenManager
	auth          *AuthService
	membership    *MembershipService
	messaging     *MessagingService
	notifications *NotificationService
	users         *UserService
	admin         *AdminService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret")
	notifications := NewNotificationService(st, tokens, nil)

	return &env{
		store:         st,
		tokens:        tokens,
		auth:          NewAuthService(st, tokens),
		membership:    NewMembershipService(st, tokens, notifications),
		messaging:     NewMessagingService(st, tokens, notifications),
		notifications: notifications,
		users:         NewUserService(st, tokens),
		admin:         NewAdminService(st, tokens),
	}
}

func (e *env) register(t *testing.T, email, nameFirst, nameLast string) (string, int) {
	t.Helper()
	token, userID, err := e.auth.Register(email, "password123", nameFirst, nameLast)
	require.NoError(t, err)
	return token, userID
}
