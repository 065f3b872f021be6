package services

import (
	"github.com/averyld/teamtalk/internal/models"
	"github.com/averyld/teamtalk/pkg/apperrors"
	"github.com/averyld/teamtalk/pkg/auth"
)

// resolver turns an opaque session token into the user behind it. A token is
// only good while its session id is still in the user's active session list
// and the user has not been removed.
type resolver struct {
	tokens *auth.TokenManager
}

func (r resolver) resolve(d *models.Data, token string) (*models.User, error) {
	claims, err := r.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeAccessDenied, "invalid token", err)
	}
	user := d.UserByID(claims.UserID)
	if user == nil || user.IsRemoved() || !user.HasSession(claims.SessionID) {
		return nil, apperrors.ErrInvalidToken
	}
	return user, nil
}
