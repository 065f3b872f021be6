package services

import (
	"github.com/averyld/teamtalk/internal/models"
	"github.com/averyld/teamtalk/internal/store"
	"github.com/averyld/teamtalk/pkg/apperrors"
	"github.com/averyld/teamtalk/pkg/auth"
)

// AdminService owns the workspace-wide operations reserved for global owners.
type AdminService struct {
	store *store.Store
	resolver
}

func NewAdminService(st *store.Store, tokens *auth.TokenManager) *AdminService {
	return &AdminService{store: st, resolver: resolver{tokens: tokens}}
}

// RemoveUser soft-deletes an account: the name fields become the sentinel,
// every message the user ever sent is redacted to it, and they can no longer
// authenticate. Their profile stays readable and their message ids and
// authorship are preserved. The last global owner cannot be removed.
func (s *AdminService) RemoveUser(token string, targetID int) error {
	return s.store.Update(func(d *models.Data) error {
		caller, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		if caller.Permission != models.PermOwner {
			return apperrors.ErrNotGlobalOwner
		}
		target := d.UserByID(targetID)
		if target == nil {
			return apperrors.ErrUserUnknown
		}
		if target.IsRemoved() {
			return apperrors.ErrUserRemoved
		}
		if target.Permission == models.PermOwner && d.GlobalOwnerCount() == 1 {
			return apperrors.ErrSoleGlobalOwner
		}

		target.NameFirst = models.RemovedUserName
		target.NameLast = models.RemovedUserName
		target.Sessions = []int{}

		for _, ch := range d.Channels {
			for i := range ch.Messages {
				if ch.Messages[i].UserID == target.ID {
					ch.Messages[i].Text = models.RemovedUserName
				}
			}
		}
		return nil
	})
}

// ChangePermission switches a user between global owner and member. The last
// global owner cannot be demoted.
func (s *AdminService) ChangePermission(token string, targetID, permission int) error {
	return s.store.Update(func(d *models.Data) error {
		caller, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		if caller.Permission != models.PermOwner {
			return apperrors.ErrNotGlobalOwner
		}
		target := d.UserByID(targetID)
		if target == nil {
			return apperrors.ErrUserUnknown
		}
		if target.IsRemoved() {
			return apperrors.ErrUserRemoved
		}
		if target.Permission == models.PermOwner && d.GlobalOwnerCount() == 1 {
			return apperrors.ErrSoleGlobalOwner
		}
		if permission != models.PermOwner && permission != models.PermMember {
			return apperrors.ErrInvalidPermission
		}

		target.Permission = permission
		return nil
	})
}
