package services

import (
	"regexp"

	"github.com/averyld/teamtalk/internal/models"
	"github.com/averyld/teamtalk/internal/store"
	"github.com/averyld/teamtalk/pkg/apperrors"
	"github.com/averyld/teamtalk/pkg/auth"
)

var handlePattern = regexp.MustCompile(`^[^@ ]{3,20}$`)

// UserService owns profile reads and updates.
type UserService struct {
	store *store.Store
	resolver
}

func NewUserService(st *store.Store, tokens *auth.TokenManager) *UserService {
	return &UserService{store: st, resolver: resolver{tokens: tokens}}
}

// Profile returns the profile of any user, including removed ones, whose
// sentinel name stays readable.
func (s *UserService) Profile(token string, userID int) (UserProfile, error) {
	var profile UserProfile
	err := s.store.View(func(d *models.Data) error {
		if _, err := s.resolve(d, token); err != nil {
			return err
		}
		target := d.UserByID(userID)
		if target == nil {
			return apperrors.ErrUserUnknown
		}
		profile = profileOf(target)
		return nil
	})
	if err != nil {
		return UserProfile{}, err
	}
	return profile, nil
}

// All returns every user's profile.
func (s *UserService) All(token string) ([]UserProfile, error) {
	result := []UserProfile{}
	err := s.store.View(func(d *models.Data) error {
		if _, err := s.resolve(d, token); err != nil {
			return err
		}
		for _, u := range d.Users {
			result = append(result, profileOf(u))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetName updates the caller's first and last name.
func (s *UserService) SetName(token, nameFirst, nameLast string) error {
	if !validName(nameFirst) || !validName(nameLast) {
		return apperrors.ErrInvalidName
	}
	return s.store.Update(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		user.NameFirst = nameFirst
		user.NameLast = nameLast
		return nil
	})
}

// SetEmail updates the caller's email address.
func (s *UserService) SetEmail(token, email string) error {
	if !emailPattern.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	return s.store.Update(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		if other := d.UserByEmail(email); other != nil && other.ID != user.ID {
			return apperrors.ErrEmailTaken
		}
		user.Email = email
		return nil
	})
}

// SetHandle updates the caller's handle.
func (s *UserService) SetHandle(token, handle string) error {
	if !handlePattern.MatchString(handle) {
		return apperrors.ErrInvalidHandle
	}
	return s.store.Update(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		if other := d.UserByHandle(handle); other != nil && other.ID != user.ID {
			return apperrors.ErrHandleTaken
		}
		user.Handle = handle
		return nil
	})
}
