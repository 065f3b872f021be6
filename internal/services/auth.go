package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/averyld/teamtalk/internal/models"
	"github.com/averyld/teamtalk/internal/store"
	"github.com/averyld/teamtalk/pkg/apperrors"
	"github.com/averyld/teamtalk/pkg/auth"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9]+[._]?[a-zA-Z0-9]+@\w+\.\w{2,3}$`)

const (
	minPasswordLen = 6
	maxHandleLen   = 20
)

// AuthService owns registration, login sessions and logout.
type AuthService struct {
	store *store.Store
	resolver
}

func NewAuthService(st *store.Store, tokens *auth.TokenManager) *AuthService {
	return &AuthService{store: st, resolver: resolver{tokens: tokens}}
}

// Register creates a new account and an initial session for it. The first
// account ever registered becomes the global owner.
func (s *AuthService) Register(email, password, nameFirst, nameLast string) (string, int, error) {
	if !emailPattern.MatchString(email) {
		return "", 0, apperrors.ErrInvalidEmail
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "", 0, apperrors.ErrPasswordTooShort
	}
	if !validName(nameFirst) || !validName(nameLast) {
		return "", 0, apperrors.ErrInvalidName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", 0, err
	}

	var token string
	var userID int
	err = s.store.Update(func(d *models.Data) error {
		if d.UserByEmail(email) != nil {
			return apperrors.ErrEmailTaken
		}

		permission := models.PermMember
		if len(d.Users) == 0 {
			permission = models.PermOwner
		}

		user := &models.User{
			ID:            d.NextUserID(),
			Email:         email,
			Password:      string(hash),
			NameFirst:     nameFirst,
			NameLast:      nameLast,
			Handle:        generateHandle(d, nameFirst, nameLast),
			Permission:    permission,
			Sessions:      []int{},
			Notifications: []models.Notification{},
		}
		sessionID := user.NextSessionID()
		user.Sessions = append(user.Sessions, sessionID)
		d.Users = append(d.Users, user)

		token, err = s.tokens.Generate(user.ID, sessionID)
		if err != nil {
			return err
		}
		userID = user.ID
		return nil
	})
	if err != nil {
		return "", 0, err
	}
	return token, userID, nil
}

// Login opens a new session for an existing account. Prior sessions stay
// active, so the same account can be logged in from several devices.
func (s *AuthService) Login(email, password string) (string, int, error) {
	if !emailPattern.MatchString(email) {
		return "", 0, apperrors.ErrInvalidEmail
	}

	var token string
	var userID int
	err := s.store.Update(func(d *models.Data) error {
		user := d.UserByEmail(email)
		if user == nil {
			return apperrors.ErrEmailUnknown
		}
		if user.IsRemoved() {
			return apperrors.ErrUserRemoved
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return apperrors.ErrWrongPassword
		}

		sessionID := user.NextSessionID()
		user.Sessions = append(user.Sessions, sessionID)

		var err error
		token, err = s.tokens.Generate(user.ID, sessionID)
		if err != nil {
			return err
		}
		userID = user.ID
		return nil
	})
	if err != nil {
		return "", 0, err
	}
	return token, userID, nil
}

// Logout invalidates the one session named by the token. It never fails: an
// already-invalid token just reports false.
func (s *AuthService) Logout(token string) bool {
	success := false
	_ = s.store.Update(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		claims, err := s.tokens.Verify(token)
		if err != nil {
			return err
		}
		user.DropSession(claims.SessionID)
		success = true
		return nil
	})
	return success
}

// Lengths count characters, not bytes.
func validName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 1 && n <= 50
}

// generateHandle derives a handle from a user's full name: lower-cased
// concatenation truncated to 20 characters with '@' and spaces stripped. On
// collision the smallest integer suffix starting at 0 is appended, which may
// push the handle past 20 characters.
func generateHandle(d *models.Data, nameFirst, nameLast string) string {
	runes := []rune(strings.ToLower(nameFirst + nameLast))
	if len(runes) > maxHandleLen {
		runes = runes[:maxHandleLen]
	}
	handle := strings.ReplaceAll(string(runes), "@", "")
	handle = strings.ReplaceAll(handle, " ", "")

	if d.UserByHandle(handle) == nil {
		return handle
	}
	for i := 0; ; i++ {
		candidate := handle + strconv.Itoa(i)
		if d.UserByHandle(candidate) == nil {
			return candidate
		}
	}
}
