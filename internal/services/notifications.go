package services

import (
	"fmt"
	"regexp"

	"github.com/averyld/teamtalk/internal/models"
	"github.com/averyld/teamtalk/internal/store"
	"github.com/averyld/teamtalk/pkg/auth"
)

// notificationsPageSize caps how many notifications Get returns.
const notificationsPageSize = 20

// tagPreviewLen is how much of a message a tag notification quotes.
const tagPreviewLen = 20

var tagPattern = regexp.MustCompile(`@\w+`)

// Streamer pushes a freshly created notification to any live connections of
// the target user. The stored notification list stays the source of truth.
type Streamer interface {
	Push(userID int, n models.Notification)
}

// NotificationService consumes membership and messaging events and fans
// notifications out to the affected users.
type NotificationService struct {
	store *store.Store
	resolver
	stream Streamer
}

func NewNotificationService(st *store.Store, tokens *auth.TokenManager, stream Streamer) *NotificationService {
	return &NotificationService{store: st, resolver: resolver{tokens: tokens}, stream: stream}
}

// Get returns the caller's notifications, most recent first, capped at 20.
func (s *NotificationService) Get(token string) ([]models.Notification, error) {
	result := []models.Notification{}
	err := s.store.View(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		for i, n := range user.Notifications {
			if i >= notificationsPageSize {
				break
			}
			result = append(result, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Whoami resolves a token to its user id, for callers that need an identity
// before any store mutation (the notification stream endpoint).
func (s *NotificationService) Whoami(token string) (int, error) {
	var userID int
	err := s.store.View(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		userID = user.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// MemberAdded handles a user being added to a channel or DM through an
// invite. Called inside the store transaction that performed the invite.
func (s *NotificationService) MemberAdded(inviter, target *models.User, ch *models.Channel) {
	text := fmt.Sprintf("%s added you to %s", inviter.Handle, ch.Name)
	s.notify(target, ch, text)
}

// MessagePosted handles a message being sent or edited. Every @handle in the
// text that belongs to a current member of the destination gets a tag
// notification; mentioned non-members are ignored. Called inside the store
// transaction that stored the message.
func (s *NotificationService) MessagePosted(d *models.Data, sender *models.User, ch *models.Channel, text string) {
	seen := make(map[string]bool)
	for _, tag := range tagPattern.FindAllString(text, -1) {
		handle := tag[1:]
		if seen[handle] {
			continue
		}
		seen[handle] = true

		target := d.UserByHandle(handle)
		if target == nil || !ch.IsMember(target.ID) {
			continue
		}
		preview := []rune(text)
		if len(preview) > tagPreviewLen {
			preview = preview[:tagPreviewLen]
		}
		msg := fmt.Sprintf("%s tagged you in %s: %s", sender.Handle, ch.Name, string(preview))
		s.notify(target, ch, msg)
	}
}

func (s *NotificationService) notify(target *models.User, ch *models.Channel, text string) {
	n := models.Notification{ChannelID: ch.ID, DMID: -1, Message: text}
	if ch.IsDM {
		n.ChannelID, n.DMID = -1, ch.ID
	}
	target.Notifications = append([]models.Notification{n}, target.Notifications...)
	if s.stream != nil {
		s.stream.Push(target.ID, n)
	}
}
