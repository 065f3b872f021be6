package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/averyld/teamtalk/internal/models"
	"github.com/averyld/teamtalk/internal/store"
	"github.com/averyld/teamtalk/pkg/apperrors"
	"github.com/averyld/teamtalk/pkg/auth"
)

const (
	maxMessageLen    = 1000
	messagesPageSize = 50
)

// MessagingService owns message lifecycle inside channels and DMs.
type MessagingService struct {
	store *store.Store
	resolver
	notifications *NotificationService
	now           func() time.Time
}

func NewMessagingService(st *store.Store, tokens *auth.TokenManager, notifications *NotificationService) *MessagingService {
	return &MessagingService{
		store:         st,
		resolver:      resolver{tokens: tokens},
		notifications: notifications,
		now:           time.Now,
	}
}

// Send stores a new message in a channel or DM the caller belongs to.
// Message ids are the smallest positive integer unused across the whole
// workspace.
func (s *MessagingService) Send(token string, channelID int, text string) (int, error) {
	if utf8.RuneCountInString(text) > maxMessageLen {
		return 0, apperrors.ErrMessageTooLong
	}

	var messageID int
	err := s.store.Update(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		ch := d.ChannelByID(channelID)
		if ch == nil {
			return apperrors.ErrChannelUnknown
		}
		if !ch.IsMember(user.ID) {
			return apperrors.ErrNotMember
		}

		messageID = d.NextMessageID()
		ch.Messages = append(ch.Messages, models.Message{
			ID:          messageID,
			UserID:      user.ID,
			Text:        text,
			TimeCreated: s.now().Unix(),
		})
		s.notifications.MessagePosted(d, user, ch, text)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return messageID, nil
}

// Edit replaces a message's text. The caller must be the message's author, an
// owner of the containing channel or a global owner. Editing to the empty
// string deletes the message instead.
func (s *MessagingService) Edit(token string, messageID int, text string) error {
	if utf8.RuneCountInString(text) > maxMessageLen {
		return apperrors.ErrMessageTooLong
	}

	return s.store.Update(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		ch, idx := d.MessageByID(messageID)
		if ch == nil {
			return apperrors.ErrMessageUnknown
		}
		msg := &ch.Messages[idx]
		if msg.UserID != user.ID && !ch.IsOwner(user.ID) && user.Permission != models.PermOwner {
			return apperrors.ErrNotAuthor
		}

		if text == "" {
			ch.Messages = append(ch.Messages[:idx], ch.Messages[idx+1:]...)
			return nil
		}
		msg.Text = text
		s.notifications.MessagePosted(d, user, ch, text)
		return nil
	})
}

// Remove deletes a message. The caller must be both the message's author and
// an owner of the containing channel or DM.
func (s *MessagingService) Remove(token string, messageID int) error {
	return s.store.Update(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		ch, idx := d.MessageByID(messageID)
		if ch == nil {
			return apperrors.ErrMessageUnknown
		}
		if ch.Messages[idx].UserID != user.ID {
			return apperrors.ErrNotAuthor
		}
		if !ch.IsOwner(user.ID) {
			return apperrors.ErrNotChanOwner
		}

		ch.Messages = append(ch.Messages[:idx], ch.Messages[idx+1:]...)
		return nil
	})
}

// Share resends an existing message, with optional extra text, to another
// channel or DM the caller is a member of. Exactly one of channelID and dmID
// must be -1.
func (s *MessagingService) Share(token string, ogMessageID int, extra string, channelID, dmID int) (int, error) {
	if (channelID == -1) == (dmID == -1) {
		return 0, apperrors.InvalidInput("exactly one of channel id and dm id must be -1")
	}
	destID := channelID
	if channelID == -1 {
		destID = dmID
	}

	var text string
	err := s.store.View(func(d *models.Data) error {
		if _, err := s.resolve(d, token); err != nil {
			return err
		}
		ch, idx := d.MessageByID(ogMessageID)
		if ch == nil {
			return apperrors.ErrMessageUnknown
		}
		text = ch.Messages[idx].Text + ", " + extra
		return nil
	})
	if err != nil {
		return 0, err
	}
	return s.Send(token, destID, text)
}

// Messages returns one page of a channel's history, most recent first,
// starting at offset start from the newest message.
func (s *MessagingService) Messages(token string, channelID, start int) (MessagesPage, error) {
	page := MessagesPage{Messages: []models.Message{}, Start: start}
	err := s.store.View(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		ch := d.ChannelByID(channelID)
		if ch == nil {
			return apperrors.ErrChannelUnknown
		}
		if !ch.IsMember(user.ID) {
			return apperrors.ErrNotMember
		}

		total := len(ch.Messages)
		if start < 0 {
			return apperrors.ErrNegativeStart
		}
		if start > total {
			return apperrors.ErrStartTooLarge
		}

		end := start + messagesPageSize
		if end >= total {
			end = -1
		}
		page.End = end

		// Messages are stored oldest first; pages walk backwards from the
		// newest message.
		stop := start + messagesPageSize
		if stop > total {
			stop = total
		}
		for i := start; i < stop; i++ {
			page.Messages = append(page.Messages, ch.Messages[total-1-i])
		}
		return nil
	})
	if err != nil {
		return MessagesPage{}, err
	}
	return page, nil
}

// Search returns every message containing query from the channels and DMs the
// caller is a member of.
func (s *MessagingService) Search(token, query string) ([]models.Message, error) {
	if utf8.RuneCountInString(query) > maxMessageLen {
		return nil, apperrors.ErrQueryTooLong
	}

	result := []models.Message{}
	err := s.store.View(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		for _, ch := range d.Channels {
			if !ch.IsMember(user.ID) {
				continue
			}
			for _, msg := range ch.Messages {
				if strings.Contains(msg.Text, query) {
					result = append(result, msg)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
