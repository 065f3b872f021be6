package services

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/averyld/teamtalk/internal/models"
	"github.com/averyld/teamtalk/internal/store"
	"github.com/averyld/teamtalk/pkg/apperrors"
	"github.com/averyld/teamtalk/pkg/auth"
)

const maxChannelNameLen = 20

// MembershipService owns channel and DM lifecycle and the membership rules
// guarding them: who may see, join, invite to and administer each channel.
type MembershipService struct {
	store *store.Store
	resolver
	notifications *NotificationService
}

func NewMembershipService(st *store.Store, tokens *auth.TokenManager, notifications *NotificationService) *MembershipService {
	return &MembershipService{store: st, resolver: resolver{tokens: tokens}, notifications: notifications}
}

// Create makes a new channel with the caller as its sole member and owner.
func (s *MembershipService) Create(token, name string, isPublic, isDM bool) (int, error) {
	if !isDM && (utf8.RuneCountInString(name) < 1 || utf8.RuneCountInString(name) > maxChannelNameLen) {
		return 0, apperrors.ErrInvalidChanName
	}
	if isDM && name == "" {
		return 0, apperrors.InvalidInput("dm name cannot be empty")
	}

	var channelID int
	err := s.store.Update(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		ch := &models.Channel{
			ID:           d.NextChannelID(),
			Name:         name,
			IsPublic:     isPublic,
			IsDM:         isDM,
			OwnerMembers: []int{user.ID},
			AllMembers:   []int{user.ID},
			Messages:     []models.Message{},
		}
		d.Channels = append(d.Channels, ch)
		channelID = ch.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return channelID, nil
}

// Invite adds the target user to a channel the caller belongs to and
// notifies them.
func (s *MembershipService) Invite(token string, channelID, targetID int) error {
	return s.store.Update(func(d *models.Data) error {
		caller, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		target := d.UserByID(targetID)
		if target == nil {
			return apperrors.ErrUserUnknown
		}
		if target.IsRemoved() {
			return apperrors.ErrUserRemoved
		}
		ch := d.ChannelByID(channelID)
		if ch == nil {
			return apperrors.ErrChannelUnknown
		}
		if !ch.IsMember(caller.ID) {
			return apperrors.ErrNotMember
		}
		if ch.IsMember(target.ID) {
			return apperrors.ErrAlreadyMember
		}

		ch.AllMembers = append(ch.AllMembers, target.ID)
		s.notifications.MemberAdded(caller, target, ch)
		return nil
	})
}

// Join adds the caller to a public channel, or to a private one if they are
// a global owner.
func (s *MembershipService) Join(token string, channelID int) error {
	return s.store.Update(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		ch := d.ChannelByID(channelID)
		if ch == nil {
			return apperrors.ErrChannelUnknown
		}
		if ch.IsMember(user.ID) {
			return apperrors.ErrAlreadyMember
		}
		if !ch.IsPublic && user.Permission != models.PermOwner {
			return apperrors.ErrPrivateChannel
		}

		ch.AllMembers = append(ch.AllMembers, user.ID)
		return nil
	})
}

// Leave removes the caller from both member lists. The channel and its
// messages persist, even if nobody is left.
func (s *MembershipService) Leave(token string, channelID int) error {
	return s.store.Update(func(d *models.Data) error {
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

		ch.RemoveMember(user.ID)
		return nil
	})
}

// AddOwner promotes the target to channel owner. The caller must be a channel
// owner or a global owner. A target who was not yet a member becomes one, so
// owners are always a subset of members.
func (s *MembershipService) AddOwner(token string, channelID, targetID int) error {
	return s.store.Update(func(d *models.Data) error {
		caller, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		target := d.UserByID(targetID)
		if target == nil {
			return apperrors.ErrUserUnknown
		}
		ch := d.ChannelByID(channelID)
		if ch == nil {
			return apperrors.ErrChannelUnknown
		}
		if ch.IsOwner(target.ID) {
			return apperrors.ErrAlreadyOwner
		}
		if !ch.IsOwner(caller.ID) && caller.Permission != models.PermOwner {
			return apperrors.ErrNotChanOwner
		}

		if !ch.IsMember(target.ID) {
			ch.AllMembers = append(ch.AllMembers, target.ID)
		}
		ch.OwnerMembers = append(ch.OwnerMembers, target.ID)
		return nil
	})
}

// RemoveOwner demotes the target from channel owner. The target stays a
// member, and the channel's last owner cannot be demoted.
func (s *MembershipService) RemoveOwner(token string, channelID, targetID int) error {
	return s.store.Update(func(d *models.Data) error {
		caller, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		ch := d.ChannelByID(channelID)
		if ch == nil {
			return apperrors.ErrChannelUnknown
		}
		if !ch.IsOwner(targetID) {
			return apperrors.ErrNotOwner
		}
		if len(ch.OwnerMembers) == 1 {
			return apperrors.ErrSoleOwner
		}
		if !ch.IsOwner(caller.ID) && caller.Permission != models.PermOwner {
			return apperrors.ErrNotChanOwner
		}

		ch.RemoveOwner(targetID)
		return nil
	})
}

// Details returns a channel's name, visibility and member profiles to one of
// its members.
func (s *MembershipService) Details(token string, channelID int) (ChannelDetails, error) {
	var details ChannelDetails
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

		details = ChannelDetails{
			Name:         ch.Name,
			IsPublic:     ch.IsPublic,
			OwnerMembers: profilesOf(d, ch.OwnerMembers),
			AllMembers:   profilesOf(d, ch.AllMembers),
		}
		return nil
	})
	if err != nil {
		return ChannelDetails{}, err
	}
	return details, nil
}

// List returns the channels the caller is a member of.
func (s *MembershipService) List(token string) ([]ChannelSummary, error) {
	return s.listChannels(token, true)
}

// ListAll returns every channel, joined or not.
func (s *MembershipService) ListAll(token string) ([]ChannelSummary, error) {
	return s.listChannels(token, false)
}

func (s *MembershipService) listChannels(token string, memberOnly bool) ([]ChannelSummary, error) {
	result := []ChannelSummary{}
	err := s.store.View(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		for _, ch := range d.Channels {
			if ch.IsDM {
				continue
			}
			if memberOnly && !ch.IsMember(user.ID) {
				continue
			}
			result = append(result, ChannelSummary{ID: ch.ID, Name: ch.Name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateDM makes a DM between the caller and targetIDs. The DM's name is the
// comma-joined, lexicographically sorted handles of everyone involved; the
// targets are added through the same invite path as any other member, so each
// receives an "added you" notification. These invites are not atomic with the
// creation: a failing target id leaves the DM created with the earlier
// targets already added.
func (s *MembershipService) CreateDM(token string, targetIDs []int) (int, string, error) {
	var name string
	err := s.store.View(func(d *models.Data) error {
		caller, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		handles := []string{caller.Handle}
		for _, id := range targetIDs {
			target := d.UserByID(id)
			if target == nil {
				return apperrors.ErrUserUnknown
			}
			if target.IsRemoved() {
				return apperrors.ErrUserRemoved
			}
			handles = append(handles, target.Handle)
		}
		sort.Strings(handles)
		name = strings.Join(handles, ",")
		return nil
	})
	if err != nil {
		return 0, "", err
	}

	dmID, err := s.Create(token, name, false, true)
	if err != nil {
		return 0, "", err
	}
	for _, id := range targetIDs {
		if err := s.Invite(token, dmID, id); err != nil {
			return 0, "", err
		}
	}
	return dmID, name, nil
}

// ListDMs returns the DMs the caller is a member of.
func (s *MembershipService) ListDMs(token string) ([]DMSummary, error) {
	result := []DMSummary{}
	err := s.store.View(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		for _, ch := range d.Channels {
			if ch.IsDM && ch.IsMember(user.ID) {
				result = append(result, DMSummary{ID: ch.ID, Name: ch.Name})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveDM hard-deletes a DM along with its messages. Only the DM's creator
// may do this.
func (s *MembershipService) RemoveDM(token string, dmID int) error {
	return s.store.Update(func(d *models.Data) error {
		user, err := s.resolve(d, token)
		if err != nil {
			return err
		}
		ch := d.ChannelByID(dmID)
		if ch == nil || !ch.IsDM {
			return apperrors.ErrChannelUnknown
		}
		if !ch.IsOwner(user.ID) {
			return apperrors.ErrNotDMCreator
		}

		for i, existing := range d.Channels {
			if existing.ID == dmID {
				d.Channels = append(d.Channels[:i], d.Channels[i+1:]...)
				break
			}
		}
		return nil
	})
}
