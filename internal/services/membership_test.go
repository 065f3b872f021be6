package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averyld/teamtalk/pkg/apperrors"
)

func TestMembershipService_Create(t *testing.T) {
	t.Run("happy path - creator is sole member and owner", func(t *testing.T) {
		e := newEnv(t)
		token, userID := e.register(t, "aa@mail.com", "Alice", "Nguyen")

		channelID, err := e.membership.Create(token, "general", true, false)
		require.NoError(t, err)
		assert.Equal(t, 1, channelID)

		details, err := e.membership.Details(token, channelID)
		require.NoError(t, err)
		assert.Equal(t, "general", details.Name)
		assert.True(t, details.IsPublic)
		require.Len(t, details.OwnerMembers, 1)
		require.Len(t, details.AllMembers, 1)
		assert.Equal(t, userID, details.OwnerMembers[0].ID)
		assert.Equal(t, userID, details.AllMembers[0].ID)
	})

	t.Run("channel ids are dense", func(t *testing.T) {
		e := newEnv(t)
		token, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")

		first, err := e.membership.Create(token, "one", true, false)
		require.NoError(t, err)
		second, err := e.membership.Create(token, "two", true, false)
		require.NoError(t, err)
		assert.Equal(t, 1, first)
		assert.Equal(t, 2, second)
	})

	t.Run("sad path - name length", func(t *testing.T) {
		e := newEnv(t)
		token, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")

		_, err := e.membership.Create(token, "", true, false)
		assert.ErrorIs(t, err, apperrors.ErrInvalidChanName)

		_, err = e.membership.Create(token, "123456789012345678901", true, false)
		assert.ErrorIs(t, err, apperrors.ErrInvalidChanName)
	})

	t.Run("name length counts characters, not bytes", func(t *testing.T) {
		e := newEnv(t)
		token, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")

		_, err := e.membership.Create(token, strings.Repeat("ß", 20), true, false)
		assert.NoError(t, err)

		_, err = e.membership.Create(token, strings.Repeat("ß", 21), true, false)
		assert.ErrorIs(t, err, apperrors.ErrInvalidChanName)
	})

	t.Run("sad path - bad token", func(t *testing.T) {
		e := newEnv(t)

		_, err := e.membership.Create("garbage", "general", true, false)
		assert.True(t, apperrors.IsAccessDenied(err))
	})
}

func TestMembershipService_Join(t *testing.T) {
	t.Run("happy path - join a public channel", func(t *testing.T) {
		e := newEnv(t)
		aTok, aID := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, bID := e.register(t, "bb@mail.com", "Bob", "Ma")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)
		require.NoError(t, e.membership.Join(bTok, channelID))

		details, err := e.membership.Details(aTok, channelID)
		require.NoError(t, err)

		memberIDs := []int{}
		for _, m := range details.AllMembers {
			memberIDs = append(memberIDs, m.ID)
		}
		assert.ElementsMatch(t, []int{aID, bID}, memberIDs)
		require.Len(t, details.OwnerMembers, 1)
		assert.Equal(t, aID, details.OwnerMembers[0].ID)
	})

	t.Run("sad path - private channel needs global owner", func(t *testing.T) {
		e := newEnv(t)
		ownerTok, _ := e.register(t, "owner@mail.com", "Olive", "Owner")
		bTok, _ := e.register(t, "bb@mail.com", "Bob", "Ma")
		cTok, _ := e.register(t, "cc@mail.com", "Cam", "Ito")

		channelID, err := e.membership.Create(bTok, "secret", false, false)
		require.NoError(t, err)

		err = e.membership.Join(cTok, channelID)
		assert.ErrorIs(t, err, apperrors.ErrPrivateChannel)

		// The first-registered user holds global owner permission.
		assert.NoError(t, e.membership.Join(ownerTok, channelID))
	})

	t.Run("sad path - joining twice", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, _ := e.register(t, "bb@mail.com", "Bob", "Ma")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)
		require.NoError(t, e.membership.Join(bTok, channelID))

		err = e.membership.Join(bTok, channelID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
	})

	t.Run("sad path - unknown channel", func(t *testing.T) {
		e := newEnv(t)
		tok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")

		err := e.membership.Join(tok, 99)
		assert.ErrorIs(t, err, apperrors.ErrChannelUnknown)
	})
}

func TestMembershipService_Invite(t *testing.T) {
	t.Run("happy path - target becomes member", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, bID := e.register(t, "bb@mail.com", "Bob", "Ma")

		channelID, err := e.membership.Create(aTok, "Test", false, false)
		require.NoError(t, err)
		require.NoError(t, e.membership.Invite(aTok, channelID, bID))

		details, err := e.membership.Details(bTok, channelID)
		require.NoError(t, err)
		assert.Len(t, details.AllMembers, 2)
		assert.Len(t, details.OwnerMembers, 1)
	})

	t.Run("sad path - inviter must be a member", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, _ := e.register(t, "bb@mail.com", "Bob", "Ma")
		_, cID := e.register(t, "cc@mail.com", "Cam", "Ito")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)

		err = e.membership.Invite(bTok, channelID, cID)
		assert.ErrorIs(t, err, apperrors.ErrNotMember)
	})

	t.Run("sad path - target already a member", func(t *testing.T) {
		e := newEnv(t)
		aTok, aID := e.register(t, "aa@mail.com", "Alice", "Nguyen")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)

		err = e.membership.Invite(aTok, channelID, aID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
	})

	t.Run("sad path - unknown channel and unknown user", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)

		assert.ErrorIs(t, e.membership.Invite(aTok, 99, 1), apperrors.ErrChannelUnknown)
		assert.ErrorIs(t, e.membership.Invite(aTok, channelID, 99), apperrors.ErrUserUnknown)
	})
}

func TestMembershipService_Leave(t *testing.T) {
	t.Run("happy path - leaving drops both memberships, messages persist", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, bID := e.register(t, "bb@mail.com", "Bob", "Ma")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)
		require.NoError(t, e.membership.Join(bTok, channelID))
		require.NoError(t, e.membership.AddOwner(aTok, channelID, bID))

		_, err = e.messaging.Send(bTok, channelID, "goodbye")
		require.NoError(t, err)

		require.NoError(t, e.membership.Leave(bTok, channelID))

		details, err := e.membership.Details(aTok, channelID)
		require.NoError(t, err)
		assert.Len(t, details.AllMembers, 1)
		assert.Len(t, details.OwnerMembers, 1)

		page, err := e.messaging.Messages(aTok, channelID, 0)
		require.NoError(t, err)
		require.Len(t, page.Messages, 1)
		assert.Equal(t, "goodbye", page.Messages[0].Text)
	})

	t.Run("sole owner may leave, channel survives ownerless", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, _ := e.register(t, "bb@mail.com", "Bob", "Ma")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)
		require.NoError(t, e.membership.Join(bTok, channelID))
		require.NoError(t, e.membership.Leave(aTok, channelID))

		details, err := e.membership.Details(bTok, channelID)
		require.NoError(t, err)
		assert.Empty(t, details.OwnerMembers)
		assert.Len(t, details.AllMembers, 1)
	})

	t.Run("sad path - not a member", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, _ := e.register(t, "bb@mail.com", "Bob", "Ma")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)

		assert.ErrorIs(t, e.membership.Leave(bTok, channelID), apperrors.ErrNotMember)
	})
}

func TestMembershipService_Owners(t *testing.T) {
	t.Run("happy path - add then remove an owner", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, bID := e.register(t, "bb@mail.com", "Bob", "Ma")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)
		require.NoError(t, e.membership.Join(bTok, channelID))
		require.NoError(t, e.membership.AddOwner(aTok, channelID, bID))

		details, err := e.membership.Details(aTok, channelID)
		require.NoError(t, err)
		assert.Len(t, details.OwnerMembers, 2)

		require.NoError(t, e.membership.RemoveOwner(aTok, channelID, bID))
		details, err = e.membership.Details(aTok, channelID)
		require.NoError(t, err)
		assert.Len(t, details.OwnerMembers, 1)
		// Demotion keeps the membership.
		assert.Len(t, details.AllMembers, 2)
	})

	t.Run("owners stay a subset of members", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		_, bID := e.register(t, "bb@mail.com", "Bob", "Ma")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)

		// Promoting a non-member makes them a member too.
		require.NoError(t, e.membership.AddOwner(aTok, channelID, bID))

		details, err := e.membership.Details(aTok, channelID)
		require.NoError(t, err)
		for _, owner := range details.OwnerMembers {
			found := false
			for _, member := range details.AllMembers {
				if member.ID == owner.ID {
					found = true
				}
			}
			assert.True(t, found, "owner %d missing from members", owner.ID)
		}
	})

	t.Run("sad path - cannot demote the sole owner", func(t *testing.T) {
		e := newEnv(t)
		aTok, aID := e.register(t, "aa@mail.com", "Alice", "Nguyen")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)

		err = e.membership.RemoveOwner(aTok, channelID, aID)
		assert.ErrorIs(t, err, apperrors.ErrSoleOwner)
	})

	t.Run("sad path - promoting an existing owner", func(t *testing.T) {
		e := newEnv(t)
		aTok, aID := e.register(t, "aa@mail.com", "Alice", "Nguyen")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)

		err = e.membership.AddOwner(aTok, channelID, aID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyOwner)
	})

	t.Run("sad path - plain member cannot manage owners", func(t *testing.T) {
		e := newEnv(t)
		// First registration takes the global owner slot; use later users.
		e.register(t, "root@mail.com", "Root", "User")
		aTok, aID := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, bID := e.register(t, "bb@mail.com", "Bob", "Ma")
		cTok, cID := e.register(t, "cc@mail.com", "Cam", "Ito")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)
		require.NoError(t, e.membership.Join(bTok, channelID))
		require.NoError(t, e.membership.Join(cTok, channelID))

		assert.ErrorIs(t, e.membership.AddOwner(bTok, channelID, cID), apperrors.ErrNotChanOwner)

		require.NoError(t, e.membership.AddOwner(aTok, channelID, bID))
		assert.ErrorIs(t, e.membership.RemoveOwner(cTok, channelID, aID), apperrors.ErrNotChanOwner)
	})

	t.Run("global owner can manage owners without channel ownership", func(t *testing.T) {
		e := newEnv(t)
		rootTok, _ := e.register(t, "root@mail.com", "Root", "User")
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, bID := e.register(t, "bb@mail.com", "Bob", "Ma")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)
		require.NoError(t, e.membership.Join(bTok, channelID))

		assert.NoError(t, e.membership.AddOwner(rootTok, channelID, bID))
	})
}

func TestMembershipService_DMs(t *testing.T) {
	t.Run("happy path - dm name is the sorted handles", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Zoe", "Park")       // zoepark
		_, bID := e.register(t, "bb@mail.com", "Alice", "Nguyen")    // alicenguyen
		_, cID := e.register(t, "cc@mail.com", "Bob", "Ma")          // bobma
		dTok, _ := e.register(t, "dd@mail.com", "Dana", "Uninvited") // not in the dm

		dmID, name, err := e.membership.CreateDM(aTok, []int{bID, cID})
		require.NoError(t, err)
		assert.Equal(t, "alicenguyen,bobma,zoepark", name)

		dms, err := e.membership.ListDMs(aTok)
		require.NoError(t, err)
		require.Len(t, dms, 1)
		assert.Equal(t, dmID, dms[0].ID)
		assert.Equal(t, name, dms[0].Name)

		uninvolved, err := e.membership.ListDMs(dTok)
		require.NoError(t, err)
		assert.Empty(t, uninvolved)
	})

	t.Run("dms never show up in channel listings", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		_, bID := e.register(t, "bb@mail.com", "Bob", "Ma")

		_, _, err := e.membership.CreateDM(aTok, []int{bID})
		require.NoError(t, err)

		channels, err := e.membership.ListAll(aTok)
		require.NoError(t, err)
		assert.Empty(t, channels)
	})

	t.Run("happy path - creator removes the dm", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, bID := e.register(t, "bb@mail.com", "Bob", "Ma")

		dmID, _, err := e.membership.CreateDM(aTok, []int{bID})
		require.NoError(t, err)

		assert.ErrorIs(t, e.membership.RemoveDM(bTok, dmID), apperrors.ErrNotDMCreator)
		require.NoError(t, e.membership.RemoveDM(aTok, dmID))

		dms, err := e.membership.ListDMs(aTok)
		require.NoError(t, err)
		assert.Empty(t, dms)
	})

	t.Run("removed dm ids are reclaimed", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		_, bID := e.register(t, "bb@mail.com", "Bob", "Ma")

		dmID, _, err := e.membership.CreateDM(aTok, []int{bID})
		require.NoError(t, err)
		require.NoError(t, e.membership.RemoveDM(aTok, dmID))

		again, _, err := e.membership.CreateDM(aTok, []int{bID})
		require.NoError(t, err)
		assert.Equal(t, dmID, again)
	})

	t.Run("sad path - unknown invitee", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")

		_, _, err := e.membership.CreateDM(aTok, []int{99})
		assert.ErrorIs(t, err, apperrors.ErrUserUnknown)
	})

	t.Run("sad path - remove on a channel id", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")

		channelID, err := e.membership.Create(aTok, "Test", true, false)
		require.NoError(t, err)

		assert.ErrorIs(t, e.membership.RemoveDM(aTok, channelID), apperrors.ErrChannelUnknown)
	})

	t.Run("leaving a dm", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, bID := e.register(t, "bb@mail.com", "Bob", "Ma")

		dmID, _, err := e.membership.CreateDM(aTok, []int{bID})
		require.NoError(t, err)

		require.NoError(t, e.membership.Leave(bTok, dmID))
		dms, err := e.membership.ListDMs(bTok)
		require.NoError(t, err)
		assert.Empty(t, dms)
	})
}

func TestMembershipService_Listing(t *testing.T) {
	t.Run("list shows joined channels, listall shows every channel", func(t *testing.T) {
		e := newEnv(t)
		aTok, _ := e.register(t, "aa@mail.com", "Alice", "Nguyen")
		bTok, _ := e.register(t, "bb@mail.com", "Bob", "Ma")

		mine, err := e.membership.Create(aTok, "mine", true, false)
		require.NoError(t, err)
		other, err := e.membership.Create(bTok, "other", false, false)
		require.NoError(t, err)

		joined, err := e.membership.List(aTok)
		require.NoError(t, err)
		require.Len(t, joined, 1)
		assert.Equal(t, mine, joined[0].ID)

		all, err := e.membership.ListAll(aTok)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, other, all[1].ID)
	})
}
