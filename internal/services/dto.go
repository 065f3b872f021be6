package services

import "github.com/averyld/teamtalk/internal/models"

// UserProfile is the public view of a user. It stays readable after the user
// has been removed.
type UserProfile struct {
	ID        int    `json:"u_id"`
	Email     string `json:"email"`
	NameFirst string `json:"name_first"`
	NameLast  string `json:"name_last"`
	Handle    string `json:"handle_str"`
}

type ChannelDetails struct {
	Name         string        `json:"name"`
	IsPublic     bool          `json:"is_public"`
	OwnerMembers []UserProfile `json:"owner_members"`
	AllMembers   []UserProfile `json:"all_members"`
}

type ChannelSummary struct {
	ID   int    `json:"channel_id"`
	Name string `json:"channel_name"`
}

type DMSummary struct {
	ID   int    `json:"dm_id"`
	Name string `json:"name"`
}

// MessagesPage is one page of up to 50 messages, most recent first. End is -1
// when the page reaches the oldest message.
type MessagesPage struct {
	Messages []models.Message `json:"messages"`
	Start    int              `json:"start"`
	End      int              `json:"end"`
}

func profileOf(u *models.User) UserProfile {
	return UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		NameFirst: u.NameFirst,
		NameLast:  u.NameLast,
		Handle:    u.Handle,
	}
}

func profilesOf(d *models.Data, ids []int) []UserProfile {
	profiles := make([]UserProfile, 0, len(ids))
	for _, id := range ids {
		if u := d.UserByID(id); u != nil {
			profiles = append(profiles, profileOf(u))
		}
	}
	return profiles
}
