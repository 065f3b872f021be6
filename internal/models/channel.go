package models

// Channel is either a named channel or a DM, discriminated by IsDM. DMs have
// no meaningful visibility flag and their name is the comma-joined sorted
// handles of their members at creation time.
type Channel struct {
	ID           int       `json:"channel_id"`
	Name         string    `json:"channel_name"`
	IsPublic     bool      `json:"is_public"`
	IsDM         bool      `json:"is_dm"`
	OwnerMembers []int     `json:"owner_members"`
	AllMembers   []int     `json:"all_members"`
	Messages     []Message `json:"messages"`
}

func (c *Channel) IsMember(userID int) bool {
	for _, id := range c.AllMembers {
		if id == userID {
			return true
		}
	}
	return false
}

func (c *Channel) IsOwner(userID int) bool {
	for _, id := range c.OwnerMembers {
		if id == userID {
			return true
		}
	}
	return false
}

// RemoveMember deletes userID from both member lists.
func (c *Channel) RemoveMember(userID int) {
	c.AllMembers = removeID(c.AllMembers, userID)
	c.OwnerMembers = removeID(c.OwnerMembers, userID)
}

// RemoveOwner deletes userID from the owner list only.
func (c *Channel) RemoveOwner(userID int) {
	c.OwnerMembers = removeID(c.OwnerMembers, userID)
}

func removeID(ids []int, target int) []int {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
