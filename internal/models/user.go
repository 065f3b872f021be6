package models

// Permission levels. The first user ever registered becomes a global owner,
// everyone after that is a member.
const (
	PermOwner  = 1
	PermMember = 2
)

// RemovedUserName is written over the name fields of a removed user and over
// the text of every message they sent.
const RemovedUserName = "Removed user"

type User struct {
	ID            int            `json:"u_id"`
	Email         string         `json:"email"`
	Password      string         `json:"password"`
	NameFirst     string         `json:"name_first"`
	NameLast      string         `json:"name_last"`
	Handle        string         `json:"handle_str"`
	Permission    int            `json:"permission_id"`
	Sessions      []int          `json:"sessions_list"`
	Notifications []Notification `json:"notifications"`
}

// IsRemoved reports whether the user has been soft-deleted by an admin.
func (u *User) IsRemoved() bool {
	return u.NameFirst == RemovedUserName && u.NameLast == RemovedUserName
}

// HasSession reports whether sessionID is currently active for the user.
func (u *User) HasSession(sessionID int) bool {
	for _, s := range u.Sessions {
		if s == sessionID {
			return true
		}
	}
	return false
}

// NextSessionID returns the smallest positive session id not already active.
func (u *User) NextSessionID() int {
	id := 1
	for u.HasSession(id) {
		id++
	}
	return id
}

// DropSession removes sessionID from the active session list.
func (u *User) DropSession(sessionID int) {
	for i, s := range u.Sessions {
		if s == sessionID {
			u.Sessions = append(u.Sessions[:i], u.Sessions[i+1:]...)
			return
		}
	}
}
