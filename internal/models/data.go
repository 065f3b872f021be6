package models

// Data is the whole-system state, loaded and saved as one unit.
type Data struct {
	Users    []*User    `json:"users"`
	Channels []*Channel `json:"channels"`
}

func NewData() *Data {
	return &Data{Users: []*User{}, Channels: []*Channel{}}
}

func (d *Data) UserByID(id int) *User {
	for _, u := range d.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (d *Data) UserByEmail(email string) *User {
	for _, u := range d.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (d *Data) UserByHandle(handle string) *User {
	for _, u := range d.Users {
		if u.Handle == handle {
			return u
		}
	}
	return nil
}

func (d *Data) ChannelByID(id int) *Channel {
	for _, c := range d.Channels {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// MessageByID finds a message anywhere in the store and the channel holding it.
func (d *Data) MessageByID(id int) (*Channel, int) {
	for _, c := range d.Channels {
		for i := range c.Messages {
			if c.Messages[i].ID == id {
				return c, i
			}
		}
	}
	return nil, -1
}

// NextUserID returns the smallest positive user id not currently in use.
func (d *Data) NextUserID() int {
	id := 1
	for d.UserByID(id) != nil {
		id++
	}
	return id
}

// NextChannelID returns the smallest positive channel id not currently in use.
// Ids of removed DMs are reclaimed.
func (d *Data) NextChannelID() int {
	id := 1
	for d.ChannelByID(id) != nil {
		id++
	}
	return id
}

// NextMessageID returns the smallest positive message id not used by any
// message in any channel or DM. Ids of removed messages are reclaimed.
func (d *Data) NextMessageID() int {
	used := make(map[int]bool)
	for _, c := range d.Channels {
		for i := range c.Messages {
			used[c.Messages[i].ID] = true
		}
	}
	id := 1
	for used[id] {
		id++
	}
	return id
}

// GlobalOwnerCount reports how many users hold global owner permission.
func (d *Data) GlobalOwnerCount() int {
	count := 0
	for _, u := range d.Users {
		if u.Permission == PermOwner {
			count++
		}
	}
	return count
}
