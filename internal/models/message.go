package models

// Message ids are unique across all channels and DMs.
type Message struct {
	ID          int    `json:"message_id"`
	UserID      int    `json:"u_id"`
	Text        string `json:"message"`
	TimeCreated int64  `json:"time_created"`
}

// Notification targets exactly one of a channel or a DM; the other id is -1.
type Notification struct {
	ChannelID int    `json:"channel_id"`
	DMID      int    `json:"dm_id"`
	Message   string `json:"notification_message"`
}
