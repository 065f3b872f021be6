package dto

type SendMessageRequest struct {
	ChannelID int    `json:"channel_id" binding:"required"`
	Message   string `json:"message"`
}

type SendDMMessageRequest struct {
	DMID    int    `json:"dm_id" binding:"required"`
	Message string `json:"message"`
}

type EditMessageRequest struct {
	MessageID int    `json:"message_id" binding:"required"`
	Message   string `json:"message"`
}

type RemoveMessageRequest struct {
	MessageID int `json:"message_id" binding:"required"`
}

type ShareMessageRequest struct {
	OgMessageID int    `json:"og_message_id" binding:"required"`
	Message     string `json:"message"`
	ChannelID   int    `json:"channel_id" binding:"required"`
	DMID        int    `json:"dm_id" binding:"required"`
}
