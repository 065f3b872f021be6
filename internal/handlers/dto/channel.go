package dto

type CreateChannelRequest struct {
	Name     string `json:"name" binding:"required"`
	IsPublic bool   `json:"is_public"`
}

type ChannelRequest struct {
	ChannelID int `json:"channel_id" binding:"required"`
}

type ChannelMemberRequest struct {
	ChannelID int `json:"channel_id" binding:"required"`
	UserID    int `json:"u_id" binding:"required"`
}

type CreateDMRequest struct {
	UserIDs []int `json:"u_ids" binding:"required"`
}

type DMRequest struct {
	DMID int `json:"dm_id" binding:"required"`
}

type DMMemberRequest struct {
	DMID   int `json:"dm_id" binding:"required"`
	UserID int `json:"u_id" binding:"required"`
}
