package dto

type SetNameRequest struct {
	NameFirst string `json:"name_first" binding:"required"`
	NameLast  string `json:"name_last" binding:"required"`
}

type SetEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type SetHandleRequest struct {
	Handle string `json:"handle_str" binding:"required"`
}

type RemoveUserRequest struct {
	UserID int `json:"u_id" binding:"required"`
}

type ChangePermissionRequest struct {
	UserID     int `json:"u_id" binding:"required"`
	Permission int `json:"permission_id" binding:"required"`
}
