package main

import (
	"github.com/gin-gonic/gin"

	"github.com/averyld/teamtalk/internal/handlers"
	"github.com/averyld/teamtalk/internal/middleware"
)

func APIEndpoints(r *gin.Engine,
	authH *handlers.AuthHandler,
	channelH *handlers.ChannelHandler,
	dmH *handlers.DMHandler,
	messageH *handlers.MessageHandler,
	userH *handlers.UserHandler,
	adminH *handlers.AdminHandler,
	notificationH *handlers.NotificationHandler,
) {
	// Auth endpoints
	auth := r.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/logout", middleware.AuthMiddleware(), authH.Logout)
	}

	// Everything below requires a session token
	api := r.Group("/", middleware.AuthMiddleware())
	{
		api.POST("/channels/create", channelH.Create)
		api.GET("/channels/list", channelH.List)
		api.GET("/channels/listall", channelH.ListAll)
		api.POST("/channel/invite", channelH.Invite)
		api.GET("/channel/details", channelH.Details)
		api.GET("/channel/messages", channelH.Messages)
		api.POST("/channel/join", channelH.Join)
		api.POST("/channel/leave", channelH.Leave)
		api.POST("/channel/addowner", channelH.AddOwner)
		api.POST("/channel/removeowner", channelH.RemoveOwner)

		api.POST("/dm/create", dmH.Create)
		api.GET("/dm/list", dmH.List)
		api.POST("/dm/invite", dmH.Invite)
		api.GET("/dm/details", dmH.Details)
		api.GET("/dm/messages", dmH.Messages)
		api.POST("/dm/leave", dmH.Leave)
		api.DELETE("/dm/remove", dmH.Remove)

		api.POST("/message/send", messageH.Send)
		api.POST("/message/senddm", messageH.SendDM)
		api.PUT("/message/edit", messageH.Edit)
		api.DELETE("/message/remove", messageH.Remove)
		api.POST("/message/share", messageH.Share)

		api.GET("/user/profile", userH.Profile)
		api.PUT("/user/profile/setname", userH.SetName)
		api.PUT("/user/profile/setemail", userH.SetEmail)
		api.PUT("/user/profile/sethandle", userH.SetHandle)
		api.GET("/users/all", userH.All)

		api.DELETE("/admin/user/remove", adminH.RemoveUser)
		api.POST("/admin/userpermission/change", adminH.ChangePermission)

		api.GET("/search", messageH.Search)
		api.GET("/notifications/get", notificationH.Get)
		api.GET("/notifications/stream", notificationH.Stream)
	}

	r.DELETE("/reset", adminH.Reset)
}
