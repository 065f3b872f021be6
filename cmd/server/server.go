package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/averyld/teamtalk/internal/handlers"
	"github.com/averyld/teamtalk/internal/services"
	"github.com/averyld/teamtalk/internal/store"
	"github.com/averyld/teamtalk/internal/websocket"
	"github.com/averyld/teamtalk/pkg/auth"
)

type Server struct {
	Router *gin.Engine
	Store  *store.Store
	Hub    *websocket.Hub
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "data.json"
	}
	st, err := store.Open(dataFile)
	if err != nil {
		log.Fatalf("Store open failed: %v", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	tokens := auth.NewTokenManager(secret)

	hub := websocket.NewHub()
	go hub.Run()

	notifications := services.NewNotificationService(st, tokens, hub)
	authSvc := services.NewAuthService(st, tokens)
	membership := services.NewMembershipService(st, tokens, notifications)
	messaging := services.NewMessagingService(st, tokens, notifications)
	users := services.NewUserService(st, tokens)
	admin := services.NewAdminService(st, tokens)

	router := gin.Default()
	APIEndpoints(router,
		handlers.NewAuthHandler(authSvc),
		handlers.NewChannelHandler(membership, messaging),
		handlers.NewDMHandler(membership, messaging),
		handlers.NewMessageHandler(messaging),
		handlers.NewUserHandler(users),
		handlers.NewAdminHandler(admin, st),
		handlers.NewNotificationHandler(notifications, hub),
	)

	return &Server{Router: router, Store: st, Hub: hub}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
