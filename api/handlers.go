package api

import (
	"github.com/sanjulagihan/portfolio-backend/auth"
	"github.com/sanjulagihan/portfolio-backend/database"
	"github.com/sanjulagihan/portfolio-backend/services"
	"github.com/sanjulagihan/portfolio-backend/storage"
)

type routeHandlers struct {
	projectHandler projectHandler
	blogHandler    blogHandler
	cvHandler      cvHandler
	messageHandler messageHandler
	contactHandler contactHandler
	authHandler    authHandler
	uploadHandler  uploadHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, gate *auth.Gate, mailer *services.ResendClient, store *storage.Client) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo()),
		blogHandler:    newBlogHandler(database.BlogRepo()),
		cvHandler:      newCVHandler(database.CVRepo()),
		messageHandler: newMessageHandler(database.MessageRepo()),
		contactHandler: newContactHandler(database.MessageRepo(), mailer),
		authHandler:    newAuthHandler(gate),
		uploadHandler:  newUploadHandler(store, database.CVRepo()),
	}
}
