package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes sets up the endpoints the site reads without a session.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.getPublishedProjects())
		r.Get("/blogs", handlers.blogHandler.getPublishedBlogs())
		r.Get("/blogs/{slug}", handlers.blogHandler.getBlogBySlug())
		r.Get("/cv", handlers.cvHandler.getActiveCV())

		r.Post("/api/contact", handlers.contactHandler.submitContact())
		r.Post("/admin/login", handlers.authHandler.login())
	})
}

// setupAdminRoutes sets up the dashboard endpoints behind the session check.
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project Handler endpoints
		r.Get("/admin/projects", handlers.projectHandler.getAllProjects())
		r.Get("/admin/projects/{projectID}", handlers.projectHandler.getProject())
		r.Post("/admin/projects", handlers.projectHandler.createProject())
		r.Put("/admin/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/admin/projects/{projectID}", handlers.projectHandler.deleteProject())

		// Blog Handler endpoints
		r.Get("/admin/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/admin/blogs/{blogID}", handlers.blogHandler.getBlog())
		r.Post("/admin/blogs", handlers.blogHandler.createBlog())
		r.Put("/admin/blogs/{blogID}", handlers.blogHandler.updateBlog())
		r.Delete("/admin/blogs/{blogID}", handlers.blogHandler.deleteBlog())

		// CV Handler endpoints
		r.Get("/admin/cv", handlers.cvHandler.getAllCVs())
		r.Post("/admin/cv", handlers.cvHandler.createCV())
		r.Put("/admin/cv/{cvID}", handlers.cvHandler.updateCV())
		r.Post("/admin/cv/{cvID}/activate", handlers.cvHandler.activateCV())
		r.Delete("/admin/cv/{cvID}", handlers.cvHandler.deleteCV())

		// Message Handler endpoints
		r.Get("/admin/messages", handlers.messageHandler.getAllMessages())
		r.Get("/admin/messages/{messageID}", handlers.messageHandler.getMessage())
		r.Put("/admin/messages/{messageID}/read", handlers.messageHandler.markRead())
		r.Put("/admin/messages/{messageID}/replied", handlers.messageHandler.markReplied())
		r.Delete("/admin/messages/{messageID}", handlers.messageHandler.deleteMessage())

		// Storage endpoints
		r.Post("/admin/projects/image", handlers.uploadHandler.uploadProjectImage())
		r.Post("/admin/blogs/image", handlers.uploadHandler.uploadBlogImage())
		r.Post("/admin/cv/file", handlers.uploadHandler.uploadCVFile())
		r.Get("/admin/storage/{bucket}", handlers.uploadHandler.listObjects())
		r.Delete("/admin/storage/{bucket}/*", handlers.uploadHandler.deleteObject())
	})
}
