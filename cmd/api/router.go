package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/shared/middleware"
	"labsite-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupSearchRoutes(v1, c)
		setupPersonRoutes(v1, c)
		setupProjectRoutes(v1, c)
		setupPaperRoutes(v1, c)
		setupBlogRoutes(v1, c)
		setupEventRoutes(v1, c)
		setupCollaboratorRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// adminGuard protects every mutating route: valid Bearer token plus
// the admin role claim.
func adminGuard(c *container.Container) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
	}
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
	}
}

// ========================================
// SEARCH ROUTES
// ========================================
func setupSearchRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/search", c.SearchHandler.Search)
}

// ========================================
// PEOPLE ROUTES
// ========================================
func setupPersonRoutes(v1 *gin.RouterGroup, c *container.Container) {
	people := v1.Group("/people")
	{
		people.GET("", c.PersonHandler.ListPeople)
		people.GET("/categories", c.PersonHandler.Categories)
		people.GET("/:slug", c.PersonHandler.GetPersonBySlug)

		guarded := people.Group("", adminGuard(c)...)
		{
			guarded.POST("", c.PersonHandler.CreatePerson)
			guarded.PUT("/:slug", c.PersonHandler.UpdatePerson)
			guarded.DELETE("/:slug", c.PersonHandler.DeletePerson)
		}
	}
}

// ========================================
// PROJECT ROUTES
// ========================================
func setupProjectRoutes(v1 *gin.RouterGroup, c *container.Container) {
	projects := v1.Group("/projects")
	{
		projects.GET("", c.ProjectHandler.ListProjects)
		projects.GET("/categories", c.ProjectHandler.Categories)
		projects.GET("/:id", c.ProjectHandler.GetProjectByID)

		guarded := projects.Group("", adminGuard(c)...)
		{
			guarded.POST("", c.ProjectHandler.CreateProject)
			guarded.PUT("/:id", c.ProjectHandler.UpdateProject)
			guarded.DELETE("/:id", c.ProjectHandler.DeleteProject)
		}
	}
}

// ========================================
// PAPER ROUTES
// ========================================
// Papers have no synthetic id; mutations address a publication by its
// (title, year) pair passed as query parameters.
func setupPaperRoutes(v1 *gin.RouterGroup, c *container.Container) {
	papers := v1.Group("/papers")
	{
		papers.GET("", c.PaperHandler.ListPapers)
		papers.GET("/find", c.PaperHandler.GetPaper)
		papers.GET("/years", c.PaperHandler.Years)
		papers.GET("/venues", c.PaperHandler.Venues)
		papers.GET("/authors", c.PaperHandler.Authors)

		guarded := papers.Group("", adminGuard(c)...)
		{
			guarded.POST("", c.PaperHandler.CreatePaper)
			guarded.PUT("", c.PaperHandler.UpdatePaper)
			guarded.DELETE("", c.PaperHandler.DeletePaper)
		}
	}
}

// ========================================
// BLOG ROUTES
// ========================================
func setupBlogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", c.BlogHandler.ListBlogs)
		blogs.GET("/categories", c.BlogHandler.Categories)
		blogs.GET("/:slug", c.BlogHandler.GetBlogBySlug)

		guarded := blogs.Group("", adminGuard(c)...)
		{
			guarded.POST("", c.BlogHandler.CreateBlog)
			guarded.PUT("/:id", c.BlogHandler.UpdateBlog)
			guarded.DELETE("/:id", c.BlogHandler.DeleteBlog)
		}
	}
}

// ========================================
// EVENT ROUTES
// ========================================
func setupEventRoutes(v1 *gin.RouterGroup, c *container.Container) {
	events := v1.Group("/events")
	{
		events.GET("", c.EventHandler.ListEvents)
		events.GET("/:slug", c.EventHandler.GetEventBySlug)

		guarded := events.Group("", adminGuard(c)...)
		{
			guarded.POST("", c.EventHandler.CreateEvent)
			guarded.PUT("/:slug", c.EventHandler.UpdateEvent)
			guarded.DELETE("/:slug", c.EventHandler.DeleteEvent)
			guarded.POST("/:slug/images", c.EventHandler.UploadImage)
		}
	}
}

// ========================================
// COLLABORATOR ROUTES
// ========================================
func setupCollaboratorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	collaborators := v1.Group("/collaborators")
	{
		collaborators.GET("", c.CollaboratorHandler.ListCollaborators)
		collaborators.GET("/categories", c.CollaboratorHandler.Categories)
		collaborators.GET("/:id", c.CollaboratorHandler.GetCollaboratorByID)

		guarded := collaborators.Group("", adminGuard(c)...)
		{
			guarded.POST("", c.CollaboratorHandler.CreateCollaborator)
			guarded.PUT("/:id", c.CollaboratorHandler.UpdateCollaborator)
			guarded.DELETE("/:id", c.CollaboratorHandler.DeleteCollaborator)
		}
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin", adminGuard(c)...)
	{
		admin.POST("/reload", c.ReloadHandler.Reload)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":      "healthy",
			"service":     c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"dataDir":     c.Store.Dir(),
		}

		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			health["cache"] = "unavailable"
		} else {
			health["cache"] = "connected"
		}

		ctx.JSON(http.StatusOK, health)
	}
}
