package container

import (
	"context"
	"fmt"
	"log"

	"labsite-backend/internal/admin"
	"labsite-backend/internal/config"
	infraCache "labsite-backend/internal/infrastructure/cache"
	"labsite-backend/internal/infrastructure/jsondb"
	"labsite-backend/internal/infrastructure/storage"
	"labsite-backend/pkg/cache"
	"labsite-backend/pkg/jwt"

	"labsite-backend/internal/domains/auth"
	authHandler "labsite-backend/internal/domains/auth/handler"
	authService "labsite-backend/internal/domains/auth/service"

	"labsite-backend/internal/domains/person"
	personHandler "labsite-backend/internal/domains/person/handler"
	personRepo "labsite-backend/internal/domains/person/repository"
	personService "labsite-backend/internal/domains/person/service"

	"labsite-backend/internal/domains/project"
	projectHandler "labsite-backend/internal/domains/project/handler"
	projectRepo "labsite-backend/internal/domains/project/repository"
	projectService "labsite-backend/internal/domains/project/service"

	"labsite-backend/internal/domains/paper"
	paperHandler "labsite-backend/internal/domains/paper/handler"
	paperRepo "labsite-backend/internal/domains/paper/repository"
	paperService "labsite-backend/internal/domains/paper/service"

	"labsite-backend/internal/domains/blog"
	blogHandler "labsite-backend/internal/domains/blog/handler"
	blogRepo "labsite-backend/internal/domains/blog/repository"
	blogService "labsite-backend/internal/domains/blog/service"

	"labsite-backend/internal/domains/event"
	eventHandler "labsite-backend/internal/domains/event/handler"
	eventRepo "labsite-backend/internal/domains/event/repository"
	eventService "labsite-backend/internal/domains/event/service"

	"labsite-backend/internal/domains/collaborator"
	collaboratorHandler "labsite-backend/internal/domains/collaborator/handler"
	collaboratorRepo "labsite-backend/internal/domains/collaborator/repository"
	collaboratorService "labsite-backend/internal/domains/collaborator/service"

	"labsite-backend/internal/search"
	searchHandler "labsite-backend/internal/search/handler"
	searchService "labsite-backend/internal/search/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application. It is the root
// of the dependency graph; everything in it is a singleton built once
// at startup.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config        // Application config
	Store      *jsondb.Store         // JSON document store
	Cache      cache.Cache           // Redis cache (interface)
	Storage    *storage.MinIOStorage // Object storage for uploads (nil when unavailable)
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	PersonRepo       person.Repository
	ProjectRepo      project.Repository
	PaperRepo        paper.Repository
	BlogRepo         blog.Repository
	EventRepo        event.Repository
	CollaboratorRepo collaborator.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	PersonService       person.Service
	ProjectService      project.Service
	PaperService        paper.Service
	BlogService         blog.Service
	EventService        event.Service
	CollaboratorService collaborator.Service
	SearchService       search.Service
	AuthService         auth.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	PersonHandler       *personHandler.PersonHandler
	ProjectHandler      *projectHandler.ProjectHandler
	PaperHandler        *paperHandler.PaperHandler
	BlogHandler         *blogHandler.BlogHandler
	EventHandler        *eventHandler.EventHandler
	CollaboratorHandler *collaboratorHandler.CollaboratorHandler
	SearchHandler       *searchHandler.SearchHandler
	AuthHandler         *authHandler.AuthHandler
	ReloadHandler       *admin.ReloadHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (Store, Cache, Storage, JWT) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: OPEN DOCUMENT STORE
	// ========================================
	log.Printf("🗄️  Opening document store at %s...", cfg.Store.DataDir)

	store, err := jsondb.NewStore(cfg.Store.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}
	c.Store = store
	log.Println("✅ Document store ready")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis is an accelerator here, not a requirement
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		// Image uploads fail with a clear error; everything else works
		log.Printf("⚠️  MinIO unavailable (non-critical): %v", err)
	} else {
		c.Storage = minioStorage
		log.Println("✅ MinIO connected")
	}

	c.JWTManager = jwt.NewManager(cfg.Admin.JWTSecret, cfg.Admin.TokenExpiryHours)

	// ========================================
	// STEP 5: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

// initRepositories wires every collection onto the document store.
// The blog repository additionally layers the Redis snapshot cache.
func (c *Container) initRepositories() {
	c.PersonRepo = personRepo.NewJSONRepository(c.Store)
	c.ProjectRepo = projectRepo.NewJSONRepository(c.Store)
	c.PaperRepo = paperRepo.NewJSONRepository(c.Store)
	c.BlogRepo = blogRepo.NewJSONRepository(c.Store, c.Cache)
	c.EventRepo = eventRepo.NewJSONRepository(c.Store)
	c.CollaboratorRepo = collaboratorRepo.NewJSONRepository(c.Store)
}

func (c *Container) initServices() {
	c.PersonService = personService.NewPersonService(c.PersonRepo)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo)
	c.PaperService = paperService.NewPaperService(c.PaperRepo, c.Cache)
	c.BlogService = blogService.NewBlogService(c.BlogRepo)
	c.CollaboratorService = collaboratorService.NewCollaboratorService(c.CollaboratorRepo)

	// Storage is nil when MinIO is down; uploads then return an error
	var images event.ImageStore
	if c.Storage != nil {
		images = c.Storage
	}
	c.EventService = eventService.NewEventService(c.EventRepo, images)

	c.SearchService = searchService.NewSearchService(
		c.PersonRepo,
		c.ProjectRepo,
		c.PaperRepo,
		c.BlogRepo,
		c.CollaboratorRepo,
	)

	c.AuthService = authService.NewAuthService(c.Config.Admin, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.PersonHandler = personHandler.NewPersonHandler(c.PersonService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.PaperHandler = paperHandler.NewPaperHandler(c.PaperService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.CollaboratorHandler = collaboratorHandler.NewCollaboratorHandler(c.CollaboratorService)
	c.SearchHandler = searchHandler.NewSearchHandler(c.SearchService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)

	c.ReloadHandler = admin.NewReloadHandler([]admin.NamedReloader{
		{Name: "people", Reloader: c.PersonService},
		{Name: "projects", Reloader: c.ProjectService},
		{Name: "papers", Reloader: c.PaperService},
		{Name: "blogs", Reloader: c.BlogService},
		{Name: "events", Reloader: c.EventService},
		{Name: "collaborators", Reloader: c.CollaboratorService},
	})
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases external connections on shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis connection: %v", err)
		}
	}

	log.Println("✅ Container cleanup complete")
}
