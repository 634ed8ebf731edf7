// Package app wires repositories, services and HTTP handlers into a gin engine.
package app

import (
	"context"
	"net/http"

	"autoservice/internal/audit"
	"autoservice/internal/cache"
	"autoservice/internal/config"
	"autoservice/internal/handler"
	"autoservice/internal/metrics"
	"autoservice/internal/middleware"
	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/internal/service"
	"autoservice/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options are the process-level resources the application is built from.
type Options struct {
	Config config.Config
	DB     *gorm.DB
	// TicketsDB may be nil, in which case tickets live in DB.
	TicketsDB *gorm.DB
	// Cache may be nil, in which case an in-memory cache is used.
	Cache  cache.PermissionCache
	Mailer service.Mailer
	Log    *zap.SugaredLogger
}

// App is the assembled service.
type App struct {
	Router   *gin.Engine
	Hub      *websocket.Hub
	Recorder *audit.Recorder
	Metrics  *metrics.Metrics
	Auth     service.AuthService
}

type routes interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// New builds the application. Call Run on the hub and Close on the recorder.
func New(opts Options) *App {
	cfg := opts.Config
	log := opts.Log
	ticketsDB := opts.TicketsDB
	if ticketsDB == nil {
		ticketsDB = opts.DB
	}
	permCache := opts.Cache
	if permCache == nil {
		permCache = cache.NewMemoryCache(cfg.Cache.PermissionTTL)
	}

	m := metrics.New("autoservice")

	// Set up dependencies (Repository -> Service -> Handler)
	policy := repository.NewDeletePolicy(cfg.SoftDeleteEntities)
	txManager := repository.NewTransactionManager(opts.DB)
	ticketsTx := repository.NewTransactionManager(ticketsDB)

	userRepo := repository.NewUserRepository(opts.DB, policy)
	sessionRepo := repository.NewSessionRepository(opts.DB)
	roleRepo := repository.NewRoleRepository(opts.DB, policy)
	departmentRepo := repository.NewDepartmentRepository(opts.DB, policy)
	auditRepo := repository.NewAuditRepository(opts.DB)
	orderRepo := repository.NewOrderRepository(opts.DB, policy)
	demandRepo := repository.NewDemandRepository(opts.DB, policy)
	ticketRepo := repository.NewTicketRepository(ticketsDB, policy)
	vehicles := repository.NewStore[model.Vehicle](opts.DB, repository.EntityVehicles, policy)
	warehouse := repository.NewStore[model.WarehouseItem](opts.DB, repository.EntityWarehouse, policy)
	catalog := repository.NewStore[model.RepairService](opts.DB, repository.EntityServices, policy)
	requests := repository.NewStore[model.AbsenceRequest](opts.DB, repository.EntityRequests, policy)
	aircon := repository.NewStore[model.AirConditioningRecord](opts.DB, repository.EntityAircon, policy)

	recorder := audit.NewRecorder(auditRepo, cfg.AuditBuffer, log)

	authService := service.NewAuthService(userRepo, sessionRepo, roleRepo, txManager, permCache, cfg.Session.TTL, log)
	hub := websocket.NewHub(cfg.CORS.AllowOrigins, authService.IsAuthorized, log)
	clientService := service.NewClientService(userRepo, txManager)
	employeeService := service.NewEmployeeService(userRepo, roleRepo, departmentRepo, txManager, authService)
	vehicleService := service.NewVehicleService(vehicles, userRepo)
	departmentService := service.NewDepartmentService(departmentRepo, txManager)
	roleService := service.NewRoleService(roleRepo, txManager, authService)
	catalogService := service.NewCatalogService(catalog)
	warehouseService := service.NewWarehouseService(warehouse, departmentRepo, hub)
	orderService := service.NewOrderService(orderRepo, userRepo, vehicles, departmentRepo, warehouse, catalog, txManager)
	estimateService := service.NewEstimateService(orderRepo, warehouse, catalog, txManager)
	checkListService := service.NewCheckListService(orderRepo)
	complaintService := service.NewComplaintService(orderRepo)
	demandService := service.NewDemandService(demandRepo, departmentRepo, warehouse, txManager, hub)
	requestService := service.NewRequestService(requests)
	ticketService := service.NewTicketService(ticketRepo, ticketsTx, cfg.UploadDir, hub, log)
	airconService := service.NewAirconService(aircon, vehicles, departmentRepo)
	logService := service.NewLogService(auditRepo)
	settingsService := service.NewSettingsService(cfg.Tenant, cfg.Mail.ContactTo, opts.Mailer)

	authMiddleware := middleware.NewAuth(authService, cfg.Session, log)
	deps := handler.Deps{Auth: authMiddleware, Audit: recorder, Log: log}

	handlers := []routes{
		handler.NewAuthHandler(authService, deps),
		handler.NewSettingsHandler(settingsService, deps),
		handler.NewClientHandler(clientService, deps),
		handler.NewEmployeeHandler(employeeService, deps),
		handler.NewVehicleHandler(vehicleService, deps),
		handler.NewDepartmentHandler(departmentService, deps),
		handler.NewRoleHandler(roleService, deps),
		handler.NewCatalogHandler(catalogService, deps),
		handler.NewWarehouseHandler(warehouseService, deps),
		handler.NewOrderHandler(orderService, deps),
		handler.NewEstimateHandler(estimateService, deps),
		handler.NewCheckListHandler(checkListService, deps),
		handler.NewComplaintHandler(complaintService, deps),
		handler.NewDemandHandler(demandService, deps),
		handler.NewRequestHandler(requestService, deps),
		handler.NewTicketHandler(ticketService, deps),
		handler.NewAirconHandler(airconService, deps),
		handler.NewLogHandler(logService, deps),
	}

	router := gin.New()
	router.Use(gin.Recovery(), m.Middleware(), middleware.RequestLogger(log))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", m.Handler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	router.GET("/ws", authMiddleware.RequireSession(), func(c *gin.Context) {
		hub.ServeWs(c, middleware.UserID(c))
	})

	api := router.Group("/api")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}

	return &App{Router: router, Hub: hub, Recorder: recorder, Metrics: m, Auth: authService}
}

// WatchAudit counts failed audit writes until ctx is done.
func (a *App) WatchAudit(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.Recorder.Errors():
			a.Metrics.AuditFailed()
		}
	}
}
