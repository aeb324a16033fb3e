package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires all API routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	// Auth
	api.POST("/auth/login", loginHandler(deps.AuthSvc))
	api.POST("/auth/logout", logoutHandler(deps.AuthSvc))
	api.GET("/auth/me", requireAuth(deps.AuthSvc), meHandler())

	// Customer-facing order flow, no session required.
	api.POST("/orders", createOrderHandler(deps.OrderSvc))
	api.GET("/orders/track/:code", trackOrderHandler(deps.OrderSvc))

	authed := api.Group("", requireAuth(deps.AuthSvc))
	{
		authed.GET("/users", requireAdmin(), listUsersHandler(deps.UserSvc))
		authed.POST("/users", requireAdmin(), createUserHandler(deps.UserSvc))

		authed.GET("/categories", listCategoriesHandler(deps.CategorySvc))
		authed.POST("/categories", requireAdminOrManager(), createCategoryHandler(deps.CategorySvc))
		authed.DELETE("/categories/:id", requireAdmin(), deleteCategoryHandler(deps.CategorySvc))

		authed.GET("/products", listProductsHandler(deps.ProductSvc))
		authed.POST("/products", requireAdminOrManager(), createProductHandler(deps.ProductSvc))
		authed.PATCH("/products/:id", requireAdminOrManager(), updateProductHandler(deps.ProductSvc))
		authed.DELETE("/products/:id", requireAdmin(), deleteProductHandler(deps.ProductSvc))
		authed.POST("/products/:id/increase-stock", requireAdminOrManager(), increaseStockHandler(deps.ProductSvc))

		authed.GET("/sales", listSalesHandler(deps.SaleSvc))
		authed.POST("/sales", createSaleHandler(deps.SaleSvc))

		authed.GET("/orders", listOrdersHandler(deps.OrderSvc))
		authed.POST("/orders/:id/approve", requireAdminOrManager(), approveOrderHandler(deps.OrderSvc))
		authed.POST("/orders/:id/cancel", requireAdminOrManager(), cancelOrderHandler(deps.OrderSvc))
		authed.POST("/orders/:id/reopen", reopenOrderHandler(deps.OrderSvc))

		authed.GET("/notifications", listNotificationsHandler(deps.NotifRepo))
		authed.PATCH("/notifications/:id/read", markNotificationReadHandler(deps.NotifRepo))

		authed.GET("/audit-logs", requireAdmin(), listAuditLogsHandler(deps.AuditRepo))

		authed.GET("/system/edit-count", editCountHandler(deps.ProductSvc))

		authed.GET("/tasks", listTasksHandler(deps.TaskRepo))
		authed.POST("/tasks", createTaskHandler(deps.TaskRepo))
		authed.PATCH("/tasks/:id", updateTaskHandler(deps.TaskRepo))
		authed.DELETE("/tasks/:id", deleteTaskHandler(deps.TaskRepo))
	}

	return router
}
