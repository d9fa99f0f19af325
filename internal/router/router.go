package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratemystore/ratemystore-backend/config"
	"github.com/ratemystore/ratemystore-backend/internal/app/controller"
	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/internal/middleware"
)

type Router struct {
	authController   *controller.AuthController
	storeController  *controller.StoreController
	ratingController *controller.RatingController
	adminController  *controller.AdminController
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	storeController *controller.StoreController,
	ratingController *controller.RatingController,
	adminController *controller.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:   authController,
		storeController:  storeController,
		ratingController: ratingController,
		adminController:  adminController,
		authMiddleware:   authMiddleware,
		config:           cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Rate My Store API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/signup", r.authController.Signup)
		v1.POST("/login", r.authController.Login)

		users := v1.Group("/users")
		{
			users.PUT("/password",
				r.authMiddleware.Authenticate(),
				r.authController.UpdatePassword,
			)
		}

		stores := v1.Group("/stores")
		{
			// The listing requires a login (it carries the caller's own
			// rating per store); the detail page is public
			stores.GET("", r.authMiddleware.Authenticate(), r.storeController.List)
			stores.GET("/:id", r.storeController.GetDetail)

			stores.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleAdmin, model.RoleOwner),
				r.storeController.Create,
			)
			stores.PUT("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleAdmin, model.RoleOwner),
				r.storeController.Update,
			)
			stores.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleAdmin, model.RoleOwner),
				r.storeController.Delete,
			)

			stores.POST("/:id/ratings",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleUser),
				r.ratingController.Submit,
			)
		}

		owner := v1.Group("/owner",
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole(model.RoleOwner),
		)
		{
			owner.GET("/stores", r.storeController.ListOwn)
			owner.GET("/stores/ratings", r.ratingController.ListForOwner)
		}

		admin := v1.Group("/admin",
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole(model.RoleAdmin),
		)
		{
			admin.GET("/users", r.adminController.ListUsers)
			admin.POST("/users", r.adminController.CreateUser)
			admin.GET("/stats", r.adminController.GetStats)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
