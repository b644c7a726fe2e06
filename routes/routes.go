package routes

import (
	"stallpos/configs"
	"stallpos/controllers"
	"stallpos/middlewares"
	"stallpos/repository"
	"stallpos/services"
	"stallpos/slip"
	"stallpos/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.LiveHub, printer slip.Printer) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	staffRepo := repository.NewStaffRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(staffRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, hub)
	cartSvc := services.NewCartService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, cartSvc, hub, services.StallInfo{
		Name:       cfg.StallName,
		Tagline:    cfg.StallTagline,
		UPIPayeeID: cfg.UPIPayeeID,
	})

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, cfg.UploadDir)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, printer)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/register", middlewares.AuthMiddleware(cfg.JWTSecret, "owner"), authCtrl.Register)
	}

	// Inventory management
	inv := r.Group("/inventory", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		inv.GET("", menuCtrl.List)
		inv.GET("/:id", menuCtrl.Get)
		inv.POST("", menuCtrl.Create)
		inv.PATCH("/:id", menuCtrl.Update)
		inv.DELETE("/:id", menuCtrl.Delete)
		inv.POST("/:id/image", menuCtrl.UploadImage)
	}

	// Draft carts
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/lines", cartCtrl.AddLine)
		cart.PATCH("/lines", cartCtrl.AdjustLine)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders and slips
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.POST("/checkout", orderCtrl.Checkout)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.GET("/:id/slip", orderCtrl.Slip)
		orders.GET("/:id/slip/preview", orderCtrl.SlipPreview)
		orders.POST("/:id/print", orderCtrl.Print)
	}

	// Live change feed (token via query param, headers unavailable on ws)
	r.GET("/ws/live", middlewares.AuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
