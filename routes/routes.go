package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/configs"
	"github.com/Derescio/bugleworldmusic/controllers"
	"github.com/Derescio/bugleworldmusic/middlewares"
	"github.com/Derescio/bugleworldmusic/pkg/cart"
	"github.com/Derescio/bugleworldmusic/repository"
	"github.com/Derescio/bugleworldmusic/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	musicRepo := repository.NewMusicRepository(db)
	showRepo := repository.NewShowRepository(db)
	merchRepo := repository.NewMerchandiseRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	musicSvc := services.NewMusicService(db, musicRepo)
	showSvc := services.NewShowService(showRepo)
	merchSvc := services.NewMerchandiseService(merchRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	bookingSvc := services.NewBookingService(bookingRepo)
	carts := cart.NewManager(cfg.CartDir)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	musicCtrl := controllers.NewMusicController(musicSvc)
	genreCtrl := controllers.NewGenreController(db)
	tagCtrl := controllers.NewTagController(db)
	showCtrl := controllers.NewShowController(showSvc)
	merchCtrl := controllers.NewMerchandiseController(merchSvc)
	bookingCtrl := controllers.NewBookingController(bookingSvc)
	cartCtrl := controllers.NewCartController(carts, merchRepo)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Public catalog
	r.GET("/music", musicCtrl.List)
	r.GET("/music/featured", musicCtrl.Featured)
	r.GET("/music/search", musicCtrl.Search)
	r.GET("/music/type/:type", musicCtrl.ByType)
	r.GET("/music/:id", musicCtrl.Get)
	r.GET("/genres", genreCtrl.List)
	r.GET("/tags", tagCtrl.List)
	r.GET("/shows", showCtrl.List)
	r.GET("/merchandise", merchCtrl.List)
	r.GET("/merchandise/:id", merchCtrl.Get)

	// Booking inquiries
	r.POST("/bookings", bookingCtrl.Create)

	// Guest cart
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartCtrl.Get)
		cartGroup.POST("/items", cartCtrl.Add)
		cartGroup.PATCH("/items/qty", cartCtrl.UpdateQty)
		cartGroup.DELETE("/items", cartCtrl.Remove)
		cartGroup.DELETE("", cartCtrl.Clear)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/music", musicCtrl.ListAll)
		admin.POST("/music", musicCtrl.Create)
		admin.PUT("/music/:id", musicCtrl.Update)
		admin.DELETE("/music/:id", musicCtrl.Delete)

		admin.POST("/genres", genreCtrl.Create)
		admin.POST("/tags", tagCtrl.Create)

		admin.POST("/shows", showCtrl.Create)
		admin.PUT("/shows/:id", showCtrl.Update)
		admin.DELETE("/shows/:id", showCtrl.Delete)

		admin.GET("/merchandise", merchCtrl.ListAll)
		admin.POST("/merchandise", merchCtrl.Create)
		admin.PUT("/merchandise/:id", merchCtrl.Update)
		admin.DELETE("/merchandise/:id", merchCtrl.Delete)

		admin.GET("/bookings", bookingCtrl.List)
		admin.PATCH("/bookings/:id/status", bookingCtrl.UpdateStatus)
	}
}
