package routes

import (
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/controllers"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/middlewares"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps is everything the routes need, built once in main.
type Deps struct {
	Tokens   repository.TokenStore
	Carts    *services.CartRegistry
	Catalog  *services.CatalogService
	Booking  *services.BookingService
	Contact  *services.ContactService
	Admin    *services.AdminService
	Hub      *ws.CartHub
	Log      *zap.Logger
	Location *time.Location
	Origins  []string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware(d.Origins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true, "sessions": d.Carts.Len()}) })

	// Controllers
	sessionCtrl := controllers.NewSessionController(d.Tokens, d.Carts, d.Log)
	cartCtrl := controllers.NewCartController(d.Carts)
	menuCtrl := controllers.NewMenuController(d.Catalog)
	bookingCtrl := controllers.NewBookingController(d.Booking)
	contactCtrl := controllers.NewContactController(d.Contact)
	adminCtrl := controllers.NewAdminController(d.Admin, d.Location)

	// Session (login state lives in the backend; we only keep the token)
	r.POST("/session", middlewares.SessionMiddleware(false), sessionCtrl.Login)
	r.DELETE("/session", middlewares.SessionMiddleware(true), sessionCtrl.Logout)

	// Public, credential optional
	pub := r.Group("/", middlewares.SessionMiddleware(false))
	{
		pub.GET("/menu/dishes", menuCtrl.Dishes)
		pub.GET("/menu/dishes/:id", menuCtrl.Dish)
		pub.GET("/menu/categories", menuCtrl.Categories)
		pub.GET("/tables", menuCtrl.Tables)
		pub.POST("/contact", contactCtrl.Submit)
	}

	// Cart
	cart := r.Group("/cart", middlewares.SessionMiddleware(true))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:dishId", cartCtrl.UpdateQty)
		cart.DELETE("/items/:dishId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Booking
	booking := r.Group("/booking", middlewares.SessionMiddleware(true))
	{
		booking.GET("/discounts", bookingCtrl.Discounts)
		booking.GET("/quote", bookingCtrl.Quote)
		booking.POST("/confirm", bookingCtrl.Confirm)
	}

	// Back office
	admin := r.Group("/admin", middlewares.SessionMiddleware(true), middlewares.AdminOnly(d.Tokens))
	{
		admin.GET("/categories", adminCtrl.Categories)
		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.PATCH("/categories/:id", adminCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", adminCtrl.DeleteCategory)

		admin.GET("/dishes", adminCtrl.Dishes)
		admin.POST("/dishes", adminCtrl.CreateDish)
		admin.PATCH("/dishes/:id", adminCtrl.UpdateDish)
		admin.DELETE("/dishes/:id", adminCtrl.DeleteDish)

		admin.GET("/discounts", adminCtrl.Discounts)
		admin.POST("/discounts", adminCtrl.CreateDiscount)
		admin.PATCH("/discounts/:id", adminCtrl.UpdateDiscount)
		admin.DELETE("/discounts/:id", adminCtrl.DeleteDiscount)

		admin.GET("/contacts", adminCtrl.Contacts)
		admin.DELETE("/contacts/:id", adminCtrl.DeleteContact)
	}

	// Cart observers
	if d.Hub != nil {
		r.GET("/ws/cart", middlewares.WSSessionMiddleware(), d.Hub.HandleWebSocket)
	}
}
