package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/handlers"
	"github.com/secureshop/backend/internal/middleware/auth"
)

type Deps struct {
	Auth     *handlers.AuthHandler
	Users    *handlers.UserHandler
	Products *handlers.ProductHandler
	Reviews  *handlers.ReviewHandler
	Checkout *handlers.CheckoutHandler
	Stats    *handlers.StatsHandler
	Files    *handlers.FileHandler
	Search   *handlers.SearchHandler
	Guard    *auth.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "OK",
			"timestamp": time.Now(),
		})
	})

	api := e.Group("/api")

	api.POST("/register", d.Auth.Register)
	api.POST("/login", d.Auth.Login)
	api.POST("/logout", d.Auth.Logout, d.Guard.Require(auth.Authenticated))

	api.GET("/products", d.Products.GetProducts)
	api.GET("/products/search", d.Search.Search)
	api.GET("/products/:id", d.Products.GetProduct)
	api.GET("/products/:id/reviews", d.Reviews.ListReviews)
	api.POST("/products/:id/review", d.Reviews.CreateReview, d.Guard.Require(auth.Authenticated))

	api.POST("/products", d.Products.CreateProduct, d.Guard.Require(auth.AdminOnly))
	api.PATCH("/products/:id", d.Products.PatchProduct, d.Guard.Require(auth.AdminOnly))
	api.DELETE("/products/:id", d.Products.DeleteProduct, d.Guard.Require(auth.AdminOnly))

	api.GET("/users", d.Users.ListUsers, d.Guard.Require(auth.AdminOnly))
	api.GET("/users/:id", d.Users.GetUser, d.Guard.Require(auth.Authenticated))

	api.POST("/checkout", d.Checkout.Checkout, d.Guard.Require(auth.Authenticated))
	api.GET("/files/:filename", d.Files.GetFile, d.Guard.Require(auth.Authenticated))

	admin := api.Group("/admin", d.Guard.Require(auth.AdminOnly))
	admin.GET("/stats", d.Stats.Stats)
}
