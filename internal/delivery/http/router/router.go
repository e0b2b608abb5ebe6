// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookshelf/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	BookHandler    *handler.BookHandler
	SystemHandler  *handler.SystemHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	bookHandler    *handler.BookHandler
	systemHandler  *handler.SystemHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		bookHandler:    params.BookHandler,
		systemHandler:  params.SystemHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	{
		// Probes
		api.GET("/health", handler.HealthCheck)
		api.GET("/db-check", r.systemHandler.DBCheck)

		// Account routes
		api.POST("/create-account", r.accountHandler.CreateAccount)
		api.POST("/login", r.accountHandler.Login)
		api.PUT("/update-password", r.accountHandler.UpdatePassword)
		api.DELETE("/delete-account/:user_id", r.accountHandler.DeleteAccount)

		// Book routes. The static segments are registered before the
		// parameterized ones so /books/details and /books/collection are
		// not captured as book IDs.
		api.GET("/books/details", r.bookHandler.GetDetails)
		api.GET("/books/collection", r.bookHandler.GetCollection)
		api.POST("/books", r.bookHandler.AddBook)
		api.GET("/books/:book_id", r.bookHandler.GetBook)
		api.PUT("/books/:book_id", r.bookHandler.UpdateReadingStatus)
		api.DELETE("/books/:book_id", r.bookHandler.DeleteBook)
	}
}
