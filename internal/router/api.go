package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mappedev/persondir/internal/handler"
)

// registerAPIRoutes maps the directory operations onto the router.
//
// Success statuses follow the operation table: create returns 201,
// everything else 200. Validation failures are answered with 422 and
// registry misses with 404 by the global error handler.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/", handler.Handle(h.Home.Handler, h.Home.Home, http.StatusOK,
		func() *handler.EmptyRequest { return &handler.EmptyRequest{} }))

	e.POST("/persons", handler.Handle(h.Persons.Handler, h.Persons.Create, http.StatusCreated,
		func() *handler.CreatePersonRequest { return &handler.CreatePersonRequest{} }))

	e.GET("/persons", handler.Handle(h.Persons.Handler, h.Persons.List, http.StatusOK,
		func() *handler.GetPersonsRequest { return &handler.GetPersonsRequest{} }))

	e.GET("/persons/:person_id", handler.Handle(h.Persons.Handler, h.Persons.Get, http.StatusOK,
		func() *handler.GetPersonRequest { return &handler.GetPersonRequest{} }))

	e.PUT("/persons/:person_id", handler.Handle(h.Persons.Handler, h.Persons.Update, http.StatusOK,
		func() *handler.UpdatePersonRequest { return &handler.UpdatePersonRequest{} }))

	e.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK,
		func() *handler.LoginRequest { return &handler.LoginRequest{} }))

	e.POST("/contact", handler.Handle(h.Contact.Handler, h.Contact.Contact, http.StatusOK,
		func() *handler.ContactRequest { return &handler.ContactRequest{} }))

	e.POST("/post-image", handler.Handle(h.Files.Handler, h.Files.PostImage, http.StatusOK,
		func() *handler.PostImageRequest { return &handler.PostImageRequest{} }))
}
