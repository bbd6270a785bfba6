package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/library-portal/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/library-portal/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/iliyamo/library-portal/internal/session"    // role constants
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the login endpoint and the protected session
// endpoints. Login lives under /v1/auth and needs no token; logout and the
// profile endpoint require a valid access token for either role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(session.RoleStudent, session.RoleLibrarian))
	auth.POST("/logout", a.Logout)
	auth.GET("/me", a.Me)
}

// RegisterPortal registers the student-facing endpoints: catalog search and
// details, reviews, the bag and order placement, book requests, the chat
// assistant and the static content pages. Everything sits behind a valid
// access token, mirroring the portal where only the login page is public.
func RegisterPortal(
	e *echo.Echo,
	cat *handler.CatalogHandler,
	bag *handler.BagHandler,
	req *handler.RequestHandler,
	chat *handler.ChatHandler,
	content *handler.ContentHandler,
	jwtSecret string,
) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(session.RoleStudent, session.RoleLibrarian),
	)

	// Catalog browse and reviews.
	g.GET("/books/search", cat.Search)
	g.GET("/books/:id", cat.GetBook)
	g.POST("/books/:id/reviews", cat.AddReview)

	// College bag and order placement.
	g.GET("/bag", bag.Get)
	g.POST("/bag/items", bag.Add)
	g.DELETE("/bag/items/:id", bag.Remove)
	g.DELETE("/bag", bag.Clear)
	g.POST("/orders", bag.PlaceOrder)

	// Request-a-book ledger.
	g.POST("/requests", req.Submit)

	// Assistant.
	g.GET("/chat/greeting", chat.Greeting)
	g.POST("/chat", chat.Send)

	// Static reference content.
	g.GET("/branches", content.Branches)
	g.GET("/subjects", content.SubjectsForBranch)
	g.GET("/ebooks", content.EBooks)
	g.GET("/study-materials", content.StudyMaterials)
	g.GET("/contact", content.Contact)
}

// RegisterAdmin registers the librarian surface under /v1/admin. All routes
// require the LIBRARIAN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(session.RoleLibrarian),
	)
	g.POST("/books", a.AddBook)
	g.GET("/requests", a.ListRequests)
}
