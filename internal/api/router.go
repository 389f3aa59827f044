package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aeroops/lostfound/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Post("/auth/register", h.Register)
			r.Post("/auth/login", h.Login)
			r.Post("/auth/validate", h.Validate)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/users", h.Users)
			r.Get("/users/{id}", h.UserByID)
			r.Delete("/users/{id}", h.DeleteUser)
			r.Patch("/users/{id}/role", h.SetUserRole)
			r.Put("/users/{id}/permissions", h.SetUserPermissions)
			r.Put("/users/{id}/password", h.ChangePassword)

			r.Get("/permissions", h.Permissions)
			r.Post("/permissions", h.CreatePermission)
			r.Get("/permissions/{id}", h.PermissionByID)
			r.Put("/permissions/{id}", h.UpdatePermission)
			r.Delete("/permissions/{id}", h.DeletePermission)

			r.Post("/items", h.ReportItem)
			r.Get("/items", h.Items)
			r.Get("/items/{id}", h.ItemByID)
			r.Patch("/items/{id}", h.EditItem)
			r.Delete("/items/{id}", h.DeleteItem)
			r.Post("/items/{id}/images", h.AddItemImages)
			r.Delete("/items/{id}/images", h.RemoveItemImage)
			r.Post("/items/{id}/deliver", h.DeliverItem)

			r.Get("/delivered", h.DeliveredItems)
			r.Get("/delivered/{id}", h.DeliveredItemByID)
			r.Post("/delivered/{id}/revert", h.RevertItem)
			r.Patch("/delivered/{id}/archive", h.ArchiveItem)
			r.Delete("/delivered/{id}", h.DeleteDeliveredItem)
		})
	})

	return router
}
