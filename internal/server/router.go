package server

import (
	"net/http"

	adminH "github.com/fekuna/omnipos-commerce/internal/admin/handler"
	catH "github.com/fekuna/omnipos-commerce/internal/category/handler"
	discountH "github.com/fekuna/omnipos-commerce/internal/discount/handler"
	exportH "github.com/fekuna/omnipos-commerce/internal/export/handler"
	favoriteH "github.com/fekuna/omnipos-commerce/internal/favorite/handler"
	healthH "github.com/fekuna/omnipos-commerce/internal/health/handler"
	invH "github.com/fekuna/omnipos-commerce/internal/inventory/handler"
	"github.com/fekuna/omnipos-commerce/internal/middleware"
	newsletterH "github.com/fekuna/omnipos-commerce/internal/newsletter/handler"
	orderH "github.com/fekuna/omnipos-commerce/internal/order/handler"
	prodH "github.com/fekuna/omnipos-commerce/internal/product/handler"
	settingH "github.com/fekuna/omnipos-commerce/internal/setting/handler"
	userH "github.com/fekuna/omnipos-commerce/internal/user/handler"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	User       *userH.UserHandler
	Admin      *adminH.AdminHandler
	Category   *catH.CategoryHandler
	Product    *prodH.ProductHandler
	Inventory  *invH.InventoryHandler
	Discount   *discountH.DiscountHandler
	Order      *orderH.OrderHandler
	Favorite   *favoriteH.FavoriteHandler
	Newsletter *newsletterH.NewsletterHandler
	Setting    *settingH.SettingHandler
	Export     *exportH.ExportHandler
	Health     *healthH.HealthHandler
}

func NewRouter(h *Handlers, errs *middleware.ErrorHandler, authn *middleware.Authenticator, log logger.ZapLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(errs.Recover)

	r.NotFound(errs.NotFound)
	r.MethodNotAllowed(errs.MethodNotAllowed)

	w := errs.Wrap

	r.Get("/health/check", w(h.Health.Check))

	// Auth
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", w(h.User.Register))
		r.Post("/login", w(h.User.Login))
		r.Get("/verify", w(h.User.VerifyEmail))
		r.With(authn.RequireUser).Post("/logout", w(h.User.Logout))
		r.With(authn.RequireUser).Get("/me", w(h.User.Me))

		r.Route("/admin", func(r chi.Router) {
			r.With(authn.RequireAPIKey).Post("/register", w(h.Admin.Register))
			r.Post("/login", w(h.Admin.Login))
			r.With(authn.RequireAdmin).Post("/logout", w(h.Admin.Logout))
			r.With(authn.RequireAdmin).Get("/me", w(h.Admin.Me))
		})
	})

	// Catalog
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", w(h.Category.ListCategories))
		r.Get("/{id}", w(h.Category.GetCategory))
		r.Group(func(r chi.Router) {
			r.Use(authn.RequireAdmin)
			r.Post("/", w(h.Category.CreateCategory))
			r.Put("/{id}", w(h.Category.UpdateCategory))
			r.Delete("/{id}", w(h.Category.DeleteCategory))
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", w(h.Product.ListProducts))
		r.Get("/slug/{slug}", w(h.Product.GetProductBySlug))
		r.Get("/{id}", w(h.Product.GetProduct))
		r.Group(func(r chi.Router) {
			r.Use(authn.RequireAdmin)
			r.Get("/admin", w(h.Product.ListAllProducts))
			r.Post("/", w(h.Product.CreateProduct))
			r.Put("/{id}", w(h.Product.UpdateProduct))
			r.Delete("/{id}", w(h.Product.DeleteProduct))
		})
	})

	r.Route("/inventory", func(r chi.Router) {
		r.Use(authn.RequireAdmin)
		r.Get("/low-stock", w(h.Inventory.ListLowStock))
		r.Get("/expiring", w(h.Inventory.ListExpiring))
		r.Get("/movements", w(h.Inventory.ListMovements))
		r.Get("/{productID}", w(h.Inventory.GetProductInventory))
		r.Put("/{productID}", w(h.Inventory.UpdateInventory))
		r.Post("/{productID}/adjust", w(h.Inventory.AdjustInventory))
	})

	r.Route("/discounts", func(r chi.Router) {
		r.Get("/product/{productID}", w(h.Discount.GetProductDiscounts))
		r.Group(func(r chi.Router) {
			r.Use(authn.RequireAdmin)
			r.Get("/bulk", w(h.Discount.ListBulkDiscounts))
			r.Post("/bulk", w(h.Discount.CreateBulkDiscount))
			r.Put("/bulk/{id}", w(h.Discount.UpdateBulkDiscount))
			r.Delete("/bulk/{id}", w(h.Discount.DeleteBulkDiscount))
			r.Get("/", w(h.Discount.ListDiscounts))
			r.Post("/", w(h.Discount.CreateDiscount))
			r.Put("/{id}", w(h.Discount.UpdateDiscount))
			r.Delete("/{id}", w(h.Discount.DeleteDiscount))
		})
	})

	// Orders
	r.Route("/orders", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authn.RequireUser)
			r.Post("/", w(h.Order.CreateOrder))
			r.Get("/me", w(h.Order.ListMyOrders))
			r.Get("/me/{id}", w(h.Order.GetMyOrder))
		})
		r.Group(func(r chi.Router) {
			r.Use(authn.RequireAdmin)
			r.Get("/", w(h.Order.ListOrders))
			r.Get("/{id}", w(h.Order.GetOrder))
			r.Patch("/{id}/status", w(h.Order.UpdateOrderStatus))
		})
	})

	// Customers
	r.Route("/customers", func(r chi.Router) {
		r.Use(authn.RequireAdmin)
		r.Get("/", w(h.User.ListCustomers))
		r.Get("/{id}", w(h.User.GetCustomer))
		r.Patch("/{id}/approve", w(h.User.ApproveCustomer))
		r.Delete("/{id}", w(h.User.DeleteCustomer))
	})

	r.Route("/favorites", func(r chi.Router) {
		r.Use(authn.RequireUser)
		r.Get("/", w(h.Favorite.ListFavorites))
		r.Post("/{productID}", w(h.Favorite.AddFavorite))
		r.Delete("/{productID}", w(h.Favorite.RemoveFavorite))
	})

	r.Route("/newsletter", func(r chi.Router) {
		r.With(authn.RequireUser).Post("/subscribe", w(h.Newsletter.Subscribe))
		r.With(authn.RequireUser).Post("/unsubscribe", w(h.Newsletter.Unsubscribe))
		r.With(authn.RequireAdmin).Get("/subscribers", w(h.Newsletter.ListSubscribers))
		r.With(authn.RequireAdmin).Post("/send", w(h.Newsletter.Send))
	})

	r.Get("/config", w(h.Setting.GetConfig))
	r.With(authn.RequireAdmin).Put("/config", w(h.Setting.UpdateConfig))

	r.Route("/export", func(r chi.Router) {
		r.Use(authn.RequireAdmin)
		r.Get("/users", w(h.Export.ExportUsers))
		r.Get("/products", w(h.Export.ExportProducts))
		r.Get("/orders", w(h.Export.ExportOrders))
	})

	return r
}
