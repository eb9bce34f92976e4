// Package api exposes the storefront and admin JSON endpoints.
package api

import (
	"context"
	"net"
	"net/http"
	"strings"

	"grocery-be/internal/analytics"
	"grocery-be/internal/auth"
	"grocery-be/internal/cart"
	"grocery-be/internal/category"
	"grocery-be/internal/integration/courier"
	"grocery-be/internal/integration/fraudcheck"
	"grocery-be/internal/integration/whatsapp"
	"grocery-be/internal/menu"
	"grocery-be/internal/middleware"
	"grocery-be/internal/module"
	"grocery-be/internal/order"
	"grocery-be/internal/product"
	"grocery-be/internal/review"
	"grocery-be/internal/settings"
	"grocery-be/internal/tracking"
	"grocery-be/internal/transaction"
	"grocery-be/internal/transport"
	"grocery-be/internal/upload"
)

// Authenticator logs the admin in and validates issued tokens.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*auth.Session, error)
	Parse(token string) (*auth.Claims, error)
}

// Handler holds every service the HTTP surface talks to.
type Handler struct {
	Auth         Authenticator
	Modules      module.Service
	Analytics    analytics.Service
	Categories   category.Service
	Products     product.Service
	Carts        cart.Service
	Orders       order.Service
	Settings     settings.Service
	Menus        menu.Service
	Transactions transaction.Service
	Tracking     tracking.Service
	Reviews      review.Service
	Uploads      upload.Service
	Courier      courier.Service
	WhatsApp     whatsapp.Service
	FraudCheck   fraudcheck.Service

	CourierWebhook http.Handler
	SecureCookies  bool
}

func (h *Handler) admin(fn http.HandlerFunc) http.Handler {
	return middleware.RequireAdmin(h.Auth)(fn)
}

// gated requires moduleID to be enabled before fn runs.
func (h *Handler) gated(moduleID string, fn http.Handler) http.Handler {
	return middleware.RequireModule(h.Modules, moduleID)(fn)
}

func (h *Handler) adminGated(moduleID string, fn http.HandlerFunc) http.Handler {
	return h.admin(h.gated(moduleID, fn).ServeHTTP)
}

// Routes registers every endpoint on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/admin/login", h.login)
	mux.HandleFunc("POST /api/admin/logout", h.logout)
	mux.Handle("GET /api/admin/me", h.admin(h.me))

	// Storefront
	mux.HandleFunc("GET /api/settings", h.publicSettings)
	mux.HandleFunc("GET /api/categories", h.listCategories)
	mux.HandleFunc("GET /api/categories/{id}", h.getCategory)
	mux.HandleFunc("GET /api/products", h.listProducts)
	mux.HandleFunc("GET /api/products/{id}", h.getProduct)
	mux.HandleFunc("GET /api/menus", h.publicMenus)
	mux.HandleFunc("GET /api/modules/{id}/status", h.moduleStatus)

	mux.HandleFunc("POST /api/cart/items", h.addCartItem)
	mux.HandleFunc("GET /api/cart/{sessionId}", h.getCart)
	mux.HandleFunc("POST /api/cart/{sessionId}/items", h.addCartItem)
	mux.HandleFunc("PATCH /api/cart/{sessionId}/items/{productId}", h.setCartQuantity)
	mux.HandleFunc("DELETE /api/cart/{sessionId}/items/{productId}", h.removeCartItem)
	mux.HandleFunc("DELETE /api/cart/{sessionId}", h.clearCart)

	mux.HandleFunc("POST /api/orders", h.checkout)
	mux.HandleFunc("GET /api/orders/{orderNumber}", h.getOrderByNumber)

	mux.Handle("POST /api/track", h.gated(module.IDTracking, http.HandlerFunc(h.track)))
	mux.Handle("GET /api/products/{id}/reviews", h.gated(module.IDProductReviews, http.HandlerFunc(h.listProductReviews)))
	mux.Handle("POST /api/products/{id}/reviews", h.gated(module.IDProductReviews, http.HandlerFunc(h.createReview)))

	if h.CourierWebhook != nil {
		mux.Handle("POST /api/webhooks/courier", h.gated(module.IDCourier, h.CourierWebhook))
	}

	// Admin: catalog
	mux.Handle("GET /api/admin/categories", h.admin(h.adminListCategories))
	mux.Handle("POST /api/admin/categories", h.admin(h.createCategory))
	mux.Handle("PATCH /api/admin/categories/{id}", h.admin(h.updateCategory))
	mux.Handle("DELETE /api/admin/categories/{id}", h.admin(h.deleteCategory))
	mux.Handle("GET /api/admin/products", h.admin(h.adminListProducts))
	mux.Handle("POST /api/admin/products", h.admin(h.createProduct))
	mux.Handle("PATCH /api/admin/products/{id}", h.admin(h.updateProduct))
	mux.Handle("DELETE /api/admin/products/{id}", h.admin(h.deleteProduct))
	mux.Handle("POST /api/admin/upload", h.admin(h.upload))

	// Admin: orders
	mux.Handle("GET /api/admin/orders", h.admin(h.listOrders))
	mux.Handle("GET /api/admin/orders/analytics", h.admin(h.orderAnalytics))
	mux.Handle("POST /api/admin/orders/bulk-status", h.admin(h.bulkOrderStatus))
	mux.Handle("GET /api/admin/orders/{id}", h.admin(h.getOrder))
	mux.Handle("PATCH /api/admin/orders/{id}/status", h.admin(h.updateOrderStatus))

	// Admin: settings and modules
	mux.Handle("GET /api/admin/settings", h.admin(h.adminSettings))
	mux.Handle("PATCH /api/admin/settings", h.admin(h.updateSettings))
	mux.Handle("GET /api/admin/modules", h.admin(h.listModules))
	mux.Handle("GET /api/admin/modules/{id}", h.admin(h.getModule))
	mux.Handle("POST /api/admin/modules/{id}/purchase", h.admin(h.purchaseModule))
	mux.Handle("POST /api/admin/modules/{id}/enable", h.admin(h.enableModule))
	mux.Handle("POST /api/admin/modules/{id}/disable", h.admin(h.disableModule))
	mux.Handle("PATCH /api/admin/modules/{id}/settings", h.admin(h.updateModuleSettings))

	// Admin: premium modules
	mux.Handle("GET /api/admin/menus", h.adminGated(module.IDCustomMenus, h.listMenus))
	mux.Handle("POST /api/admin/menus", h.adminGated(module.IDCustomMenus, h.createMenu))
	mux.Handle("GET /api/admin/menus/{id}", h.adminGated(module.IDCustomMenus, h.getMenu))
	mux.Handle("PATCH /api/admin/menus/{id}", h.adminGated(module.IDCustomMenus, h.updateMenu))
	mux.Handle("DELETE /api/admin/menus/{id}", h.adminGated(module.IDCustomMenus, h.deleteMenu))

	mux.Handle("GET /api/admin/transactions", h.adminGated(module.IDAccounting, h.listTransactions))
	mux.Handle("POST /api/admin/transactions", h.adminGated(module.IDAccounting, h.createTransaction))
	mux.Handle("GET /api/admin/transactions/summary", h.adminGated(module.IDAccounting, h.transactionSummary))
	mux.Handle("DELETE /api/admin/transactions/{id}", h.adminGated(module.IDAccounting, h.deleteTransaction))

	mux.Handle("GET /api/admin/tracking/events", h.adminGated(module.IDTracking, h.listEvents))
	mux.Handle("GET /api/admin/tracking/summary", h.adminGated(module.IDTracking, h.eventSummary))

	mux.Handle("GET /api/admin/reviews", h.adminGated(module.IDProductReviews, h.listReviews))
	mux.Handle("PATCH /api/admin/reviews/{id}/approve", h.adminGated(module.IDProductReviews, h.approveReview))
	mux.Handle("DELETE /api/admin/reviews/{id}", h.adminGated(module.IDProductReviews, h.deleteReview))

	// Admin: integrations
	mux.Handle("POST /api/admin/orders/{id}/courier", h.adminGated(module.IDCourier, h.shipOrder))
	mux.Handle("GET /api/admin/courier/balance", h.adminGated(module.IDCourier, h.courierBalance))
	mux.Handle("GET /api/admin/courier/status", h.adminGated(module.IDCourier, h.courierStatus))

	mux.Handle("POST /api/admin/whatsapp/send", h.adminGated(module.IDWhatsApp, h.sendWhatsApp))
	mux.Handle("POST /api/admin/whatsapp/broadcast", h.adminGated(module.IDWhatsApp, h.broadcastWhatsApp))
	mux.Handle("POST /api/admin/whatsapp/cart-recovery", h.adminGated(module.IDWhatsApp, h.cartRecovery))

	mux.Handle("GET /api/admin/fraud-check", h.adminGated(module.IDFraudCheck, h.fraudCheck))

	return mux
}

// clientIP prefers the first X-Forwarded-For hop over the socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// queryBool treats "true" and "1" as true.
func queryBool(r *http.Request, key string) bool {
	v := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	return v == "true" || v == "1"
}

// page reads the optional page/limit query parameters. Values are clamped
// by the services.
func page(r *http.Request) (int, int, error) {
	p, err := transport.QueryInt(r, "page", 0)
	if err != nil {
		return 0, 0, err
	}
	l, err := transport.QueryInt(r, "limit", 0)
	if err != nil {
		return 0, 0, err
	}
	return p, l, nil
}
