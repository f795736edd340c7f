package routes

import (
	"hostel-management-api/handlers"
	"hostel-management-api/middleware"
	"hostel-management-api/payments"
	"hostel-management-api/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler against the injected store and payment
// gateway. Paths match the frontend contract, typos included
// (payment-hostory, request-mela).
func SetupRoutes(r *gin.Engine, st *store.Store, intents payments.IntentCreator) {
	users := &handlers.UserHandler{Store: st}
	meals := &handlers.MealHandler{Store: st}
	reviews := &handlers.ReviewHandler{Store: st}
	requests := &handlers.RequestHandler{Store: st}
	plans := &handlers.PlanHandler{Store: st}
	pay := &handlers.PaymentHandler{Store: st, Intents: intents}
	stats := &handlers.StatsHandler{Store: st}

	// ── Public routes ──────────────────────────────────────────────
	r.POST("/jwt", handlers.IssueToken)
	r.POST("/users", users.Register)

	r.GET("/meals", meals.List)
	r.GET("/meals/:id", meals.Get)
	r.PATCH("/meal-like/:id", meals.Like)
	r.PATCH("/review_count/:id", meals.ReviewCount)

	r.GET("/plans", plans.List)
	r.GET("/plans/:plan_name", plans.ByName)

	// ── Token-holder routes ────────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/users/admin/:email", users.AdminFlag)
		auth.GET("/general/users/:email", users.GetByEmail)

		auth.POST("/reviews", reviews.Create)
		auth.GET("/reviews/:email", reviews.Mine)
		auth.PATCH("/update-review/:id", reviews.Update)
		auth.DELETE("/review-delete/:id", reviews.Delete)

		auth.POST("/meal/request", requests.Create)
		auth.GET("/meal/request/:email", requests.Mine)
		auth.DELETE("/delete/request-mela/:id", requests.Delete)

		auth.POST("/create-payment-intent", pay.CreateIntent)
		auth.POST("/payments", pay.Record)
		auth.GET("/payment-hostory/:email", pay.History)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired(st))
	{
		admin.POST("/meals", meals.Create)
		admin.PATCH("/meals/:id", meals.Update)
		admin.DELETE("/delete-meal/:id", meals.Delete)
		admin.PATCH("/publish-meal/:id", meals.Publish)
		admin.GET("/sorted-meals", meals.Sorted)

		admin.GET("/users", users.List)
		admin.PATCH("/users/:email", users.UpdateBadge)
		admin.PATCH("/users/admin/:id", users.Promote)

		admin.GET("/reviews", reviews.ListAll)
		admin.DELETE("/admin-delete-review/:id", reviews.AdminDelete)

		admin.GET("/meal/request", requests.ListAll)
		admin.PATCH("/request-served/:id", requests.Serve)
		admin.GET("/requester/search", requests.Search)

		admin.GET("/admin-stats", stats.Dashboard)
	}
}
