package routes

import (
	"localchef-api/config"
	"localchef-api/handlers"
	"localchef-api/middleware"

	"github.com/gin-gonic/gin"
)

// authPolicy decides per route whether a verified credential is required.
// Today only the orders listing is protected; every other route trusts the
// client-supplied email, and even the protected one does not cross-check the
// verified principal against the query email. Tightening either is a change
// here, not in the handlers.
func authPolicy(secret []byte, required bool) gin.HandlerFunc {
	if required {
		return middleware.AuthRequired(secret)
	}
	return func(c *gin.Context) { c.Next() }
}

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	secret := cfg.JWTSecret

	r.GET("/", handlers.Live)
	r.GET("/health", handlers.Health)
	r.POST("/auth/login", handlers.Login(secret))

	// Meals
	r.GET("/meals", authPolicy(secret, false), handlers.ListMeals)
	r.GET("/meals/chef/:email", authPolicy(secret, false), handlers.ListMealsByChef)
	r.GET("/meals/:id", authPolicy(secret, false), handlers.GetMeal)
	r.POST("/meals", authPolicy(secret, false), handlers.CreateMeal)
	r.PUT("/meals/:id", authPolicy(secret, false), handlers.UpdateMeal)
	r.DELETE("/meals/:id", authPolicy(secret, false), handlers.DeleteMeal)

	// Reviews (append-only)
	r.GET("/all-reviews", authPolicy(secret, false), handlers.ListAllReviews)
	r.GET("/reviews", authPolicy(secret, false), handlers.ListReviewsByEmail)
	r.POST("/reviews", authPolicy(secret, false), handlers.CreateReview)

	// Orders
	r.POST("/orders", authPolicy(secret, false), handlers.CreateOrder)
	r.GET("/orders", authPolicy(secret, true), handlers.ListOrdersByEmail)

	// Favorites
	r.POST("/favorites", authPolicy(secret, false), handlers.CreateFavorite)
	r.GET("/favorites", authPolicy(secret, false), handlers.ListFavoritesByEmail)
	r.DELETE("/favorites/:id", authPolicy(secret, false), handlers.DeleteFavorite)

	// Users
	r.POST("/users", authPolicy(secret, false), handlers.CreateUser)
	r.GET("/users/:email", authPolicy(secret, false), handlers.GetUser)
	r.GET("/users/:email/role", authPolicy(secret, false), handlers.GetUserRole)

	// Role requests
	r.POST("/requests", authPolicy(secret, false), handlers.CreateRoleRequest)
	r.GET("/requests", authPolicy(secret, false), handlers.ListRoleRequests)
	r.PATCH("/requests/:id", authPolicy(secret, false), handlers.UpdateRoleRequest)
}
