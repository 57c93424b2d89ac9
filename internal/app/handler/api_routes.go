package handler

import (
	"storerating/internal/app/middleware"
	"storerating/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация (роль всегда user)
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Admin, role.User, role.StoreOwner), h.AuthHandler.GetUserProfile)
		auth.PUT("/password", authMiddleware.WithAuthCheck(role.Admin, role.User, role.StoreOwner), h.AuthHandler.ChangePassword)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Admin, role.User, role.StoreOwner), h.AuthHandler.LogoutUser)
	}

	// ============ Пользователи - только администратор ============
	users := api.Group("/users")
	users.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser) // роль выбирается администратором
	}

	// ============ Магазины ============
	stores := api.Group("/stores")
	{
		// Просмотр доступен всем авторизованным
		stores.GET("", authMiddleware.WithAuthCheck(role.Admin, role.User, role.StoreOwner), h.GetStores)
		stores.GET("/:id", authMiddleware.WithAuthCheck(role.Admin, role.User, role.StoreOwner), h.GetStore)

		// Оценки ставят пользователи без роли store
		stores.POST("/:id/rating", authMiddleware.WithAuthCheck(role.User, role.Admin), h.SubmitRating)
		stores.GET("/:id/my-rating", authMiddleware.WithAuthCheck(role.User, role.Admin), h.GetMyRating)

		// Только для администратора
		stores.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateStore) // создание вместе с владельцем
		stores.GET("/:id/raters", authMiddleware.WithAuthCheck(role.Admin), h.GetStoreRaters)
		stores.POST("/:id/image", authMiddleware.WithAuthCheck(role.Admin), h.UploadStoreImage)
	}

	// ============ Панель владельца магазина ============
	owner := api.Group("/owner")
	owner.Use(authMiddleware.WithAuthCheck(role.StoreOwner))
	{
		owner.GET("/store", h.GetOwnerStore)
	}

	// ============ Панель администратора ============
	dashboard := api.Group("/dashboard")
	dashboard.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		dashboard.GET("/stats", h.GetDashboardStats)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}
