package handler

import (
	"net/http"

	"storerating/internal/app/ds"
	"storerating/internal/app/dto"
	"storerating/internal/app/role"
	"storerating/internal/app/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПОЛЬЗОВАТЕЛИ (только администратор) ============

// GetUsers получает список пользователей
// @Summary Список пользователей
// @Description Возвращает всех пользователей системы (только для администратора)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users [get]
func (h *APIHandler) GetUsers(c *gin.Context) {
	users, err := h.Repository.GetUsers(c.Request.Context())
	if err != nil {
		logrus.Error("Error getting users: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения пользователей")
		return
	}

	dtoUsers := make([]dto.UserResponse, len(users))
	for i, user := range users {
		dtoUsers[i] = toUserResponse(user)
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Users: dtoUsers,
		Total: len(dtoUsers),
	})
}

// GetUser получает одного пользователя
// @Summary Пользователь по ID
// @Description Возвращает пользователя; для владельца магазина добавляет средний рейтинг его магазина
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID пользователя"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [get]
func (h *APIHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.Repository.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения пользователя")
		return
	}
	if user == nil {
		h.errorResponse(c, http.StatusNotFound, "Пользователь не найден")
		return
	}

	response := toUserResponse(*user)

	// Владелец магазина связан с магазином по email
	if user.Role == role.StoreOwner {
		store, err := h.Repository.GetStoreByEmail(c.Request.Context(), user.Email)
		if err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения магазина владельца")
			return
		}
		if store != nil {
			rating, err := h.Repository.StoreAverageRating(c.Request.Context(), store.ID)
			if err != nil {
				h.errorResponse(c, http.StatusInternalServerError, "Ошибка расчета рейтинга")
				return
			}
			response.StoreID = store.ID
			response.StoreRating = &rating
		}
	}

	c.JSON(http.StatusOK, response)
}

// CreateUser создает пользователя с выбранной ролью
// @Summary Создание пользователя
// @Description Создает пользователя с указанной ролью (только для администратора)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "Данные пользователя"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users [post]
func (h *APIHandler) CreateUser(c *gin.Context) {
	var request dto.CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	formErrors := validation.ValidateUserForm(validation.UserFormValues{
		Name:     request.Name,
		Email:    request.Email,
		Address:  request.Address,
		Password: request.Password,
	})
	if !request.Role.Valid() {
		formErrors["role"] = "Role must be one of admin, user, store"
	}
	if len(formErrors) > 0 {
		h.validationErrorResponse(c, http.StatusBadRequest, formErrors)
		return
	}

	existing, err := h.Repository.GetUserByEmail(c.Request.Context(), request.Email)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка проверки email")
		return
	}
	if existing != nil {
		h.errorResponse(c, http.StatusBadRequest, "Пользователь с таким email уже существует")
		return
	}

	user, err := h.Repository.AddUser(c.Request.Context(), ds.User{
		Name:     request.Name,
		Email:    request.Email,
		Address:  request.Address,
		Password: request.Password,
		Role:     request.Role,
	})
	if err != nil {
		logrus.Error("Error creating user: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания пользователя")
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(*user))
}

// GetDashboardStats счетчики для панели администратора
// @Summary Статистика системы
// @Description Возвращает количество пользователей, магазинов и оценок
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/dashboard/stats [get]
func (h *APIHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.Repository.GetDashboardStats(c.Request.Context())
	if err != nil {
		logrus.Error("Error getting dashboard stats: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения статистики")
		return
	}

	c.JSON(http.StatusOK, dto.DashboardStatsResponse{
		TotalUsers:   stats.TotalUsers,
		TotalStores:  stats.TotalStores,
		TotalRatings: stats.TotalRatings,
		NormalUsers:  stats.NormalUsers,
		StoreOwners:  stats.StoreOwners,
		AdminUsers:   stats.AdminUsers,
	})
}
