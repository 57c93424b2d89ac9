package handler

import (
	"fmt"

	"storerating/internal/app/ds"
	"storerating/internal/app/dto"
	"storerating/internal/app/repository"
	"storerating/internal/app/role"
	"storerating/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// Получение текущего пользователя из контекста (установлен middleware)
func (h *APIHandler) getUserFromContext(c *gin.Context) (string, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return "", "", fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(string)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return "", r, fmt.Errorf("invalid user ID")
	}

	return id, r, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) validationErrorResponse(c *gin.Context, statusCode int, errors map[string]string) {
	c.JSON(statusCode, dto.ValidationErrorResponse{
		Status: "fail",
		Errors: errors,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

func toUserResponse(user ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role,
	}
}

func toStoreRaterResponses(raters []repository.StoreRater) []dto.StoreRaterResponse {
	result := make([]dto.StoreRaterResponse, len(raters))
	for i, rater := range raters {
		result[i] = dto.StoreRaterResponse{
			ID:      rater.ID,
			Name:    rater.Name,
			Email:   rater.Email,
			Rating:  rater.Rating,
			RatedAt: rater.RatedAt,
		}
	}
	return result
}

// toStoreResponse резолвит имя файла картинки во временный URL если MinIO настроен
func (h *APIHandler) toStoreResponse(c *gin.Context, store repository.StoreWithRating) dto.StoreResponse {
	imageURL := ""
	if store.ImageURL != "" && h.MinIOClient != nil {
		url, err := h.MinIOClient.GetFileURL(c.Request.Context(), store.ImageURL)
		if err != nil {
			logrus.Error("failed to resolve image URL: ", err)
		} else {
			imageURL = url
		}
	}

	return dto.StoreResponse{
		ID:       store.ID,
		Name:     store.Name,
		Email:    store.Email,
		Address:  store.Address,
		Rating:   store.Rating,
		ImageURL: imageURL,
	}
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
