package handler

import (
	"io"
	"net/http"

	"storerating/internal/app/ds"
	"storerating/internal/app/dto"
	"storerating/internal/app/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН МАГАЗИНЫ ============

// GetStores получает список магазинов со средними оценками
// @Summary Список магазинов
// @Description Возвращает все магазины вместе со средним рейтингом каждого
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StoreListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/stores [get]
func (h *APIHandler) GetStores(c *gin.Context) {
	stores, err := h.Repository.AllStoresWithRatings(c.Request.Context())
	if err != nil {
		logrus.Error("Error getting stores: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения магазинов")
		return
	}

	dtoStores := make([]dto.StoreResponse, len(stores))
	for i, store := range stores {
		dtoStores[i] = h.toStoreResponse(c, store)
	}

	c.JSON(http.StatusOK, dto.StoreListResponse{
		Stores: dtoStores,
		Total:  len(dtoStores),
	})
}

// GetStore получает один магазин со средней оценкой
// @Summary Магазин по ID
// @Description Возвращает магазин вместе со средним рейтингом
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID магазина"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/stores/{id} [get]
func (h *APIHandler) GetStore(c *gin.Context) {
	id := c.Param("id")

	store, err := h.Repository.GetStoreWithRating(c.Request.Context(), id)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения магазина")
		return
	}
	if store == nil {
		h.errorResponse(c, http.StatusNotFound, "Магазин не найден")
		return
	}

	c.JSON(http.StatusOK, h.toStoreResponse(c, *store))
}

// CreateStore создает магазин вместе с пользователем-владельцем
// @Summary Создание магазина
// @Description Создает магазин и парного пользователя с ролью store и тем же email (только для администратора)
// @Tags Stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStoreRequest true "Данные магазина и пароль владельца"
// @Success 201 {object} dto.CreateStoreResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/stores [post]
func (h *APIHandler) CreateStore(c *gin.Context) {
	var request dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// Форма магазина без пароля; пароль владельца валидируется отдельно
	formErrors := validation.ValidateStoreForm(validation.StoreFormValues{
		Name:    request.Name,
		Email:   request.Email,
		Address: request.Address,
	})
	if msg := validation.ValidatePassword(request.OwnerPassword); msg != "" {
		formErrors["ownerPassword"] = msg
	}
	if len(formErrors) > 0 {
		h.validationErrorResponse(c, http.StatusBadRequest, formErrors)
		return
	}

	// email должен быть свободен и среди пользователей, и среди магазинов
	existingUser, err := h.Repository.GetUserByEmail(c.Request.Context(), request.Email)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка проверки email")
		return
	}
	existingStore, err := h.Repository.GetStoreByEmail(c.Request.Context(), request.Email)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка проверки email")
		return
	}
	if existingUser != nil || existingStore != nil {
		h.errorResponse(c, http.StatusBadRequest, "Email уже используется")
		return
	}

	store, owner, err := h.Repository.CreateStoreWithOwner(c.Request.Context(), ds.Store{
		Name:    request.Name,
		Email:   request.Email,
		Address: request.Address,
	}, request.OwnerPassword)
	if err != nil {
		logrus.Error("Error creating store: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания магазина")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateStoreResponse{
		Store: dto.StoreResponse{
			ID:      store.ID,
			Name:    store.Name,
			Email:   store.Email,
			Address: store.Address,
		},
		Owner: toUserResponse(*owner),
	})
}

// SubmitRating ставит или обновляет оценку магазина текущим пользователем
// @Summary Оценка магазина
// @Description Создает или обновляет оценку пары (пользователь, магазин); повторная оценка заменяет значение
// @Tags Ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID магазина"
// @Param request body dto.SubmitRatingRequest true "Оценка 1-5"
// @Success 200 {object} dto.RatingResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/stores/{id}/rating [post]
func (h *APIHandler) SubmitRating(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var request dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if msg := validation.ValidateRating(request.Rating); msg != "" {
		h.validationErrorResponse(c, http.StatusBadRequest, map[string]string{"rating": msg})
		return
	}

	storeID := c.Param("id")
	store, err := h.Repository.GetStoreByID(c.Request.Context(), storeID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения магазина")
		return
	}
	if store == nil {
		h.errorResponse(c, http.StatusNotFound, "Магазин не найден")
		return
	}

	rating, err := h.Repository.AddOrUpdateRating(c.Request.Context(), userID, storeID, request.Rating)
	if err != nil {
		logrus.Error("Error saving rating: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения оценки")
		return
	}

	c.JSON(http.StatusOK, dto.RatingResponse{
		UserID:    rating.UserID,
		StoreID:   rating.StoreID,
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	})
}

// GetMyRating получает оценку текущего пользователя для магазина
// @Summary Моя оценка магазина
// @Description Возвращает оценку текущего пользователя для магазина, 404 если оценки еще нет
// @Tags Ratings
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID магазина"
// @Success 200 {object} dto.RatingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/stores/{id}/my-rating [get]
func (h *APIHandler) GetMyRating(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	storeID := c.Param("id")
	rating, err := h.Repository.GetRatingByUserAndStore(c.Request.Context(), userID, storeID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения оценки")
		return
	}
	if rating == nil {
		h.errorResponse(c, http.StatusNotFound, "Оценка не найдена")
		return
	}

	c.JSON(http.StatusOK, dto.RatingResponse{
		UserID:    rating.UserID,
		StoreID:   rating.StoreID,
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	})
}

// GetStoreRaters получает пользователей, оценивших магазин
// @Summary Оценившие пользователи
// @Description Возвращает оценки магазина вместе с данными оценивших пользователей (только для администратора)
// @Tags Ratings
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID магазина"
// @Success 200 {object} []dto.StoreRaterResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/stores/{id}/raters [get]
func (h *APIHandler) GetStoreRaters(c *gin.Context) {
	storeID := c.Param("id")

	store, err := h.Repository.GetStoreByID(c.Request.Context(), storeID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения магазина")
		return
	}
	if store == nil {
		h.errorResponse(c, http.StatusNotFound, "Магазин не найден")
		return
	}

	raters, err := h.Repository.GetUsersWhoRatedStore(c.Request.Context(), storeID)
	if err != nil {
		logrus.Error("Error getting raters: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения оценок")
		return
	}

	c.JSON(http.StatusOK, toStoreRaterResponses(raters))
}

// GetOwnerStore панель владельца: свой магазин и его оценки
// @Summary Магазин владельца
// @Description Возвращает магазин текущего владельца (связь по email), его рейтинг и список оценивших
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OwnerDashboardResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/owner/store [get]
func (h *APIHandler) GetOwnerStore(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	user, err := h.Repository.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения пользователя")
		return
	}
	if user == nil {
		h.errorResponse(c, http.StatusNotFound, "Пользователь не найден")
		return
	}

	// Магазин владельца находится по совпадению email
	store, err := h.Repository.GetStoreByEmail(c.Request.Context(), user.Email)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения магазина")
		return
	}
	if store == nil {
		h.errorResponse(c, http.StatusNotFound, "Магазин для этого владельца не найден")
		return
	}

	withRating, err := h.Repository.GetStoreWithRating(c.Request.Context(), store.ID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка расчета рейтинга")
		return
	}

	raters, err := h.Repository.GetUsersWhoRatedStore(c.Request.Context(), store.ID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения оценок")
		return
	}

	c.JSON(http.StatusOK, dto.OwnerDashboardResponse{
		Store:  h.toStoreResponse(c, *withRating),
		Raters: toStoreRaterResponses(raters),
	})
}

// UploadStoreImage загружает картинку магазина в MinIO
// @Summary Загрузка картинки магазина
// @Description Загружает изображение в объектное хранилище и привязывает его к магазину (только для администратора)
// @Tags Stores
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID магазина"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/stores/{id}/image [post]
func (h *APIHandler) UploadStoreImage(c *gin.Context) {
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "Загрузка изображений не настроена")
		return
	}

	storeID := c.Param("id")
	store, err := h.Repository.GetStoreByID(c.Request.Context(), storeID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения магазина")
		return
	}
	if store == nil {
		h.errorResponse(c, http.StatusNotFound, "Магазин не найден")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл изображения не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Не удалось открыть файл")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Не удалось прочитать файл")
		return
	}

	filename, err := h.MinIOClient.UploadStoreImage(c.Request.Context(), storeID, fileData, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
		return
	}

	// Старая картинка больше не нужна
	if store.ImageURL != "" {
		if err := h.MinIOClient.DeleteFile(c.Request.Context(), store.ImageURL); err != nil {
			logrus.Warn("failed to delete old image: ", err)
		}
	}

	if _, err := h.Repository.UpdateStore(c.Request.Context(), ds.Store{ID: storeID, ImageURL: filename}); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения магазина")
		return
	}

	h.successResponse(c, http.StatusOK, "изображение загружено", gin.H{"filename": filename})
}
