package handlers

import (
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
	"github.com/SscSPs/sky_delivery_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// commonHandler serves endpoints shared by the admin pages, currently image upload.
type commonHandler struct {
	uploadService  portssvc.UploadSvc
	maxUploadBytes int64
}

// registerCommonRoutes registers the /common routes. uploadService may be nil
// when no bucket is configured; the upload route then answers 503.
func registerCommonRoutes(rg *gin.RouterGroup, uploadService portssvc.UploadSvc, maxUploadBytes int64) {
	h := &commonHandler{uploadService: uploadService, maxUploadBytes: maxUploadBytes}

	common := rg.Group("/common")
	{
		common.POST("/upload", h.upload)
	}
}

// upload godoc
// @Summary Upload an image
// @Description Stores the image in object storage and returns its public URL
// @Tags common
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Image file"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Storage not configured"
// @Security AdminToken
// @Router /common/upload [post]
func (h *commonHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if h.uploadService == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "File upload is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing multipart field \"file\""})
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unreadable file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unreadable file"})
		return
	}

	url, err := h.uploadService.UploadImage(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to upload file")
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}
