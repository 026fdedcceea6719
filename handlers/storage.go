package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	catalogRepo "grandhaven/database/repository/catalog"
	"grandhaven/models"
	"grandhaven/services/storage"
	"grandhaven/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const galleryFolder = "grandhaven/gallery"

// StorageHandler exposes the gallery upload surface backed by object storage.
type StorageHandler struct {
	Storage storage.StorageService
	Repo    catalogRepo.CatalogRepository
}

// NewStorageHandler creates a StorageHandler.
func NewStorageHandler(svc storage.StorageService, repo catalogRepo.CatalogRepository) *StorageHandler {
	return &StorageHandler{Storage: svc, Repo: repo}
}

// ListGalleryHandler handles GET /api/gallery.
func (h *StorageHandler) ListGalleryHandler(c *gin.Context) {
	images, err := h.Repo.ListGalleryImages()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// UploadGalleryImageHandler handles POST /api/admin/gallery (manager). The
// image arrives as multipart form data under the "file" field.
func (h *StorageHandler) UploadGalleryImageHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, utils.ValidationError("missing file field"))
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.JSONError(c, utils.UpstreamError("could not store uploaded file", err, true))
		return
	}
	defer os.Remove(tmpPath)

	publicID, url, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, galleryFolder)
	if err != nil {
		utils.JSONError(c, utils.UpstreamError("image upload failed", err, true))
		return
	}

	img := &models.GalleryImage{
		ID:        uuid.NewString(),
		Title:     c.PostForm("title"),
		PublicID:  publicID,
		URL:       url,
		CreatedAt: time.Now(),
	}
	if err := h.Repo.CreateGalleryImage(img); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

// DeleteGalleryImageHandler handles DELETE /api/admin/gallery/:id (manager).
// The database record is removed first; a failed storage delete only leaves an
// orphaned object behind, so it is logged and not surfaced to the caller.
func (h *StorageHandler) DeleteGalleryImageHandler(c *gin.Context) {
	img, err := h.Repo.DeleteGalleryImage(c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	if err := h.Storage.DeleteFile(c.Request.Context(), img.PublicID); err != nil {
		utils.GetLogger().Warn("gallery image left orphaned in object storage",
			zap.String("publicId", img.PublicID), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "gallery image deleted"})
}
