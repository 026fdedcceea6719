package handlers

import (
	"net/http"

	"grandhaven/models"
	"grandhaven/services/catalog"
	"grandhaven/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes rooms, menu items and packages.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListRoomsHandler handles GET /api/rooms.
func (h *CatalogHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.Service.ListRooms()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomHandler handles GET /api/rooms/:id.
func (h *CatalogHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.Service.GetRoom(c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoomHandler handles POST /api/admin/rooms (manager).
func (h *CatalogHandler) CreateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}
	created, err := h.Service.CreateRoom(&room)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateRoomHandler handles PUT /api/admin/rooms/:id (manager).
func (h *CatalogHandler) UpdateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}
	room.ID = c.Param("id")
	updated, err := h.Service.UpdateRoom(&room)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRoomHandler handles DELETE /api/admin/rooms/:id (manager).
func (h *CatalogHandler) DeleteRoomHandler(c *gin.Context) {
	if err := h.Service.DeleteRoom(c.Param("id")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

// SetRoomStatusHandler handles PUT /api/admin/rooms/:id/status (staff).
func (h *CatalogHandler) SetRoomStatusHandler(c *gin.Context) {
	var req struct {
		Status models.RoomStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}
	if err := h.Service.SetRoomStatus(c.Param("id"), req.Status); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room status updated"})
}

// ListMenuItemsHandler handles GET /api/menu.
func (h *CatalogHandler) ListMenuItemsHandler(c *gin.Context) {
	items, err := h.Service.ListMenuItems()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItemHandler handles POST /api/admin/menu (manager).
func (h *CatalogHandler) CreateMenuItemHandler(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}
	created, err := h.Service.CreateMenuItem(&item)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateMenuItemHandler handles PUT /api/admin/menu/:id (manager).
func (h *CatalogHandler) UpdateMenuItemHandler(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}
	item.ID = c.Param("id")
	updated, err := h.Service.UpdateMenuItem(&item)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMenuItemHandler handles DELETE /api/admin/menu/:id (manager).
func (h *CatalogHandler) DeleteMenuItemHandler(c *gin.Context) {
	if err := h.Service.DeleteMenuItem(c.Param("id")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}

// ListPackagesHandler handles GET /api/packages.
func (h *CatalogHandler) ListPackagesHandler(c *gin.Context) {
	pkgs, err := h.Service.ListPackages()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// GetPackageHandler handles GET /api/packages/:id.
func (h *CatalogHandler) GetPackageHandler(c *gin.Context) {
	pkg, err := h.Service.GetPackage(c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// CreatePackageHandler handles POST /api/admin/packages (manager).
func (h *CatalogHandler) CreatePackageHandler(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}
	created, err := h.Service.CreatePackage(&pkg)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePackageHandler handles PUT /api/admin/packages/:id (manager).
func (h *CatalogHandler) UpdatePackageHandler(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}
	pkg.ID = c.Param("id")
	updated, err := h.Service.UpdatePackage(&pkg)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePackageHandler handles DELETE /api/admin/packages/:id (manager).
func (h *CatalogHandler) DeletePackageHandler(c *gin.Context) {
	if err := h.Service.DeletePackage(c.Param("id")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}
