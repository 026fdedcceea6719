package catalog

import (
	"context"
	"encoding/json"
	"time"

	"grandhaven/models"
	"grandhaven/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	menuCacheKey = "catalog:menu"
	menuCacheTTL = 5 * time.Minute
)

// --- Rooms ---

func (s *DefaultCatalogService) CreateRoom(room *models.Room) (*models.Room, error) {
	if room.RoomNumber == "" {
		return nil, utils.ValidationError("room number is required")
	}
	if room.Price < 0 {
		return nil, utils.ValidationError("room price must not be negative")
	}
	if room.Total < 1 {
		return nil, utils.ValidationError("room total capacity must be at least 1")
	}
	if room.Available < 0 || room.Available > room.Total {
		return nil, utils.ValidationError("available units must be between 0 and total capacity")
	}

	room.ID = uuid.New().String()
	if room.Status == "" {
		room.Status = models.RoomStatusGood
	}
	if err := s.RoomRepo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *DefaultCatalogService) UpdateRoom(room *models.Room) (*models.Room, error) {
	if room.Available < 0 || room.Available > room.Total {
		return nil, utils.ValidationError("available units must be between 0 and total capacity")
	}
	if err := s.RoomRepo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *DefaultCatalogService) DeleteRoom(id string) error {
	return s.RoomRepo.Delete(id)
}

func (s *DefaultCatalogService) GetRoom(id string) (*models.Room, error) {
	return s.RoomRepo.GetByID(id)
}

func (s *DefaultCatalogService) ListRooms() ([]models.Room, error) {
	return s.RoomRepo.List()
}

func (s *DefaultCatalogService) SetRoomStatus(id string, status models.RoomStatus) error {
	switch status {
	case models.RoomStatusGood, models.RoomStatusNeedsCleaning,
		models.RoomStatusMaintenanceRequired, models.RoomStatusOutOfOrder:
	default:
		return utils.ValidationError("unknown room status")
	}
	return s.RoomRepo.SetStatus(id, status)
}

// --- Menu items ---

func (s *DefaultCatalogService) CreateMenuItem(item *models.MenuItem) (*models.MenuItem, error) {
	if item.Name == "" {
		return nil, utils.ValidationError("menu item name is required")
	}
	if item.Price < 0 {
		return nil, utils.ValidationError("menu item price must not be negative")
	}

	item.ID = uuid.New().String()
	if err := s.CatalogRepo.CreateMenuItem(item); err != nil {
		return nil, err
	}
	s.invalidateMenuCache()
	return item, nil
}

func (s *DefaultCatalogService) UpdateMenuItem(item *models.MenuItem) (*models.MenuItem, error) {
	if err := s.CatalogRepo.UpdateMenuItem(item); err != nil {
		return nil, err
	}
	s.invalidateMenuCache()
	return item, nil
}

func (s *DefaultCatalogService) DeleteMenuItem(id string) error {
	if err := s.CatalogRepo.DeleteMenuItem(id); err != nil {
		return err
	}
	s.invalidateMenuCache()
	return nil
}

// ListMenuItems serves the menu from the cache when possible; the menu is
// read on every order validation.
func (s *DefaultCatalogService) ListMenuItems() ([]models.MenuItem, error) {
	ctx := context.Background()

	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, menuCacheKey).Result(); err == nil {
			var items []models.MenuItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.CatalogRepo.ListMenuItems()
	if err != nil {
		return nil, err
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.CacheClient.Set(ctx, menuCacheKey, data, menuCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache menu", zap.Error(err))
			}
		}
	}
	return items, nil
}

func (s *DefaultCatalogService) invalidateMenuCache() {
	if s.CacheClient == nil {
		return
	}
	if err := s.CacheClient.Del(context.Background(), menuCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate menu cache", zap.Error(err))
	}
}

// --- Packages ---

func (s *DefaultCatalogService) CreatePackage(pkg *models.Package) (*models.Package, error) {
	if err := pkg.Validate(); err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	pkg.ID = uuid.New().String()
	if err := s.CatalogRepo.CreatePackage(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *DefaultCatalogService) UpdatePackage(pkg *models.Package) (*models.Package, error) {
	if err := pkg.Validate(); err != nil {
		return nil, utils.ValidationError(err.Error())
	}
	if err := s.CatalogRepo.UpdatePackage(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *DefaultCatalogService) DeletePackage(id string) error {
	return s.CatalogRepo.DeletePackage(id)
}

func (s *DefaultCatalogService) GetPackage(id string) (*models.Package, error) {
	return s.CatalogRepo.GetPackage(id)
}

func (s *DefaultCatalogService) ListPackages() ([]models.Package, error) {
	return s.CatalogRepo.ListPackages()
}
