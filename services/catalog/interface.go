package catalog

import (
	catalogRepo "grandhaven/database/repository/catalog"
	roomRepo "grandhaven/database/repository/room"
	"grandhaven/models"

	"github.com/go-redis/redis/v8"
)

// CatalogService is the read-mostly surface for rooms, menu items and
// promotional packages.
type CatalogService interface {
	CreateRoom(room *models.Room) (*models.Room, error)
	UpdateRoom(room *models.Room) (*models.Room, error)
	DeleteRoom(id string) error
	GetRoom(id string) (*models.Room, error)
	ListRooms() ([]models.Room, error)
	SetRoomStatus(id string, status models.RoomStatus) error

	CreateMenuItem(item *models.MenuItem) (*models.MenuItem, error)
	UpdateMenuItem(item *models.MenuItem) (*models.MenuItem, error)
	DeleteMenuItem(id string) error
	ListMenuItems() ([]models.MenuItem, error)

	CreatePackage(pkg *models.Package) (*models.Package, error)
	UpdatePackage(pkg *models.Package) (*models.Package, error)
	DeletePackage(id string) error
	GetPackage(id string) (*models.Package, error)
	ListPackages() ([]models.Package, error)
}

// DefaultCatalogService implements CatalogService. CacheClient may be nil, in
// which case menu listings skip the cache.
type DefaultCatalogService struct {
	RoomRepo    roomRepo.RoomRepository
	CatalogRepo catalogRepo.CatalogRepository
	CacheClient *redis.Client
}
