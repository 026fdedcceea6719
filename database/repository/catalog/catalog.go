package catalogRepo

import "grandhaven/models"

// CatalogRepository defines persistence for the read-mostly catalog records
// referenced by booking and order logic: menu items, packages and gallery.
type CatalogRepository interface {
	CreateMenuItem(item *models.MenuItem) error
	UpdateMenuItem(item *models.MenuItem) error
	DeleteMenuItem(id string) error
	GetMenuItem(id string) (*models.MenuItem, error)
	ListMenuItems() ([]models.MenuItem, error)

	CreatePackage(pkg *models.Package) error
	UpdatePackage(pkg *models.Package) error
	DeletePackage(id string) error
	GetPackage(id string) (*models.Package, error)
	ListPackages() ([]models.Package, error)

	CreateGalleryImage(img *models.GalleryImage) error
	DeleteGalleryImage(id string) (*models.GalleryImage, error)
	ListGalleryImages() ([]models.GalleryImage, error)
}
