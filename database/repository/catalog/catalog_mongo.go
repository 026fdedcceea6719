package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grandhaven/database"
	"grandhaven/models"
	"grandhaven/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	menu     *mongo.Collection
	packages *mongo.Collection
	gallery  *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	repo := &MongoCatalogRepo{
		menu:     database.Collection("menu_items"),
		packages: database.Collection("packages"),
		gallery:  database.Collection("gallery"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	unique := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	for _, coll := range []*mongo.Collection{r.menu, r.packages, r.gallery} {
		if _, err := coll.Indexes().CreateMany(ctx, unique); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
	}
	return nil
}

// --- Menu items ---

func (r *MongoCatalogRepo) CreateMenuItem(item *models.MenuItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.menu.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) UpdateMenuItem(item *models.MenuItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	item.UpdatedAt = time.Now()
	result, err := r.menu.UpdateOne(ctx, bson.M{"id": item.ID}, bson.M{"$set": item})
	if err != nil {
		return fmt.Errorf("failed to update menu item %s: %w", item.ID, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError(fmt.Sprintf("menu item %s not found", item.ID))
	}
	return nil
}

func (r *MongoCatalogRepo) DeleteMenuItem(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.menu.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete menu item %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError(fmt.Sprintf("menu item %s not found", id))
	}
	return nil
}

func (r *MongoCatalogRepo) GetMenuItem(id string) (*models.MenuItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var item models.MenuItem
	err := r.menu.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError(fmt.Sprintf("menu item %s not found", id))
		}
		return nil, fmt.Errorf("failed to fetch menu item %s: %w", id, err)
	}
	return &item, nil
}

func (r *MongoCatalogRepo) ListMenuItems() ([]models.MenuItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.menu.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return items, nil
}

// --- Packages ---

func (r *MongoCatalogRepo) CreatePackage(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if _, err := r.packages.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) UpdatePackage(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pkg.UpdatedAt = time.Now()
	result, err := r.packages.UpdateOne(ctx, bson.M{"id": pkg.ID}, bson.M{"$set": pkg})
	if err != nil {
		return fmt.Errorf("failed to update package %s: %w", pkg.ID, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError(fmt.Sprintf("package %s not found", pkg.ID))
	}
	return nil
}

func (r *MongoCatalogRepo) DeletePackage(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.packages.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete package %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError(fmt.Sprintf("package %s not found", id))
	}
	return nil
}

func (r *MongoCatalogRepo) GetPackage(id string) (*models.Package, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.Package
	err := r.packages.FindOne(ctx, bson.M{"id": id}).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError(fmt.Sprintf("package %s not found", id))
		}
		return nil, fmt.Errorf("failed to fetch package %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *MongoCatalogRepo) ListPackages() ([]models.Package, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.packages.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer cursor.Close(ctx)

	var pkgs []models.Package
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return pkgs, nil
}

// --- Gallery ---

func (r *MongoCatalogRepo) CreateGalleryImage(img *models.GalleryImage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	img.CreatedAt = time.Now()
	if _, err := r.gallery.InsertOne(ctx, img); err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

// DeleteGalleryImage removes the record and returns it so the caller can
// clean up object storage afterwards.
func (r *MongoCatalogRepo) DeleteGalleryImage(id string) (*models.GalleryImage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var img models.GalleryImage
	err := r.gallery.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&img)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError(fmt.Sprintf("gallery image %s not found", id))
		}
		return nil, fmt.Errorf("failed to delete gallery image %s: %w", id, err)
	}
	return &img, nil
}

func (r *MongoCatalogRepo) ListGalleryImages() ([]models.GalleryImage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.gallery.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []models.GalleryImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode gallery images: %w", err)
	}
	return images, nil
}
