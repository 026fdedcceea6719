package storage

import "context"

// StorageService is the object-storage collaborator behind the gallery.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (publicID, url string, err error)
	DeleteFile(ctx context.Context, publicID string) error
}
