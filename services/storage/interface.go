package storage

import (
	"context"
	"mime/multipart"
)

// StorageService stores uploaded photos and returns their public URLs.
type StorageService interface {
	UploadPhoto(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
	DeletePhoto(ctx context.Context, publicID string) error
}
