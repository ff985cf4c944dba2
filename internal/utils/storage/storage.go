package storage

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"recipe-book/internal/utils"
)

// Storage persists uploaded media objects. Keys are relative paths like
// "recipe_images/ab12cd34ef56.jpg"; public links depend on the driver.
type Storage interface {
	UploadFile(file *multipart.FileHeader, folder string, allowedExts ...string) (string, error)
	DeleteFile(objectKey string) error
	GetPublicLink(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

var AllowImage = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var ErrExtensionNotAllowed = errors.New("file extension not allowed")

func extensionAllowed(name string, allowed []string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if len(allowed) == 0 {
		return ext, true
	}
	for _, a := range allowed {
		if ext == a {
			return ext, true
		}
	}
	return ext, false
}

// NewStorage picks the media driver from configuration; local disk unless
// STORAGE_DRIVER says otherwise.
func NewStorage() Storage {
	switch utils.GetConfig("STORAGE_DRIVER") {
	case "s3":
		return NewAwsS3()
	default:
		root := utils.GetConfig("MEDIA_ROOT")
		if root == "" {
			root = "./media"
		}
		return NewLocalStorage(root)
	}
}
