package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/gofiber/fiber/v2/log"
)

// PublicMediaPrefix is the route under which local media is served.
const PublicMediaPrefix = "/media"

type localStorage struct {
	root string
}

func NewLocalStorage(root string) Storage {
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		log.Fatalf("error creating media directory: %v", err)
	}
	return &localStorage{root: root}
}

// UploadFile reads the whole upload into memory and stores it under a
// content-hashed name, so re-uploading identical bytes reuses one object.
func (s *localStorage) UploadFile(file *multipart.FileHeader, folder string, allowedExts ...string) (string, error) {
	ext, ok := extensionAllowed(file.Filename, allowedExts)
	if !ok {
		return "", ErrExtensionNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(content)
	objectKey := path.Join(folder, hex.EncodeToString(sum[:])[:20]+ext)

	dest := filepath.Join(s.root, filepath.FromSlash(objectKey))
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (s *localStorage) DeleteFile(objectKey string) error {
	if objectKey == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(objectKey)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *localStorage) GetPublicLink(objectKey string) string {
	return PublicMediaPrefix + "/" + objectKey
}

func (s *localStorage) GetObjectKeyFromLink(link string) string {
	if len(link) > len(PublicMediaPrefix)+1 && link[:len(PublicMediaPrefix)+1] == PublicMediaPrefix+"/" {
		return link[len(PublicMediaPrefix)+1:]
	}
	return ""
}
