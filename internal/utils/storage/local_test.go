package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 4096)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestLocalUploadIsContentAddressed(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root)

	key1, err := store.UploadFile(makeFileHeader(t, "pasta.jpg", []byte("same bytes")), "recipe_images", AllowImage...)
	require.NoError(t, err)
	assert.Regexp(t, `^recipe_images/[0-9a-f]{20}\.jpg$`, key1)

	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(key1)))
	require.NoError(t, err)
	assert.Equal(t, []byte("same bytes"), content)

	// Same content, different original name: same object.
	key2, err := store.UploadFile(makeFileHeader(t, "other.jpg", []byte("same bytes")), "recipe_images", AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	key3, err := store.UploadFile(makeFileHeader(t, "pasta.jpg", []byte("different bytes")), "recipe_images", AllowImage...)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3)
}

func TestLocalUploadRejectsDisallowedExtension(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	_, err := store.UploadFile(makeFileHeader(t, "malware.exe", []byte("nope")), "recipe_images", AllowImage...)
	assert.ErrorIs(t, err, ErrExtensionNotAllowed)
}

func TestLocalDeleteFile(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root)

	key, err := store.UploadFile(makeFileHeader(t, "salad.png", []byte("png bytes")), "recipe_images", AllowImage...)
	require.NoError(t, err)

	require.NoError(t, store.DeleteFile(key))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing object is not an error.
	assert.NoError(t, store.DeleteFile(key))
	assert.NoError(t, store.DeleteFile(""))
}

func TestLocalPublicLinkRoundTrip(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	link := store.GetPublicLink("recipe_images/abcdef.jpg")
	assert.Equal(t, "/media/recipe_images/abcdef.jpg", link)
	assert.Equal(t, "recipe_images/abcdef.jpg", store.GetObjectKeyFromLink(link))
	assert.Equal(t, "", store.GetObjectKeyFromLink("http://elsewhere/x.jpg"))
}
