package uploads_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/inventario-app/inventario-api/internal/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG header so MIME sniffing sees image/png.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func multipartFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	fw, err := mw.CreateFormFile("foto", filename)
	require.NoError(t, err)

	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	file, header, err := req.FormFile("foto")
	require.NoError(t, err)

	t.Cleanup(func() { file.Close() })

	return file, header
}

func filesIn(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names
}

func TestStoreSave(t *testing.T) {
	t.Run("Valid image gets a timestamped name", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		store, err := uploads.New(dir, 5*1024*1024)
		require.NoError(t, err)

		file, header := multipartFile(t, "photo.PNG", pngBytes)

		// Act
		name, err := store.Save(file, header)

		// Assert
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d+\.png$`), name)

		written, readErr := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, readErr)
		assert.Equal(t, pngBytes, written, "stored file must hold the full upload, not the sniffed prefix")
	})

	t.Run("Non-image is rejected with no file written", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		store, err := uploads.New(dir, 5*1024*1024)
		require.NoError(t, err)

		file, header := multipartFile(t, "notes.txt", []byte("plain text, not an image"))

		// Act
		_, err = store.Save(file, header)

		// Assert
		require.ErrorIs(t, err, uploads.ErrNotImage)
		assert.Empty(t, filesIn(t, dir))
	})

	t.Run("Oversized upload is rejected before sniffing", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		store, err := uploads.New(dir, 8)
		require.NoError(t, err)

		file, header := multipartFile(t, "big.png", pngBytes)

		// Act
		_, err = store.Save(file, header)

		// Assert
		require.ErrorIs(t, err, uploads.ErrTooLarge)
		assert.Empty(t, filesIn(t, dir))
	})

	t.Run("Missing directory is created", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")

		_, err := uploads.New(dir, 1024)

		require.NoError(t, err)
		assert.DirExists(t, dir)
	})
}
