// Package uploads persists product photos. Files are filtered by size and
// detected MIME type before anything touches the disk.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotImage = errors.New("only image uploads are allowed")
	ErrTooLarge = errors.New("uploaded file exceeds the size limit")
)

type Store struct {
	dir      string
	maxBytes int64
}

func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}

	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save validates the upload and writes it under a timestamp-based name,
// returning the stored filename. Rejected uploads leave no file behind.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxBytes {
		return "", ErrTooLarge
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("detecting upload type: %w", err)
	}

	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotImage
	}

	// DetectReader consumed the header bytes
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding upload: %w", err)
	}

	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + strings.ToLower(filepath.Ext(header.Filename))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(dst.Name())

		return "", fmt.Errorf("writing upload file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("closing upload file: %w", err)
	}

	return name, nil
}
