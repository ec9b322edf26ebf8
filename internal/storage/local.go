package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	resumeDir = "resumes"
	// URLPrefix is where the router serves the upload directory.
	URLPrefix = "/uploads"
)

var (
	ErrFileTooLarge = errors.New("file too large")
	ErrFileType     = errors.New("only .pdf, .doc and .docx files are allowed")
)

var resumeExtensions = []string{".pdf", ".doc", ".docx"}

// LocalStorage keeps uploaded resumes on the local filesystem.
type LocalStorage struct {
	basePath string
	maxBytes int64
}

// NewLocalStorage makes sure basePath/resumes exists.
func NewLocalStorage(basePath string, maxBytes int64) (*LocalStorage, error) {
	dir := filepath.Join(basePath, resumeDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
	}
	logrus.WithField("path", dir).Info("Upload directory ready")

	return &LocalStorage{basePath: basePath, maxBytes: maxBytes}, nil
}

func (s *LocalStorage) BasePath() string { return s.basePath }

// SaveResume stores fh under a random name and returns its public URL path,
// e.g. /uploads/resumes/<uuid>.pdf.
func (s *LocalStorage) SaveResume(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !slices.Contains(resumeExtensions, ext) {
		return "", ErrFileType
	}
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dstPath := filepath.Join(s.basePath, resumeDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dstPath, err)
	}

	// fh.Size comes from the client; cap the copy as well.
	n, err := io.Copy(dst, io.LimitReader(src, s.limit()+1))
	closeErr := dst.Close()
	switch {
	case err != nil:
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("write %s: %w", dstPath, err)
	case closeErr != nil:
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("close %s: %w", dstPath, closeErr)
	case s.maxBytes > 0 && n > s.maxBytes:
		_ = os.Remove(dstPath)
		return "", ErrFileTooLarge
	}

	logrus.WithFields(logrus.Fields{"filename": fh.Filename, "saved_as": name}).Info("Resume saved")
	return path.Join(URLPrefix, resumeDir, name), nil
}

// Delete removes a file previously returned by SaveResume. Missing files are not an error.
func (s *LocalStorage) Delete(urlPath string) error {
	if urlPath == "" {
		return nil
	}

	name := path.Base(urlPath)
	if name == "." || name == "/" || name == resumeDir {
		return fmt.Errorf("invalid file path: %s", urlPath)
	}

	full := filepath.Join(s.basePath, resumeDir, name)
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", full, err)
	}
	return nil
}

func (s *LocalStorage) limit() int64 {
	if s.maxBytes > 0 {
		return s.maxBytes
	}
	return 1 << 40
}
