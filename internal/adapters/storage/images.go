// Package storage keeps uploaded chat images on local disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var (
	ErrExtensionNotAllowed = errors.New("file type not allowed")
	ErrNotAnImage          = errors.New("file content is not an image")
	ErrTooLarge            = errors.New("file too large")
	ErrBadReference        = errors.New("bad image reference")
)

var (
	allowedExtensions = []string{"png", "jpg", "jpeg", "gif"}
	allowedMIME       = []string{"image/png", "image/jpeg", "image/gif"}

	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

type ImageStore struct {
	dir     string
	maxSize int64
}

func NewImageStore(dir string, maxSize int64) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: dir, maxSize: maxSize}, nil
}

// AllowedFile reports whether name carries one of the accepted image extensions.
func AllowedFile(name string) bool {
	return lo.Contains(allowedExtensions, extension(name))
}

func extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// SecureFilename reduces a client supplied name to a plain base name made of
// ASCII letters, digits, '_', '-' and '.'.
func SecureFilename(name string) string {
	name = name[strings.LastIndexAny(name, `/\`)+1:]
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.TrimLeft(name, "._")
}

// Save stores the upload as <uuid hex>_<sanitized name> and returns that reference.
func (s *ImageStore) Save(filename string, r io.Reader) (string, error) {
	if !AllowedFile(filename) {
		return "", ErrExtensionNotAllowed
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return "", ErrTooLarge
	}

	mt := mimetype.Detect(data)
	if !lo.ContainsBy(allowedMIME, func(m string) bool { return mt.Is(m) }) {
		log.Warn().Str("module", "storage").Str("file", filename).Str("mime", mt.String()).Msg("rejected upload")
		return "", ErrNotAnImage
	}

	base := SecureFilename(filename)
	if !AllowedFile(base) {
		base = "image" + mt.Extension()
	}
	ref := strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + base

	if err := os.WriteFile(filepath.Join(s.dir, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	log.Info().Str("module", "storage").Str("ref", ref).Int("bytes", len(data)).Str("mime", mt.String()).Msg("image stored")
	return ref, nil
}

// Path resolves a stored reference to a file on disk.
func (s *ImageStore) Path(ref string) (string, error) {
	if ref == "" || ref != SecureFilename(ref) {
		return "", ErrBadReference
	}
	p := filepath.Join(s.dir, ref)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}
