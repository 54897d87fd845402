package storage

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent png
var pngPixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func TestAllowedFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"cat.png", true},
		{"CAT.JPG", true},
		{"photo.jpeg", true},
		{"anim.gif", true},
		{"doc.pdf", false},
		{"noext", false},
		{"archive.png.exe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedFile(tt.name))
		})
	}
}

func TestSecureFilename(t *testing.T) {
	assert.Equal(t, "passwd", SecureFilename("../../etc/passwd"))
	assert.Equal(t, "my_cat.png", SecureFilename("my cat.png"))
	assert.Equal(t, "cat.png", SecureFilename(`C:\Users\me\cat.png`))
	assert.Equal(t, "hidden.png", SecureFilename(".hidden.png"))
	assert.Equal(t, "png", SecureFilename("кот.png"))
}

func TestImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(dir, 1<<20)
	require.NoError(t, err)

	ref, err := store.Save("my cat.png", bytes.NewReader(pngPixel))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, "_my_cat.png"))
	assert.Len(t, strings.SplitN(ref, "_", 2)[0], 32)

	p, err := store.Path(ref)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ref), p)
	stored, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, pngPixel, stored)
}

func TestImageStore_SaveNonASCIIName(t *testing.T) {
	store, err := NewImageStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	ref, err := store.Save("кот.png", bytes.NewReader(pngPixel))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, "_image.png"))
}

func TestImageStore_Rejects(t *testing.T) {
	store, err := NewImageStore(t.TempDir(), 64)
	require.NoError(t, err)

	_, err = store.Save("notes.txt", bytes.NewReader(pngPixel))
	assert.ErrorIs(t, err, ErrExtensionNotAllowed)

	_, err = store.Save("fake.png", strings.NewReader("just some text"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	_, err = store.Save("big.png", bytes.NewReader(append(append([]byte{}, pngPixel...), make([]byte, 64)...)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestImageStore_PathRejectsTraversal(t *testing.T) {
	store, err := NewImageStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	_, err = store.Path("../secret.png")
	assert.ErrorIs(t, err, ErrBadReference)
	_, err = store.Path("")
	assert.ErrorIs(t, err, ErrBadReference)
	_, err = store.Path("missing.png")
	assert.Error(t, err)
}
