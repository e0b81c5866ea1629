package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lumiere-photography/internal/storage"
)

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t, "media/abc.jpg",
		storage.KeyFromURL("https://cdn.example.com/bucket/media/abc.jpg"))
	assert.Equal(t, "backgrounds/hero.png",
		storage.KeyFromURL("http://localhost:8080/uploads/backgrounds/hero.png"))
	assert.Equal(t, "bare-key", storage.KeyFromURL("bare-key"))
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := storage.NewLocalStore(dir, "http://localhost:8080/")
	assert.NoError(t, err)

	t.Run("Put Writes File And Returns URL", func(t *testing.T) {
		url, err := store.Put(ctx, "media/test.jpg", strings.NewReader("payload"), 7, "image/jpeg")

		assert.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/uploads/media/test.jpg", url)

		data, err := os.ReadFile(filepath.Join(dir, "media", "test.jpg"))
		assert.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("URL Round Trips Through KeyFromURL", func(t *testing.T) {
		url, err := store.Put(ctx, "media/roundtrip.jpg", strings.NewReader("x"), 1, "image/jpeg")
		assert.NoError(t, err)
		assert.Equal(t, "media/roundtrip.jpg", storage.KeyFromURL(url))
	})

	t.Run("Remove Deletes File", func(t *testing.T) {
		_, err := store.Put(ctx, "media/gone.jpg", strings.NewReader("x"), 1, "image/jpeg")
		assert.NoError(t, err)

		assert.NoError(t, store.Remove(ctx, "media/gone.jpg"))

		_, err = os.Stat(filepath.Join(dir, "media", "gone.jpg"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Remove Is Idempotent", func(t *testing.T) {
		assert.NoError(t, store.Remove(ctx, "media/never-existed.jpg"))
	})
}
