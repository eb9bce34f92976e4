package upload

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestService(t *testing.T) (*service, string) {
	dir := t.TempDir()
	svc := NewService(dir, "http://cdn.local/").(*service)
	svc.newName = func() string { return "fixed" }
	return svc, dir
}

func TestService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("StoresPNG", func(t *testing.T) {
		svc, dir := newTestService(t)

		res, err := svc.Save(ctx, bytes.NewReader(append(pngHeader, make([]byte, 100)...)))
		require.NoError(t, err)
		assert.Equal(t, "http://cdn.local/uploads/fixed.png", res.URL)
		assert.Equal(t, "image/png", res.ContentType)
		assert.Equal(t, int64(len(pngHeader)+100), res.Size)

		data, err := os.ReadFile(filepath.Join(dir, "fixed.png"))
		require.NoError(t, err)
		assert.Equal(t, pngHeader, data[:len(pngHeader)])
	})

	t.Run("RejectsText", func(t *testing.T) {
		svc, dir := newTestService(t)

		_, err := svc.Save(ctx, strings.NewReader("hello, not an image"))
		assert.ErrorIs(t, err, ErrUnsupportedType)

		entries, _ := os.ReadDir(dir)
		assert.Empty(t, entries)
	})

	t.Run("RejectsEmpty", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.Save(ctx, bytes.NewReader(nil))
		assert.ErrorIs(t, err, ErrNoFile)
	})

	t.Run("RejectsOversize", func(t *testing.T) {
		svc, dir := newTestService(t)

		big := append(append([]byte{}, pngHeader...), make([]byte, MaxSize)...)
		_, err := svc.Save(ctx, bytes.NewReader(big))
		assert.ErrorIs(t, err, ErrFileTooLarge)

		entries, _ := os.ReadDir(dir)
		assert.Empty(t, entries)
	})

	t.Run("AcceptsGIF", func(t *testing.T) {
		svc, _ := newTestService(t)
		res, err := svc.Save(ctx, strings.NewReader("GIF89a\x01\x00\x01\x00"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(res.Name, ".gif"))
	})
}
