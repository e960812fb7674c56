package objectstorage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/sky_delivery_backend/internal/adapters/objectstorage"
	"github.com/SscSPs/sky_delivery_backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestObjectURL(t *testing.T) {
	assert.Equal(t,
		"https://menu-images.storage.googleapis.com/3f2a.png",
		objectstorage.ObjectURL("menu-images", "storage.googleapis.com", "3f2a.png"),
	)
}

func TestNewGCSStore_RequiresBucket(t *testing.T) {
	_, err := objectstorage.NewGCSStore(context.Background(), config.StorageConfig{})
	assert.Error(t, err)
}

func newTestStore(t *testing.T, handler http.HandlerFunc) *objectstorage.GCSStore {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := objectstorage.NewGCSStore(context.Background(),
		config.StorageConfig{Bucket: "menu-images", Endpoint: "storage.googleapis.com"},
		option.WithEndpoint(server.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)
	return store
}

func TestPutObject_Success(t *testing.T) {
	var gotPath string
	var gotBody string
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"bucket":"menu-images","name":"a.png"}`)
	})

	url, err := store.PutObject(context.Background(), "a.png", "image/png", []byte("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://menu-images.storage.googleapis.com/a.png", url)
	assert.True(t, strings.HasSuffix(gotPath, "/b/menu-images/o"), gotPath)
	assert.Contains(t, gotBody, "png-bytes")
}

func TestPutObject_ErrorIsReturned(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"denied"}}`)
	})

	url, err := store.PutObject(context.Background(), "a.png", "image/png", []byte("png-bytes"))

	assert.Error(t, err)
	assert.Empty(t, url)
}
