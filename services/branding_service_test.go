// file: services/branding_service_test.go
package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-skate-track/models"
)

// memoryBrandingStore is an in-memory Store for tests.
type memoryBrandingStore struct {
	values  map[string]string
	saveErr error
	saves   int
}

func (m *memoryBrandingStore) Load() (map[string]string, error) {
	if m.values == nil {
		return map[string]string{}, nil
	}
	return m.values, nil
}

func (m *memoryBrandingStore) Save(values map[string]string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.values = values
	m.saves++
	return nil
}

func TestBranding_Defaults(t *testing.T) {
	svc := NewBrandingService(&memoryBrandingStore{})
	b := svc.Get()

	assert.Equal(t, "SkateTrack", b.BrandName)
	assert.Equal(t, "#3b82f6", b.BrandColor)
	assert.Empty(t, b.LogoURL)
}

func TestBranding_LoadsStoredValues(t *testing.T) {
	store := &memoryBrandingStore{values: map[string]string{
		"brandName":  "Ramp Riders",
		"brandColor": "#ff0000",
		"logoUrl":    "https://example.com/logo.png",
	}}
	b := NewBrandingService(store).Get()

	assert.Equal(t, "Ramp Riders", b.BrandName)
	assert.Equal(t, "#ff0000", b.BrandColor)
	assert.Equal(t, "https://example.com/logo.png", b.LogoURL)
}

func TestBranding_UpdateWritesThrough(t *testing.T) {
	store := &memoryBrandingStore{}
	svc := NewBrandingService(store)

	updated, err := svc.Update(models.Branding{BrandName: "Halfpipe Hub", BrandColor: "#00ff00"})
	require.NoError(t, err)
	assert.Equal(t, "Halfpipe Hub", updated.BrandName)
	assert.Equal(t, 1, store.saves, "every change persists immediately")
	assert.Equal(t, "Halfpipe Hub", store.values["brandName"])
}

func TestBranding_UpdateValidatesColor(t *testing.T) {
	svc := NewBrandingService(&memoryBrandingStore{})

	_, err := svc.Update(models.Branding{BrandColor: "red"})
	assert.Error(t, err)
	assert.Equal(t, "#3b82f6", svc.Get().BrandColor, "bad color leaves the old value")
}

func TestBranding_UpdateSaveFailure(t *testing.T) {
	store := &memoryBrandingStore{saveErr: errors.New("disk full")}
	svc := NewBrandingService(store)

	_, err := svc.Update(models.Branding{BrandName: "X"})
	assert.Error(t, err)
}

func TestFileBrandingStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "branding.json")
	store := &FileBrandingStore{Path: path}

	// missing file reads as empty
	values, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, values)

	require.NoError(t, store.Save(map[string]string{"brandName": "SkateTrack"}))

	values, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "SkateTrack", values["brandName"])
}

func TestShade(t *testing.T) {
	assert.Equal(t, "#282828", Shade("#000000", 40))
	assert.Equal(t, "#d7d7d7", Shade("#ffffff", -40))
	assert.Equal(t, "#000000", Shade("#101010", -40), "clamps at zero")
	assert.Equal(t, "#ffffff", Shade("#f0f0f0", 40), "clamps at 255")
	assert.Equal(t, "nonsense", Shade("nonsense", 40), "bad input passes through")
}
