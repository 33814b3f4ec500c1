// Package services: services/branding_service.go
package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"go-skate-track/logger"
	"go-skate-track/models"
)

// Keys under which branding preferences persist, mirroring the dashboard's
// storage keys.
const (
	brandNameKey  = "brandName"
	brandColorKey = "brandColor"
	logoURLKey    = "logoUrl"
)

// BrandingStore is the persistence port for branding preferences: a plain
// key-value load/save pair. Injected into the service so nothing reaches for
// ambient global storage.
type BrandingStore interface {
	Load() (map[string]string, error)
	Save(values map[string]string) error
}

// ----------------------- file store -----------------------

// FileBrandingStore keeps the key-value pairs in a small JSON file.
type FileBrandingStore struct {
	Path string
}

// Load reads the file; a missing file is an empty store, not an error.
func (f *FileBrandingStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// Save writes the full key-value set back.
func (f *FileBrandingStore) Save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0600)
}

// ----------------------- service -----------------------

// BrandingService owns the current branding and writes every change through
// to its store.
type BrandingService struct {
	mu       sync.Mutex
	store    BrandingStore
	branding models.Branding
}

// NewBrandingService starts from the defaults, overlaid with whatever the
// store already holds. Store failures fall back to defaults so a corrupt
// file never blocks startup.
func NewBrandingService(store BrandingStore) *BrandingService {
	svc := &BrandingService{store: store, branding: models.DefaultBranding()}

	values, err := store.Load()
	if err != nil {
		logger.Warn.Printf("BrandingService: load failed, using defaults: %v", err)
		return svc
	}
	if v, ok := values[brandNameKey]; ok && v != "" {
		svc.branding.BrandName = v
	}
	if v, ok := values[brandColorKey]; ok && v != "" {
		svc.branding.BrandColor = v
	}
	if v, ok := values[logoURLKey]; ok {
		svc.branding.LogoURL = v
	}
	return svc
}

// Get returns the current branding.
func (b *BrandingService) Get() models.Branding {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.branding
}

// Update replaces the branding and persists it. Empty name or color keep
// their previous values; the logo URL may be cleared deliberately.
func (b *BrandingService) Update(branding models.Branding) (models.Branding, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if branding.BrandName != "" {
		b.branding.BrandName = branding.BrandName
	}
	if branding.BrandColor != "" {
		if !validHexColor(branding.BrandColor) {
			return b.branding, fmt.Errorf("invalid brand color %q", branding.BrandColor)
		}
		b.branding.BrandColor = branding.BrandColor
	}
	b.branding.LogoURL = branding.LogoURL

	values := map[string]string{
		brandNameKey:  b.branding.BrandName,
		brandColorKey: b.branding.BrandColor,
		logoURLKey:    b.branding.LogoURL,
	}
	if err := b.store.Save(values); err != nil {
		logger.Error.Printf("BrandingService: save failed: %v", err)
		return b.branding, err
	}

	logger.Info.Printf("Branding updated: name=%q color=%s", b.branding.BrandName, b.branding.BrandColor)
	return b.branding, nil
}

// Shade lightens (positive amount) or darkens (negative) a hex color, the
// same arithmetic the dashboard uses for its light/dark brand variants.
func Shade(color string, amount int) string {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return color
	}

	out := "#"
	for i := 0; i < 6; i += 2 {
		v, err := strconv.ParseInt(hex[i:i+2], 16, 0)
		if err != nil {
			return color
		}
		v += int64(amount)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		out += fmt.Sprintf("%02x", v)
	}
	return out
}

func validHexColor(c string) bool {
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	for _, r := range c[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
