// File: models/branding.go
package models

// Default branding applied until the operator changes it.
const (
	DefaultBrandName  = "SkateTrack"
	DefaultBrandColor = "#3b82f6"
)

// Branding holds the three persisted branding preferences.
type Branding struct {
	BrandName  string `json:"brandName"`
	BrandColor string `json:"brandColor"`
	LogoURL    string `json:"logoUrl"`
}

// DefaultBranding returns the out-of-the-box branding.
func DefaultBranding() Branding {
	return Branding{
		BrandName:  DefaultBrandName,
		BrandColor: DefaultBrandColor,
		LogoURL:    "",
	}
}
