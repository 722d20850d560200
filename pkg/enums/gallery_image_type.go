package enums

import "fmt"

// GalleryImageType distinguishes production photos from document captures.
type GalleryImageType string

const (
	GalleryImageTypeProduction GalleryImageType = "production"
	GalleryImageTypeCapture    GalleryImageType = "capture"
)

var validGalleryImageTypes = []GalleryImageType{
	GalleryImageTypeProduction,
	GalleryImageTypeCapture,
}

// String implements fmt.Stringer.
func (g GalleryImageType) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GalleryImageType.
func (g GalleryImageType) IsValid() bool {
	for _, candidate := range validGalleryImageTypes {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGalleryImageType converts raw input into a GalleryImageType.
func ParseGalleryImageType(value string) (GalleryImageType, error) {
	for _, candidate := range validGalleryImageTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gallery image type %q", value)
}
