package types

import "github.com/hobfurniture/orderdesk-backend/pkg/enums"

// GalleryItem is one captured or production image attached to the order.
type GalleryItem struct {
	ID      string                 `json:"id"`
	URL     string                 `json:"url"`
	Caption string                 `json:"caption"`
	Date    string                 `json:"date"`
	Type    enums.GalleryImageType `json:"type"`
}
