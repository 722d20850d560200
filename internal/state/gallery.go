package state

import (
	"github.com/google/uuid"

	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

// Gallery returns a copy of the gallery, most recent first.
func (e *Engine) Gallery() []types.GalleryItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyGallery(e.gallery)
}

// AddGalleryItem assigns a fresh id and prepends the item so the collection
// stays newest-first. Returns the stored item.
func (e *Engine) AddGalleryItem(item types.GalleryItem) types.GalleryItem {
	item.ID = uuid.NewString()

	e.mu.Lock()
	e.gallery = append([]types.GalleryItem{item}, e.gallery...)
	e.mu.Unlock()
	e.mark()
	return item
}

// RemoveGalleryItem deletes the item with the given id. Removing an unknown
// id is a no-op; the gallery still schedules a save only when something
// changed.
func (e *Engine) RemoveGalleryItem(id string) {
	e.mu.Lock()
	kept := e.gallery[:0]
	removed := false
	for _, item := range e.gallery {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	e.gallery = kept
	e.mu.Unlock()

	if removed {
		e.mark()
	}
}
