package event

import (
	"context"
)

// ImageStore abstracts object storage for event images.
type ImageStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Service defines business logic for the event domain.
type Service interface {
	// ListEvents splits the timeline: upcoming ascending, past descending
	ListEvents(ctx context.Context, params ListParams) (*ListResult, error)

	// GetEventBySlug retrieves one event for the detail page
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)

	// CreateEvent validates and persists a new event
	CreateEvent(ctx context.Context, req *EventCreateRequest) (*Event, error)

	// UpdateEvent updates the event with the given slug
	UpdateEvent(ctx context.Context, slug string, req *EventUpdateRequest) (*Event, error)

	// DeleteEvent removes the event and its stored images
	DeleteEvent(ctx context.Context, slug string) error

	// UploadImage processes one image, stores it and appends its URL.
	// The stored object is always a JPEG regardless of the input format.
	UploadImage(ctx context.Context, slug string, data []byte) (*Event, error)

	// Reload drops the snapshot (admin "content changed" signal)
	Reload(ctx context.Context) error
}
