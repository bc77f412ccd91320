package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"labsite-backend/internal/domains/event"
	"labsite-backend/internal/infrastructure/storage"
	"labsite-backend/internal/query"
	"labsite-backend/internal/shared/utils"
	"labsite-backend/pkg/logger"
)

// eventService implements event.Service on top of the events document.
type eventService struct {
	repo      event.Repository
	images    event.ImageStore
	processor *storage.ImageProcessor
	now       func() time.Time
}

// NewEventService creates the event service. images may be nil when no
// object storage is configured; uploads then fail with a validation error.
func NewEventService(repo event.Repository, images event.ImageStore) event.Service {
	return &eventService{
		repo:      repo,
		images:    images,
		processor: storage.NewImageProcessor(),
		now:       time.Now,
	}
}

// ListEvents filters by timeline bucket and free-text query, then
// orders each bucket for display: upcoming soonest first, past most
// recent first. An event whose start time does not parse counts as
// past rather than disappearing.
func (s *eventService) ListEvents(ctx context.Context, params event.ListParams) (*event.ListResult, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	pred := query.And(
		s.whenPredicate(params.When, now),
		query.TextContains(params.Query, func(e event.Event) []string {
			return []string{e.Name, e.Location}
		}),
	)
	filtered := query.Filter(items, pred)

	descending := params.When != event.WhenUpcoming
	sorted := query.SortByDate(filtered, func(e event.Event) string { return e.StartTime }, descending)

	pageItems, totalPages := query.Paginate(sorted, params.PageSize, params.Page)
	return &event.ListResult{
		Items:      pageItems,
		Total:      len(sorted),
		TotalPages: totalPages,
	}, nil
}

func (s *eventService) whenPredicate(when event.When, now time.Time) query.Predicate[event.Event] {
	switch when {
	case event.WhenPast:
		return func(e event.Event) bool { return isPast(e, now) }
	case event.WhenUpcoming:
		return func(e event.Event) bool { return !isPast(e, now) }
	default:
		return func(event.Event) bool { return true }
	}
}

// isPast classifies by start time. The zero time sentinel from a
// failed parse sorts before now, so malformed events land in past.
func isPast(e event.Event, now time.Time) bool {
	return query.ParseDate(e.StartTime).Before(now)
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*event.Event, error) {
	e, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, event.NewEventNotFound(slug)
	}
	return e, nil
}

func (s *eventService) CreateEvent(ctx context.Context, req *event.EventCreateRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, event.NewEventValidationError(err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}
	if existing, err := s.repo.GetBySlug(ctx, slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, event.NewEventValidationError(fmt.Errorf("slug %q already in use", slug))
	}

	e := &event.Event{
		Slug:       slug,
		Name:       req.Name,
		Location:   req.Location,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Presenters: req.Presenters,
		ImageURLs:  req.ImageURLs,
	}
	return s.repo.Create(ctx, e)
}

func (s *eventService) UpdateEvent(ctx context.Context, slug string, req *event.EventUpdateRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, event.NewEventValidationError(err)
	}

	existing, err := s.GetEventBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Name != "" {
		updated.Name = req.Name
	}
	if req.Location != "" {
		updated.Location = req.Location
	}
	if req.StartTime != "" {
		updated.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		updated.EndTime = req.EndTime
	}
	if req.Presenters != nil {
		updated.Presenters = req.Presenters
	}
	if req.ImageURLs != nil {
		updated.ImageURLs = req.ImageURLs
	}

	return s.repo.Update(ctx, slug, &updated)
}

// DeleteEvent removes the record, then sweeps its stored images.
// Object deletion is best effort; a failure leaves an orphaned object,
// not a dangling event.
func (s *eventService) DeleteEvent(ctx context.Context, slug string) error {
	existing, err := s.GetEventBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, slug); err != nil {
		return err
	}

	if s.images != nil {
		for _, u := range existing.ImageURLs {
			key := objectKey(u)
			if key == "" {
				continue
			}
			if err := s.images.Delete(ctx, key); err != nil {
				logger.Warn("failed to delete event image object", err)
			}
		}
	}
	return nil
}

// objectKey recovers the storage key from a stored image URL. Upload
// keys always start with "events/"; foreign URLs yield "".
func objectKey(url string) string {
	i := strings.Index(url, "/events/")
	if i < 0 {
		return ""
	}
	return url[i+1:]
}

// UploadImage validates and resizes the upload, stores it under a
// fresh key and appends the resulting URL to the event. The processor
// re-encodes everything as JPEG, so the original content type is not
// kept.
func (s *eventService) UploadImage(ctx context.Context, slug string, data []byte) (*event.Event, error) {
	if s.images == nil {
		return nil, event.NewEventImageError("image storage is not configured", nil)
	}

	existing, err := s.GetEventBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.processor.ValidateImage(data); err != nil {
		return nil, event.NewEventImageError(err.Error(), err)
	}
	processed, err := s.processor.ProcessImage(data)
	if err != nil {
		return nil, event.NewEventImageError("failed to process image", err)
	}

	key := fmt.Sprintf("events/%s/%s.jpg", slug, uuid.New().String())
	url, err := s.images.Upload(ctx, key, processed, "image/jpeg")
	if err != nil {
		return nil, event.NewEventIOError(err)
	}

	updated := *existing
	updated.ImageURLs = append(append([]string{}, existing.ImageURLs...), url)
	return s.repo.Update(ctx, slug, &updated)
}

func (s *eventService) Reload(ctx context.Context) error {
	return s.repo.Reload(ctx)
}
