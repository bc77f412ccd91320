package event

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Event is one event as stored in the events collection document.
// StartTime/EndTime are ISO-ish strings parsed defensively; an event
// whose start time cannot be parsed classifies as past, never errors.
type Event struct {
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Location   string   `json:"location,omitempty"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime,omitempty"`
	Presenters []string `json:"presenters,omitempty"` // person slugs
	ImageURLs  []string `json:"imageURLs,omitempty"`
}

// EventCreateRequest DTO for adding an event. Slug is optional; the
// service derives one from the name when absent.
type EventCreateRequest struct {
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	Presenters []string `json:"presenters"`
	ImageURLs  []string `json:"imageURLs"`
}

func (r EventCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.StartTime,
			validation.Required.Error("startTime is required"),
		),
	)
}

// EventUpdateRequest DTO for updating an event. Empty fields keep the
// existing values; presenters and imageURLs are replaced wholesale
// when non-nil.
type EventUpdateRequest struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	Presenters []string `json:"presenters"`
	ImageURLs  []string `json:"imageURLs"`
}

func (r EventUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 255)),
	)
}

// When narrows the list to past or upcoming events.
type When string

const (
	WhenAll      When = ""
	WhenPast     When = "past"
	WhenUpcoming When = "upcoming"
)

// ListParams are the filter knobs on GET /events.
type ListParams struct {
	When     When
	Query    string
	Page     int
	PageSize int
}

// ListResult carries one page of events plus the pagination facts.
type ListResult struct {
	Items      []Event
	Total      int
	TotalPages int
}
