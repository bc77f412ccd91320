package blog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Blog is one post as stored in the blogs collection document.
// Date is a free-text, locale-formatted string typed by editors and is
// parsed defensively on the read path.
type Blog struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Excerpt  string `json:"excerpt,omitempty"`
	Content  string `json:"content,omitempty"`
}

// BlogCreateRequest DTO for creating a post. Slug is optional; the
// service derives one from the title when absent.
type BlogCreateRequest struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
}

func (r BlogCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
	)
}

// BlogUpdateRequest DTO for updating a post. Empty fields keep the
// existing values.
type BlogUpdateRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
}

func (r BlogUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Length(1, 100)),
		validation.Field(&r.Category, validation.Length(1, 100)),
	)
}

// ListParams are the filter knobs on GET /blogs. Empty values are
// inactive matchers (no constraint).
type ListParams struct {
	Query    string
	Category string
	Author   string
	Page     int
	PageSize int
}

// ListResult carries one page of posts plus the pagination facts.
type ListResult struct {
	Items      []Blog
	Total      int
	TotalPages int
}
