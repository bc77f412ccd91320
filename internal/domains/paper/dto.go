package paper

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var yearPattern = regexp.MustCompile(`^[0-9]{1,4}$`)

// Paper is one publication as stored in the papers collection document.
// There is no synthetic id: a paper is identified by its (title, year)
// pair, matching how editors refer to publications.
type Paper struct {
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Venue   string   `json:"venue,omitempty"`
	Year    string   `json:"year"` // string of digits, parsed defensively
	URL     string   `json:"url,omitempty"`
	DOI     string   `json:"doi,omitempty"`
}

// PaperCreateRequest DTO for adding a publication.
type PaperCreateRequest struct {
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Venue   string   `json:"venue"`
	Year    string   `json:"year"`
	URL     string   `json:"url"`
	DOI     string   `json:"doi"`
}

func (r PaperCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Authors,
			validation.Required.Error("at least one author is required"),
		),
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
			validation.Match(yearPattern).Error("year must be digits"),
		),
	)
}

// PaperUpdateRequest DTO for updating a publication. Empty fields keep
// the existing values; authors are replaced wholesale when non-nil.
type PaperUpdateRequest struct {
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Venue   string   `json:"venue"`
	Year    string   `json:"year"`
	URL     string   `json:"url"`
	DOI     string   `json:"doi"`
}

func (r PaperUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 500)),
		validation.Field(&r.Year,
			validation.When(r.Year != "", validation.Match(yearPattern).Error("year must be digits")),
		),
	)
}

// Key is the natural identity of a publication.
type Key struct {
	Title string
	Year  string
}

// ListParams are the filter knobs on GET /papers. Empty values are
// inactive matchers. YearFrom/YearTo of 0 disable that bound.
type ListParams struct {
	Query    string
	Year     string
	Venue    string
	Author   string
	YearFrom int
	YearTo   int
	SortAsc  bool
	Page     int
	PageSize int
}

// ListResult carries one page of publications plus pagination facts.
type ListResult struct {
	Items      []Paper
	Total      int
	TotalPages int
}
