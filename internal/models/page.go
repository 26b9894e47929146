package models

// PageRequest describes a page of results: 0-based page index, page size and
// an optional sort field with direction ("asc" or "desc").
type PageRequest struct {
	Page int
	Size int
	Sort string
	Dir  string
}

// Limit returns the page size, defaulting to 10.
func (p *PageRequest) Limit() int {
	if p.Size <= 0 {
		return 10
	}
	return p.Size
}

// Offset returns the row offset of the requested page.
func (p *PageRequest) Offset() int {
	if p.Page <= 0 {
		return 0
	}
	return p.Page * p.Limit()
}

// Descending reports whether results should be sorted in descending order.
func (p *PageRequest) Descending() bool {
	return p.Dir == "desc" || p.Dir == "DESC"
}
