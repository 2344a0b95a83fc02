package lead

import "strings"

// ListFilter narrows a lead listing.
// Search is matched against email, first/last name and company.
// Status and AssignedTo are exact matches; empty means no filter.
type ListFilter struct {
	Search     string
	Status     string
	AssignedTo string
}

func (f *ListFilter) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
	f.Status = strings.ToLower(strings.TrimSpace(f.Status))
	f.AssignedTo = strings.TrimSpace(f.AssignedTo)
}
