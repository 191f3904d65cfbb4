package domain

// Pagination describes one page of the users collection.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// BulkError reports a single rejected item of a bulk create.
type BulkError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// SearchResult holds per-collection matches. A nil slice means the
// collection was excluded by the type filter and is omitted from the JSON;
// an empty slice renders as [].
type SearchResult struct {
	Users    *[]User    `json:"users,omitempty"`
	Products *[]Product `json:"products,omitempty"`
	Tasks    *[]Task    `json:"tasks,omitempty"`
}

// Total sums the matches across the included collections.
func (r SearchResult) Total() int {
	n := 0
	if r.Users != nil {
		n += len(*r.Users)
	}
	if r.Products != nil {
		n += len(*r.Products)
	}
	if r.Tasks != nil {
		n += len(*r.Tasks)
	}
	return n
}
