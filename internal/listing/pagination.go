package listing

// Pagination tracks the continuation state of a view. HasMore is a heuristic:
// the upstream API reports no page count, so a full page is read as "there is
// probably another one".
type Pagination struct {
	Page         int  `json:"page"`
	Limit        int  `json:"limit"`
	TotalRecords int  `json:"totalRecords"`
	HasMore      bool `json:"hasMore"`
	Loading      bool `json:"-"`
}

// Apply records the outcome of a page fetch.
func (p *Pagination) Apply(page, limit, returned, total int) {
	p.Page = page
	p.Limit = limit
	p.TotalRecords = total
	p.HasMore = limit > 0 && returned == limit
}

// RecordDeleted decrements the displayed total after a local delete, floored
// at zero. No refetch happens.
func (p *Pagination) RecordDeleted() {
	if p.TotalRecords > 0 {
		p.TotalRecords--
	}
}

func (p Pagination) CanPrevious() bool {
	return p.Page > 1 && !p.Loading
}

func (p Pagination) CanNext() bool {
	return p.HasMore && !p.Loading
}
