// Package listing holds the query contract of the dashboard views: which
// filter dimensions exist, which are applied server-side versus over the
// fetched page, and the pagination heuristics around them.
package listing

const (
	FilterAll = "all"

	defaultPage  = 1
	defaultLimit = 10
)

// PetQuery is the pet view's filter state. Search and Age travel to the
// upstream API; status, type, breed and personality narrow the fetched page.
type PetQuery struct {
	Page        int
	Limit       int
	Search      string
	Status      string
	TypeID      string
	BreedID     string
	Personality string
	Age         *int
}

func NewPetQuery() PetQuery {
	return PetQuery{
		Page:    defaultPage,
		Limit:   defaultLimit,
		Status:  FilterAll,
		TypeID:  FilterAll,
		BreedID: FilterAll,
	}
}

// Every filter mutation except an explicit page change resets to page 1.

func (q *PetQuery) SetSearch(search string) {
	q.Search = search
	q.Page = defaultPage
}

func (q *PetQuery) SetStatus(status string) {
	if status == "" {
		status = FilterAll
	}
	q.Status = status
	q.Page = defaultPage
}

// SetType also resets the breed choice: breed options are scoped by type, so
// a type change invalidates whatever breed was selected.
func (q *PetQuery) SetType(typeID string) {
	if typeID == "" {
		typeID = FilterAll
	}
	q.TypeID = typeID
	q.BreedID = FilterAll
	q.Page = defaultPage
}

func (q *PetQuery) SetBreed(breedID string) {
	if breedID == "" {
		breedID = FilterAll
	}
	q.BreedID = breedID
	q.Page = defaultPage
}

func (q *PetQuery) SetPersonality(tag string) {
	q.Personality = tag
	q.Page = defaultPage
}

func (q *PetQuery) SetAge(age *int) {
	q.Age = age
	q.Page = defaultPage
}

func (q *PetQuery) SetLimit(limit int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	q.Limit = limit
	q.Page = defaultPage
}

func (q *PetQuery) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	q.Page = page
}

// UserQuery is the user view's filter state; only status narrows the page.
type UserQuery struct {
	Page   int
	Limit  int
	Status string
}

func NewUserQuery() UserQuery {
	return UserQuery{
		Page:   defaultPage,
		Limit:  defaultLimit,
		Status: FilterAll,
	}
}

func (q *UserQuery) SetStatus(status string) {
	if status == "" {
		status = FilterAll
	}
	q.Status = status
	q.Page = defaultPage
}

func (q *UserQuery) SetLimit(limit int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	q.Limit = limit
	q.Page = defaultPage
}

func (q *UserQuery) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	q.Page = page
}
