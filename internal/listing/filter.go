package listing

import (
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

// FilterPets applies the client-side dimensions to a fetched page. Search and
// age are already handled upstream; age is re-checked here so a server that
// ignores the parameter still yields a consistent view.
func FilterPets(pets []normalize.Pet, q PetQuery) []normalize.Pet {
	out := make([]normalize.Pet, 0, len(pets))
	for _, pet := range pets {
		if q.Status != FilterAll && pet.Status != q.Status {
			continue
		}
		if q.TypeID != FilterAll && pet.TypeID != q.TypeID {
			continue
		}
		if q.BreedID != FilterAll && q.BreedID != "" && pet.BreedID != q.BreedID {
			continue
		}
		if q.Personality != "" && !containsTag(pet.Personalities, q.Personality) {
			continue
		}
		if q.Age != nil && (pet.Age == nil || *pet.Age != *q.Age) {
			continue
		}
		out = append(out, pet)
	}
	return out
}

// FilterUsers narrows a user page by ban status.
func FilterUsers(users []normalize.User, q UserQuery) []normalize.User {
	if q.Status == FilterAll {
		return users
	}
	out := make([]normalize.User, 0, len(users))
	for _, user := range users {
		if q.Status == normalize.StatusBanned && !user.IsBanned {
			continue
		}
		if q.Status == normalize.StatusActive && user.IsBanned {
			continue
		}
		out = append(out, user)
	}
	return out
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// BreedSelectorEnabled mirrors the breed dropdown rule: disabled while the
// scoped breed fetch is in flight and whenever no concrete type is selected.
func BreedSelectorEnabled(q PetQuery, breedsLoading bool) bool {
	return q.TypeID != FilterAll && !breedsLoading
}
