package normalize

import "encoding/json"

const (
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
	StatusBlocked  = "blocked"
	StatusActive   = "active"
	StatusBanned   = "banned"
)

// Pet is the canonical listing entity.
type Pet struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	TypeName      string   `json:"typeName"`
	TypeID        string   `json:"typeId"`
	BreedName     string   `json:"breedName"`
	BreedID       string   `json:"breedId"`
	OwnerName     string   `json:"ownerName"`
	Age           *int     `json:"age"`
	LookingFor    string   `json:"lookingFor"`
	Personalities []string `json:"personalities"`
	IsEnabled     bool     `json:"isEnabled"`
	IsBanned      bool     `json:"isBanned"`
	Status        string   `json:"status"`
	Images        []Image  `json:"images"`
}

// Pets normalizes a raw pet list payload. The list may be a bare array or
// wrapped under "pets".
func Pets(payload json.RawMessage, base string) []Pet {
	rawPets := decodeList(payload, "pets")
	pets := make([]Pet, 0, len(rawPets))
	for _, r := range rawPets {
		pets = append(pets, normalizePet(r, base))
	}
	return pets
}

func normalizePet(r Raw, base string) Pet {
	isBanned := flexBool(r["isBan"])
	isEnabled := flexBool(r["isEnabled"])

	var age *int
	if n, ok := intValue(r["age"]); ok {
		age = &n
	}

	return Pet{
		ID:            idOrNew(r),
		Name:          firstNonEmpty(r, "Untitled", field("name")),
		TypeName:      firstNonEmpty(r, "-", nestedField("type", "name"), field("typeName"), field("type")),
		TypeID:        firstNonEmpty(r, "", field("typeId"), nestedField("type", "id")),
		BreedName:     firstNonEmpty(r, "-", nestedField("breed", "name"), field("breedName")),
		BreedID:       firstNonEmpty(r, "", field("breedId"), nestedField("breed", "id")),
		OwnerName:     firstNonEmpty(r, "-", nestedField("owner", "fullName"), field("ownerName")),
		Age:           age,
		LookingFor:    firstNonEmpty(r, "-", field("lookingFor")),
		Personalities: personalityTags(r),
		IsEnabled:     isEnabled,
		IsBanned:      isBanned,
		Status:        PetStatus(isBanned, isEnabled),
		Images:        petImages(r, base),
	}
}

// PetStatus derives the displayed status; a ban always wins over enabled.
func PetStatus(isBanned, isEnabled bool) string {
	if isBanned {
		return StatusBlocked
	}
	if isEnabled {
		return StatusEnabled
	}
	return StatusDisabled
}

// personalityTags flattens either a pre-flattened name list or a list of
// objects carrying a name field, dropping falsy entries.
func personalityTags(r Raw) []string {
	if names, ok := r["personalityNames"].([]any); ok {
		return nonEmptyStrings(names)
	}
	list, ok := r["personalities"].([]any)
	if !ok {
		return []string{}
	}
	tags := make([]string, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if name := anyToString(obj["name"]); name != "" {
			tags = append(tags, name)
		}
	}
	return tags
}

func nonEmptyStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
