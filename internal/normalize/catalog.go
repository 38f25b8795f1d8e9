package normalize

import "encoding/json"

// Option is one entry of a filter dropdown (pet type, breed, personality).
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PetTypes handles the wrapper-key lottery of the type list endpoint.
func PetTypes(payload json.RawMessage) []Option {
	return options(decodeList(payload, "petType", "types", "data", "petTypes"))
}

// Breeds accepts the capital-B spelling the API actually returns alongside
// the two it documents.
func Breeds(payload json.RawMessage) []Option {
	return options(decodeList(payload, "Breeds", "breeds", "data"))
}

func Personalities(payload json.RawMessage) []Option {
	return options(decodeList(payload, "personalities", "data"))
}

func options(raws []Raw) []Option {
	opts := make([]Option, 0, len(raws))
	for _, r := range raws {
		name := anyToString(r["name"])
		if name == "" {
			continue
		}
		opts = append(opts, Option{
			ID:   anyToString(r["id"]),
			Name: name,
		})
	}
	return opts
}
