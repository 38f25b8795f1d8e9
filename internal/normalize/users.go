package normalize

import "encoding/json"

const locationShortLimit = 32

// User is the canonical owner entity. Its pets are a display copy; pet
// moderation goes through the pet listing, not through here.
type User struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Location            string     `json:"location"`
	LocationShort       string     `json:"locationShort"`
	IsBanned            bool       `json:"isBanned"`
	Status              string     `json:"status"`
	ProfilePhoto        string     `json:"profilePhoto"`
	ProfilePhotoBlocked bool       `json:"profilePhotoBlocked"`
	Pets                []OwnedPet `json:"pets"`
	PetCount            int        `json:"petCount"`
}

// OwnedPet is the nested pet copy shown on the user views.
type OwnedPet struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TypeName  string  `json:"typeName"`
	BreedName string  `json:"breedName"`
	Age       string  `json:"age"`
	Gender    string  `json:"gender"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	IsBanned  bool    `json:"isBanned"`
	IsEnabled bool    `json:"isEnabled"`
	Status    string  `json:"status"`
	Images    []Image `json:"images"`
}

// Users normalizes a raw user list payload (bare array or wrapped under
// "users").
func Users(payload json.RawMessage, base string) []User {
	rawUsers := decodeList(payload, "users")
	users := make([]User, 0, len(rawUsers))
	for _, r := range rawUsers {
		users = append(users, normalizeUser(r, base))
	}
	return users
}

func normalizeUser(r Raw, base string) User {
	location := firstNonEmpty(r, "Not specified", field("location"))

	var pets []OwnedPet
	if rawPets, ok := r["pets"].([]any); ok {
		pets = make([]OwnedPet, 0, len(rawPets))
		for _, entry := range rawPets {
			petRaw, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			pets = append(pets, normalizeOwnedPet(petRaw, base))
		}
	}
	if pets == nil {
		pets = []OwnedPet{}
	}

	photoURL, photoBlocked := profilePhoto(r, base)
	isBanned := flexBool(r["isBan"])

	return User{
		ID:                  idOrNew(r),
		Name:                firstNonEmpty(r, "Unnamed user", field("fullName"), field("name")),
		Email:               firstNonEmpty(r, "-", field("email")),
		Location:            location,
		LocationShort:       shortenLocation(location),
		IsBanned:            isBanned,
		Status:              UserStatus(isBanned),
		ProfilePhoto:        photoURL,
		ProfilePhotoBlocked: photoBlocked,
		Pets:                pets,
		PetCount:            len(pets),
	}
}

func normalizeOwnedPet(r Raw, base string) OwnedPet {
	isBanned := flexBool(r["isBan"])
	isEnabled := flexBool(r["isEnabled"])

	status := StatusDisabled
	switch {
	case isBanned:
		status = StatusBanned
	case isEnabled:
		status = StatusEnabled
	}

	return OwnedPet{
		ID:        idOrNew(r),
		Name:      firstNonEmpty(r, "Unnamed pet", field("name")),
		TypeName:  firstNonEmpty(r, "-", nestedField("type", "name"), field("typeName")),
		BreedName: firstNonEmpty(r, "-", nestedField("breed", "name"), field("breedName")),
		Age:       firstNonEmpty(r, "-", field("age")),
		Gender:    firstNonEmpty(r, "-", field("gender")),
		Size:      firstNonEmpty(r, "-", field("size")),
		Color:     firstNonEmpty(r, "-", field("color")),
		IsBanned:  isBanned,
		IsEnabled: isEnabled,
		Status:    status,
		Images:    petImages(r, base),
	}
}

func UserStatus(isBanned bool) string {
	if isBanned {
		return StatusBanned
	}
	return StatusActive
}

// profilePhoto resolves the photo URL from the object form, the string form,
// then the flat profileImage/image aliases. Only the object form carries an
// authoritative blocked flag.
func profilePhoto(r Raw, base string) (string, bool) {
	var blocked bool

	switch t := r["profilePhoto"].(type) {
	case map[string]any:
		// The blocked flag holds even when the object carries no URL and the
		// address comes from a flat alias instead.
		blocked = blockedFlag(t)
		raw := anyToString(t["url"])
		if raw == "" {
			raw = anyToString(t["image"])
		}
		if raw != "" {
			return AbsoluteURL(base, raw), blocked
		}
	case string:
		if t != "" {
			return AbsoluteURL(base, t), false
		}
	}

	fallback := firstNonEmpty(r, "", field("profileImage"), field("image"))
	if fallback == "" {
		return "", blocked
	}
	return AbsoluteURL(base, fallback), blocked
}

func shortenLocation(location string) string {
	runes := []rune(location)
	if len(runes) <= locationShortLimit {
		return location
	}
	return string(runes[:locationShortLimit]) + "..."
}
