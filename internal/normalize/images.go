package normalize

const maxImagesPerPet = 5

// Image is one moderatable picture. Blocked reflects what the server declared
// in the payload; session-local overrides are layered on top elsewhere.
type Image struct {
	URL     string `json:"url"`
	Blocked bool   `json:"blocked"`
}

// petImages merges the three shapes images arrive in, in a fixed order:
// the photos array, the images array, then a single image field. Elements may
// be plain URL strings or objects. The result is capped at 5 entries; the cap
// is a hard limit, not a pagination cursor.
func petImages(r Raw, base string) []Image {
	var images []Image

	if photos, ok := r["photos"].([]any); ok {
		for _, photo := range photos {
			if img, ok := imageFromValue(photo, base); ok {
				images = append(images, img)
			}
		}
	}
	if list, ok := r["images"].([]any); ok {
		for _, entry := range list {
			if img, ok := imageFromValue(entry, base); ok {
				images = append(images, img)
			}
		}
	}
	if single, ok := r["image"]; ok && single != nil {
		if img, ok := imageFromValue(single, base); ok {
			images = append(images, img)
		}
	}

	if len(images) > maxImagesPerPet {
		images = images[:maxImagesPerPet]
	}
	return images
}

func imageFromValue(v any, base string) (Image, bool) {
	switch t := v.(type) {
	case string:
		url := AbsoluteURL(base, t)
		if url == "" {
			return Image{}, false
		}
		return Image{URL: url}, true
	case map[string]any:
		raw := anyToString(t["url"])
		if raw == "" {
			raw = anyToString(t["image"])
		}
		url := AbsoluteURL(base, raw)
		if url == "" {
			return Image{}, false
		}
		// "blocked" is our own output spelling; accepting it keeps
		// normalization idempotent.
		return Image{URL: url, Blocked: blockedFlag(t) || flexBool(t["blocked"])}, true
	default:
		return Image{}, false
	}
}
