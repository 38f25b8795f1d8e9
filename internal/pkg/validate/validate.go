package validate

import "strings"

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Email is a shape check, not an RFC parser: something before and after a
// single @, with a dot in the domain part.
func Email(value string) bool {
	value = strings.TrimSpace(value)
	at := strings.Index(value, "@")
	if at <= 0 || at != strings.LastIndex(value, "@") {
		return false
	}
	domain := value[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
