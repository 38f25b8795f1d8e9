package upstream

import "fmt"

// Error is a non-2xx upstream response. Its message is the response body text
// when the API sent one, otherwise a generic status line.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
