package faq

import "strings"

// Validate reports whether data is structurally sound for downstream use:
// non-nil, at least one item, and every question and answer non-blank after
// trimming. A single violating item fails the whole value. Validate never
// panics and inspects only the question/answer fields.
func Validate(data *Data) bool {
	if data == nil || len(data.Items) == 0 {
		return false
	}
	for _, it := range data.Items {
		if strings.TrimSpace(it.Question) == "" || strings.TrimSpace(it.Answer) == "" {
			return false
		}
	}
	return true
}
