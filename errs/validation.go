package errs

import "strings"

// ValidationIssue is a single violated rule, tied to the field that caused it
// so a form UI can place the message next to the right input.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationIssues aggregates every rule violated in one validation pass. It is
// a structured result carried through the error return, never a thrown
// control-flow exception: callers inspect it with errors.As and surface all
// issues from a single submission attempt.
type ValidationIssues []ValidationIssue

func (v ValidationIssues) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(v))
	for i, issue := range v {
		parts[i] = issue.Field + ": " + issue.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldIssue returns the first issue recorded for the given field, if any.
func (v ValidationIssues) FieldIssue(field string) (ValidationIssue, bool) {
	for _, issue := range v {
		if issue.Field == field {
			return issue, true
		}
	}
	return ValidationIssue{}, false
}
