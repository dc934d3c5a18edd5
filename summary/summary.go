// Package summary converts between the structured summary fields of a project
// (period, advisor, participants) and the single display string stored on the
// project record.
package summary

import (
	"regexp"
	"strings"
)

// LineBreak joins summary lines. The summary renders inside HTML, so lines are
// separated by a literal <br> marker rather than a newline.
const LineBreak = "<br>"

// Fixed line labels of the stored format.
const (
	periodLabel       = "기간 :"
	advisorLabel      = "지도교수 :"
	participantsLabel = "참여학생 :"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Data holds the structured fields the summary string derives from. Dates are
// YYYY-MM-DD.
type Data struct {
	StartDate    string
	EndDate      string
	Advisor      string
	Participants []string
}

// formatDate rewrites YYYY-MM-DD to the displayed YYYY.MM.DD form.
func formatDate(date string) string {
	return strings.ReplaceAll(date, "-", ".")
}

// parseDate rewrites a displayed YYYY.MM.DD date back to YYYY-MM-DD.
func parseDate(date string) string {
	return strings.ReplaceAll(date, ".", "-")
}

// Format renders structured summary fields into the stored display string.
// Lines appear in period, advisor, participants order; a line is emitted only
// when its source data is present, so absent sections leave no blank line.
func Format(data Data) string {
	var lines []string

	if data.StartDate != "" && data.EndDate != "" {
		lines = append(lines, periodLabel+" "+formatDate(data.StartDate)+"~"+formatDate(data.EndDate))
	}

	if advisor := strings.TrimSpace(data.Advisor); advisor != "" {
		lines = append(lines, advisorLabel+" "+advisor)
	}

	var participants []string
	for _, p := range data.Participants {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			participants = append(participants, trimmed)
		}
	}
	if len(participants) > 0 {
		lines = append(lines, participantsLabel+" "+strings.Join(participants, ", "))
	}

	return strings.Join(lines, LineBreak)
}

// Parse reconstructs structured fields from a stored summary string. It is the
// best-effort inverse of Format: lines that match no known label are skipped,
// and nil is returned only for empty input.
func Parse(summary string) *Data {
	if summary == "" {
		return nil
	}

	data := &Data{Participants: []string{}}

	for _, line := range strings.Split(summary, LineBreak) {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, periodLabel):
			dateRange := strings.TrimSpace(strings.TrimPrefix(line, periodLabel))
			parts := strings.SplitN(dateRange, "~", 2)
			if len(parts) != 2 {
				continue
			}
			data.StartDate = parseDate(strings.TrimSpace(parts[0]))
			data.EndDate = parseDate(strings.TrimSpace(parts[1]))

		case strings.HasPrefix(line, advisorLabel):
			data.Advisor = strings.TrimSpace(strings.TrimPrefix(line, advisorLabel))

		case strings.HasPrefix(line, participantsLabel):
			raw := strings.Split(strings.TrimPrefix(line, participantsLabel), ",")
			participants := []string{}
			for _, p := range raw {
				if trimmed := strings.TrimSpace(p); trimmed != "" {
					participants = append(participants, trimmed)
				}
			}
			data.Participants = participants
		}
	}

	return data
}

// Validate checks the period fields ahead of formatting, independently of the
// full project schema. It returns a user-facing message, or the empty string
// when the data is valid.
func Validate(data Data) string {
	if data.StartDate == "" || data.EndDate == "" {
		return "기간은 필수 입력 항목입니다"
	}

	if !datePattern.MatchString(data.StartDate) || !datePattern.MatchString(data.EndDate) {
		return "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
	}

	// YYYY-MM-DD sorts chronologically, so a string compare is enough here.
	if data.EndDate < data.StartDate {
		return "종료일은 시작일보다 이후여야 합니다"
	}

	return ""
}
