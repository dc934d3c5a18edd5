// Package schema holds the declarative validation rules for project metadata
// and document structure. Validation never stops at the first failure: every
// violated rule is collected into one errs.ValidationIssues report so a form
// can show all problems from a single submission attempt.
package schema

import (
	"net/url"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/rpupo63/project-editor-backend/errs"
	"github.com/rpupo63/project-editor-backend/models"
)

// Field limits for project metadata.
const (
	TitleMax        = 200
	SubTitleMax     = 300
	AdvisorMax      = 100
	HashTagMax      = 10
	ParticipantsMax = 20
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Mode selects how strictly required-ness is enforced.
type Mode int

const (
	// Complete enforces every rule, for final submission.
	Complete Mode = iota
	// Partial suppresses required-ness while a form is mid-entry; values that
	// are present are still checked against format and size rules.
	Partial
)

// ValidateComplete checks a fully assembled project against the complete
// schema. It returns nil when the project is valid.
func ValidateComplete(p *models.Project) errs.ValidationIssues {
	return validate(p, Complete)
}

// ValidatePartial checks a draft-state project: required fields may be absent,
// everything present must still be well formed.
func ValidatePartial(p *models.Project) errs.ValidationIssues {
	return validate(p, Partial)
}

// ValidateSimple checks only title and document content, the minimal schema
// used before full metadata entry exists.
func ValidateSimple(p *models.Project) errs.ValidationIssues {
	var issues errs.ValidationIssues
	issues = checkTitle(issues, p.Title, Complete)
	issues = checkContent(issues, p, Complete)
	return issues
}

func validate(p *models.Project, mode Mode) errs.ValidationIssues {
	var issues errs.ValidationIssues

	issues = checkTitle(issues, p.Title, mode)

	if utf8.RuneCountInString(p.SubTitle) > SubTitleMax {
		issues = append(issues, errs.ValidationIssue{Field: "subTitle", Message: "부제목은 300자를 초과할 수 없습니다"})
	}

	if p.Thumbnail1 != "" && !isAbsoluteURL(p.Thumbnail1) {
		issues = append(issues, errs.ValidationIssue{Field: "thumbnail1", Message: "올바른 URL 형식이 아닙니다"})
	}

	if len(p.HashTag) > HashTagMax {
		issues = append(issues, errs.ValidationIssue{Field: "hashTag", Message: "해시태그는 최대 10개까지 입력 가능합니다"})
	}

	issues = checkDate(issues, "startDate", p.StartDate, "시작일을 입력해주세요", mode)
	issues = checkDate(issues, "endDate", p.EndDate, "종료일을 입력해주세요", mode)

	if utf8.RuneCountInString(p.Advisor) > AdvisorMax {
		issues = append(issues, errs.ValidationIssue{Field: "advisor", Message: "지도교수 이름은 100자를 초과할 수 없습니다"})
	}

	if len(p.Participants) > ParticipantsMax {
		issues = append(issues, errs.ValidationIssue{Field: "participants", Message: "참여학생은 최대 20명까지 입력 가능합니다"})
	}

	if mode == Complete && p.Summary == "" {
		issues = append(issues, errs.ValidationIssue{Field: "summary", Message: "요약 정보를 입력해주세요"})
	}

	issues = checkContent(issues, p, mode)

	if mode == Complete && p.EditorVersion == "" {
		issues = append(issues, errs.ValidationIssue{Field: "editorVersion", Message: "에디터 버전 정보가 없습니다"})
	}

	// Cross-field rule: the period must not end before it starts. The issue is
	// attached to endDate so the form places it on the right input. Runs only
	// when both dates parse as real calendar dates; format problems were
	// already reported per field above.
	if start, err := time.Parse(dateLayout, p.StartDate); err == nil {
		if end, err := time.Parse(dateLayout, p.EndDate); err == nil && end.Before(start) {
			issues = append(issues, errs.ValidationIssue{Field: "endDate", Message: "종료일은 시작일보다 이후여야 합니다"})
		}
	}

	return issues
}

func checkTitle(issues errs.ValidationIssues, title string, mode Mode) errs.ValidationIssues {
	if title == "" {
		if mode == Complete {
			issues = append(issues, errs.ValidationIssue{Field: "title", Message: "제목을 입력해주세요"})
		}
		return issues
	}
	if utf8.RuneCountInString(title) > TitleMax {
		issues = append(issues, errs.ValidationIssue{Field: "title", Message: "제목은 200자를 초과할 수 없습니다"})
	}
	return issues
}

func checkDate(issues errs.ValidationIssues, field, value, requiredMsg string, mode Mode) errs.ValidationIssues {
	if value == "" {
		if mode == Complete {
			issues = append(issues, errs.ValidationIssue{Field: field, Message: requiredMsg})
		}
		return issues
	}
	if !datePattern.MatchString(value) {
		issues = append(issues, errs.ValidationIssue{Field: field, Message: "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"})
	}
	return issues
}

func checkContent(issues errs.ValidationIssues, p *models.Project, mode Mode) errs.ValidationIssues {
	if mode == Partial {
		return issues
	}
	if !p.ContentJSON.Document().HasContent() {
		issues = append(issues, errs.ValidationIssue{Field: "contentJson", Message: "내용을 입력해주세요"})
	}
	return issues
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}
