package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is the authored write-up: form metadata plus the block document
// produced by the editor. A project is assembled transiently during authoring,
// becomes immutable once persisted, and is recreated wholesale on edit.
type Project struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4();not null"`
	Title         string         `json:"title" gorm:"type:text;not null"`
	SubTitle      string         `json:"subTitle" gorm:"type:text;not null;default:''"`
	Thumbnail1    string         `json:"thumbnail1" gorm:"type:text;not null;default:''"`
	HashTag       StringList     `json:"hashTag" gorm:"type:jsonb;not null;default:'[]'"`
	StartDate     string         `json:"startDate" gorm:"type:text;not null"`
	EndDate       string         `json:"endDate" gorm:"type:text;not null"`
	Advisor       string         `json:"advisor" gorm:"type:text;not null;default:''"`
	Participants  StringList     `json:"participants" gorm:"type:jsonb;not null;default:'[]'"`
	Summary       string         `json:"summary" gorm:"type:text;not null"`
	ContentJSON   DocumentColumn `json:"contentJson" gorm:"type:jsonb;not null"`
	EditorVersion string         `json:"editorVersion" gorm:"type:text;not null"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
