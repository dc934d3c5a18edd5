package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/rpupo63/project-editor-backend/document"
)

// StringList stores an ordered string sequence as a jsonb column. Insertion
// order is preserved; nil serializes as the canonical empty list.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// DocumentColumn stores a block document as a jsonb column while keeping the
// document package's wire format.
type DocumentColumn document.Document

func (d DocumentColumn) Value() (driver.Value, error) {
	return json.Marshal(document.Document(d))
}

func (d *DocumentColumn) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = DocumentColumn{}
		return nil
	case []byte:
		return json.Unmarshal(v, (*document.Document)(d))
	case string:
		return json.Unmarshal([]byte(v), (*document.Document)(d))
	default:
		return fmt.Errorf("cannot scan %T into DocumentColumn", src)
	}
}

// Document returns the column as the wire-format document type.
func (d DocumentColumn) Document() document.Document {
	return document.Document(d)
}
