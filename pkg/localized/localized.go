// Package localized models bilingual display values. Content authored in the
// back office may be a plain string or an {ar, en} object; both shapes decode
// into Text and resolve to a display string without ever failing.
package localized

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const (
	LangArabic  = "ar"
	LangEnglish = "en"
)

// Text is either a plain string or a pair of Arabic/English variants.
type Text struct {
	plain bool
	text  string
	ar    string
	en    string
}

// New builds a bilingual Text.
func New(ar, en string) Text {
	return Text{ar: ar, en: en}
}

// FromString builds a plain Text that resolves identically for every language.
func FromString(s string) Text {
	return Text{plain: true, text: s}
}

// Resolve returns the display string for the requested language, falling back
// Arabic then English then empty. Total: never fails, never nil.
func (t Text) Resolve(lang string) string {
	if t.plain {
		return t.text
	}
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case LangEnglish:
		if t.en != "" {
			return t.en
		}
	case LangArabic:
		if t.ar != "" {
			return t.ar
		}
	}
	if t.ar != "" {
		return t.ar
	}
	return t.en
}

// Arabic returns the Arabic variant (the plain text for plain values).
func (t Text) Arabic() string {
	if t.plain {
		return t.text
	}
	return t.ar
}

// English returns the English variant (the plain text for plain values).
func (t Text) English() string {
	if t.plain {
		return t.text
	}
	return t.en
}

// IsZero reports whether no variant carries any text.
func (t Text) IsZero() bool {
	if t.plain {
		return t.text == ""
	}
	return t.ar == "" && t.en == ""
}

type textJSON struct {
	Ar string `json:"ar,omitempty"`
	En string `json:"en,omitempty"`
}

func (t Text) MarshalJSON() ([]byte, error) {
	if t.plain {
		return json.Marshal(t.text)
	}
	return json.Marshal(textJSON{Ar: t.ar, En: t.en})
}

func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*t = Text{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text{plain: true, text: s}
		return nil
	}
	var obj textJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*t = Text{ar: obj.Ar, en: obj.En}
	return nil
}

// Value stores the JSON form, so plain and bilingual values round-trip.
func (t Text) Value() (driver.Value, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Text) Scan(value any) error {
	if value == nil {
		*t = Text{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("localized: cannot scan %T", value)
	}
	if len(raw) == 0 {
		*t = Text{}
		return nil
	}
	return t.UnmarshalJSON(raw)
}

func (Text) GormDataType() string { return "json" }

func (Text) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "jsonb"
	case "mysql":
		return "json"
	default:
		return "text"
	}
}
