package emailtpl

import (
	"strings"
	"time"
)

// Template keys. One row per key; admins edit subject and HTML in place.
const (
	KeyWelcome      = "welcome"
	KeyConfirmEmail = "confirm_email"
	KeyIntroduction = "introduction"
)

type EmailTemplate struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Key     string `gorm:"not null;uniqueIndex" json:"key"`
	Subject string `gorm:"not null" json:"subject"`
	HTML    string `gorm:"column:html;not null" json:"html"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Render substitutes {{placeholder}} variables into subject and body.
// Unknown placeholders are left as-is, matching the original template
// literals' behavior of only filling what the sender provides.
func (t EmailTemplate) Render(vars map[string]string) (subject, html string) {
	subject, html = t.Subject, t.HTML
	for k, v := range vars {
		needle := "{{" + k + "}}"
		subject = strings.ReplaceAll(subject, needle, v)
		html = strings.ReplaceAll(html, needle, v)
	}
	return subject, html
}
