package media

import "time"

// Image is one uploaded asset (article featured image or banner creative).
type Image struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Path      string `gorm:"not null" json:"path"`
	PublicURL string `gorm:"not null" json:"public_url"`

	UploadedBy uint `gorm:"index" json:"uploaded_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
