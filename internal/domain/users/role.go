package users

import (
	"time"

	"toadtoe-api/internal/domain/access"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRole is one (user, role) assignment. A user may hold several rows.
type UserRole struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID uint        `gorm:"not null;uniqueIndex:idx_user_roles_user_role" json:"user_id"`
	User   User        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Role   access.Role `gorm:"type:varchar(32);not null;uniqueIndex:idx_user_roles_user_role" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}

// ResolveRoles reads every role row for the user. Empty set if none.
// Callers must fail closed on error: a role-fetch failure means the viewer
// gets no elevated access, and admin surfaces do not render.
func ResolveRoles(db *gorm.DB, userID uint) (access.RoleSet, error) {
	var rows []UserRole
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	set := make(access.RoleSet, 0, len(rows))
	for _, r := range rows {
		set = append(set, r.Role)
	}
	return set, nil
}

// GrantRole inserts the assignment; granting a role the user already holds is
// a no-op.
func GrantRole(db *gorm.DB, userID uint, role access.Role) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&UserRole{UserID: userID, Role: role}).Error
}

// RevokeRole deletes the assignment; revoking an absent role is a no-op.
func RevokeRole(db *gorm.DB, userID uint, role access.Role) error {
	return db.Where("user_id = ? AND role = ?", userID, role).
		Delete(&UserRole{}).Error
}
