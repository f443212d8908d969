package models

import (
	"time"
)

// Role is the closed set of account roles. Authorization is expressed
// through the capability predicates below rather than string comparisons
// at call sites.
type Role string

const (
	RoleVisitor    Role = "visitor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleVisitor, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// CanReviewPapers reports whether the role may approve or reject papers.
func (r Role) CanReviewPapers() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// CanViewApplications reports whether the role may list reviewer
// applications.
func (r Role) CanViewApplications() bool {
	return r == RoleSuperAdmin
}

type User struct {
	UserID        string     `gorm:"primaryKey;column:user_id;size:36" json:"user_id"`
	Email         string     `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Name          string     `gorm:"column:name" json:"name"`
	Institution   string     `gorm:"column:institution" json:"institution"`
	StudyArea     string     `gorm:"column:study_area" json:"study_area"`
	Role          Role       `gorm:"column:role;size:32" json:"role"`
	Contributions []string   `gorm:"column:contributions;serializer:json" json:"contributions"`
	Password      string     `gorm:"column:password" json:"-"`
	CreateAt      time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}
