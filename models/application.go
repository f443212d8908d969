package models

import (
	"time"
)

// ReviewerApplication is a request to join the editorial board. It has no
// state machine of its own: applications are created once and read by the
// editor in chief; the decision happens off-platform.
type ReviewerApplication struct {
	ApplicationID    string    `gorm:"primaryKey;column:application_id;size:36" json:"application_id"`
	Name             string    `gorm:"column:name" json:"name"`
	Email            string    `gorm:"column:email;size:255" json:"email"`
	Institution      string    `gorm:"column:institution" json:"institution"`
	CVURL            string    `gorm:"column:cv_url" json:"cv_url"`
	MotivationLetter string    `gorm:"column:motivation_letter;type:text" json:"motivation_letter"`
	Specialization   []string  `gorm:"column:specialization;serializer:json" json:"specialization"`
	References       []string  `gorm:"column:references_list;serializer:json" json:"references"`
	Experience       string    `gorm:"column:experience;type:text" json:"experience"`
	CertificatesURL  string    `gorm:"column:certificates_url" json:"certificates_url"`
	CreateAt         time.Time `gorm:"column:create_at" json:"create_at"`
}

func (ReviewerApplication) TableName() string {
	return "reviewer_applications"
}
