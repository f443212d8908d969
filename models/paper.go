package models

import (
	"time"
)

// Paper statuses form a closed set. The review endpoint rejects anything
// outside it.
const (
	PaperStatusPending  = "pending"
	PaperStatusApproved = "approved"
	PaperStatusRejected = "rejected"
)

// ValidPaperStatus reports whether s is an accepted review outcome.
func ValidPaperStatus(s string) bool {
	switch s {
	case PaperStatusPending, PaperStatusApproved, PaperStatusRejected:
		return true
	}
	return false
}

type Paper struct {
	PaperID        string     `gorm:"primaryKey;column:paper_id;size:36" json:"paper_id"`
	Title          string     `gorm:"column:title" json:"title"`
	Authors        []string   `gorm:"column:authors;serializer:json" json:"authors"`
	Institution    string     `gorm:"column:institution" json:"institution"`
	Email          string     `gorm:"column:email;size:255" json:"email"`
	Category       string     `gorm:"column:category" json:"category"`
	Abstract       string     `gorm:"column:abstract;type:text" json:"abstract"`
	Keywords       []string   `gorm:"column:keywords;serializer:json" json:"keywords"`
	WordCount      int        `gorm:"column:word_count" json:"word_count"`
	FileURL        string     `gorm:"column:file_url" json:"file_url"`
	Status         string     `gorm:"column:status;size:32" json:"status"`
	SubmissionDate time.Time  `gorm:"column:submission_date" json:"submission_date"`
	Comments       []string   `gorm:"column:comments;serializer:json" json:"comments"`
	DOI            string     `gorm:"column:doi;size:64" json:"doi"`
	ReviewedAt     *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
}

func (Paper) TableName() string {
	return "papers"
}

// Categories is the fixed list of accepted paper categories.
var Categories = []string{
	"Matemáticas", "Física", "Química", "Biología", "Medicina", "Psicología",
	"Sociología", "Historia", "Economía", "Ingeniería", "Informática", "Astronomía",
	"Geología", "Antropología", "Filosofía",
}
