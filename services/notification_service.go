package services

import (
	"fmt"
	"strings"

	"journal-portal-api/config"
	"journal-portal-api/models"
)

// Notifications are best-effort: every caller logs a returned error and
// proceeds. Delivery failure never affects the outcome of the operation
// that triggered the mail.

// NotifyPaperSubmitted mails the editorial inbox a summary of a new
// submission with the manuscript attached.
func NotifyPaperSubmitted(paper *models.Paper, manuscript []byte, filename string) error {
	if config.App.EditorialEmail == "" {
		return fmt.Errorf("editorial email not configured")
	}

	body := fmt.Sprintf(
		"Title: %s\nAuthors: %s\nInstitution: %s\nCategory: %s\nAbstract: %s\nDOI: %s",
		paper.Title,
		strings.Join(paper.Authors, ", "),
		paper.Institution,
		paper.Category,
		paper.Abstract,
		paper.DOI,
	)

	return config.SendMail(
		[]string{config.App.EditorialEmail},
		"New Paper Submission",
		body,
		config.Attachment{Filename: filename, Data: manuscript},
	)
}

// NotifyReviewerApplication mails the editorial inbox a summary of a new
// reviewer application with the CV attached.
func NotifyReviewerApplication(app *models.ReviewerApplication, cv []byte, filename string) error {
	if config.App.EditorialEmail == "" {
		return fmt.Errorf("editorial email not configured")
	}

	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nInstitution: %s\nMotivation: %s",
		app.Name,
		app.Email,
		app.Institution,
		app.MotivationLetter,
	)

	// Subject wording predates the reviewer/admin rename and is kept for
	// the editorial inbox filters.
	return config.SendMail(
		[]string{config.App.EditorialEmail},
		"New Admin Application",
		body,
		config.Attachment{Filename: filename, Data: cv},
	)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NotifyReviewDecision mails the submitter the outcome of a review.
func NotifyReviewDecision(paper *models.Paper, action, comment string) error {
	subject := fmt.Sprintf("Paper %s", capitalize(action))
	body := fmt.Sprintf(
		"Your paper '%s' has been %s.\n\nComment: %s",
		paper.Title,
		action,
		comment,
	)

	return config.SendMail([]string{paper.Email}, subject, body)
}
