package controllers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"journal-portal-api/config"
	"journal-portal-api/models"
	"journal-portal-api/monitor"
	"journal-portal-api/services"
	"journal-portal-api/storage"
	"journal-portal-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Seams for tests; production wiring stays in the package vars.
var (
	uploadFile           = storage.Upload
	notifySubmission     = services.NotifyPaperSubmitted
	notifyReviewDecision = services.NotifyReviewDecision
)

// Listings are bounded; the store's natural order is kept.
const maxListedPapers = 100

// SubmitPaper validates and stores a manuscript submission. The uploaded
// file goes to remote storage first; if the database write fails afterwards
// the object is orphaned there (no cleanup, accepted trade-off).
func SubmitPaper(c *gin.Context) {
	title := utils.SanitizeInput(c.PostForm("title"))
	authors := c.PostForm("authors")
	institution := utils.SanitizeInput(c.PostForm("institution"))
	email := strings.TrimSpace(c.PostForm("email"))
	category := utils.SanitizeInput(c.PostForm("category"))
	abstract := c.PostForm("abstract")
	keywords := c.PostForm("keywords")

	if title == "" || authors == "" || email == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if !utils.ValidateEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	wordCount, err := strconv.Atoi(c.PostForm("word_count"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid word count"})
		return
	}
	if !utils.ValidWordCount(wordCount) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Word count must be between %d and %d", utils.MinWordCount, utils.MaxWordCount),
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if !utils.ValidManuscriptFilename(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only .doc or .docx files allowed"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	fileURL, err := uploadFile(c.Request.Context(), storage.FolderPapers, fileHeader.Filename, content)
	if err != nil {
		log.Printf("Manuscript upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	paper := models.Paper{
		PaperID:        uuid.NewString(),
		Title:          title,
		Authors:        splitList(authors),
		Institution:    institution,
		Email:          email,
		Category:       category,
		Abstract:       abstract,
		Keywords:       splitList(keywords),
		WordCount:      wordCount,
		FileURL:        fileURL,
		Status:         models.PaperStatusPending,
		SubmissionDate: time.Now().UTC(),
		Comments:       []string{},
		DOI:            utils.NewDOI(),
	}

	if err := config.DB.Create(&paper).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save paper"})
		return
	}

	monitor.PapersSubmitted.Inc()

	// Best-effort notification; the submission already succeeded.
	if err := notifySubmission(&paper, content, fileHeader.Filename); err != nil {
		log.Printf("Failed to send submission notification for %s: %v", paper.DOI, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Paper submitted successfully",
		"doi":     paper.DOI,
	})
}

// ListPapers returns papers matching the query filters. Without an explicit
// status filter only approved papers are returned, since this listing is
// public-facing.
func ListPapers(c *gin.Context) {
	query := config.DB.Model(&models.Paper{})

	status := c.Query("status")
	if status == "" {
		status = models.PaperStatusApproved
	}
	query = query.Where("status = ?", status)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if author := c.Query("author"); author != "" {
		// Authors are stored as a JSON array; match list membership.
		query = query.Where("JSON_CONTAINS(authors, JSON_QUOTE(?))", author)
	}
	if institution := c.Query("institution"); institution != "" {
		query = query.Where("institution = ?", institution)
	}

	var papers []models.Paper
	if err := query.Limit(maxListedPapers).Find(&papers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch papers"})
		return
	}

	c.JSON(http.StatusOK, papers)
}

type ReviewRequest struct {
	Action  string `json:"action" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// ReviewPaper records a review decision: the comment is appended, the
// status overwritten, and the submitter notified. A later review simply
// overwrites the status again; all comments are kept in order.
func ReviewPaper(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidPaperStatus(req.Action) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Action must be one of: pending, approved, rejected",
		})
		return
	}

	paperID := c.Param("id")

	var paper models.Paper
	if err := config.DB.Where("paper_id = ?", paperID).First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	now := time.Now().UTC()
	paper.Comments = append(paper.Comments, req.Comment)
	paper.Status = req.Action
	paper.ReviewedAt = &now

	// Single-row UPDATE; the store's per-row write is the atomicity unit.
	if err := config.DB.Save(&paper).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update paper"})
		return
	}

	monitor.ReviewsRecorded.WithLabelValues(req.Action).Inc()

	if err := notifyReviewDecision(&paper, req.Action, req.Comment); err != nil {
		log.Printf("Failed to notify author of %s: %v", paper.DOI, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Paper %s successfully", req.Action)})
}

// GetCategories returns the fixed category list.
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories)
}

// splitList turns a comma-separated form value into trimmed entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
