package controllers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"journal-portal-api/config"
	"journal-portal-api/models"
	"journal-portal-api/monitor"
	"journal-portal-api/services"
	"journal-portal-api/storage"
	"journal-portal-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var notifyApplication = services.NotifyReviewerApplication

// ApplyReviewer stores an application to join the editorial board. Both
// files are uploaded to remote storage; the application row itself carries
// no approval state.
func ApplyReviewer(c *gin.Context) {
	name := utils.SanitizeInput(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	institution := utils.SanitizeInput(c.PostForm("institution"))
	motivation := c.PostForm("motivation_letter")
	specialization := c.PostForm("specialization")
	references := c.PostForm("references")
	experience := c.PostForm("experience")

	if name == "" || email == "" || institution == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if !utils.ValidateEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	// Length in characters, not bytes: Spanish letters are full of
	// multibyte runes. The journal guidelines say 500 words, but the
	// check has always been on characters; keep it until the guidelines
	// are reconciled.
	if utf8.RuneCountInString(motivation) < utils.MinMotivationLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Motivation letter must be at least %d characters", utils.MinMotivationLength),
		})
		return
	}

	cvHeader, err := c.FormFile("cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No CV uploaded"})
		return
	}
	certHeader, err := c.FormFile("certificates")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No certificates uploaded"})
		return
	}

	cvContent, err := readUpload(cvHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read CV"})
		return
	}
	certContent, err := readUpload(certHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read certificates"})
		return
	}

	cvURL, err := uploadFile(c.Request.Context(), storage.FolderCVs, cvHeader.Filename, cvContent)
	if err != nil {
		log.Printf("CV upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload CV"})
		return
	}
	certURL, err := uploadFile(c.Request.Context(), storage.FolderCertificates, certHeader.Filename, certContent)
	if err != nil {
		log.Printf("Certificates upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload certificates"})
		return
	}

	application := models.ReviewerApplication{
		ApplicationID:    uuid.NewString(),
		Name:             name,
		Email:            email,
		Institution:      institution,
		CVURL:            cvURL,
		MotivationLetter: motivation,
		Specialization:   splitList(specialization),
		References:       splitList(references),
		Experience:       experience,
		CertificatesURL:  certURL,
		CreateAt:         time.Now().UTC(),
	}

	if err := config.DB.Create(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save application"})
		return
	}

	monitor.ReviewerApplications.Inc()

	if err := notifyApplication(&application, cvContent, cvHeader.Filename); err != nil {
		log.Printf("Failed to send application notification for %s: %v", application.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reviewer application submitted successfully"})
}

// GetApplications lists reviewer applications for the editor in chief.
func GetApplications(c *gin.Context) {
	var applications []models.ReviewerApplication
	if err := config.DB.Limit(maxListedPapers).Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, applications)
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
