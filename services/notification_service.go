package services

import (
	"fmt"
	"log"

	"creator-directory-api/config"
	"creator-directory-api/models"
	"creator-directory-api/utils"

	"gorm.io/gorm"
)

// NotificationService sends review decision emails. Delivery is
// best-effort: failures are logged and never surfaced to the review flow,
// and anonymous owners have no address to notify.
type NotificationService struct {
	db *gorm.DB
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotifyDecision emails the owner of a submission about an accept/decline
// decision, if the owner is an authenticated user with an email address.
func (s *NotificationService) NotifyDecision(submission *models.CreatorSubmission, status string, comment *string) {
	if submission == nil || submission.UserID == nil {
		return
	}
	if status != models.StatusAccepted && status != models.StatusDeclined {
		return
	}

	var user models.User
	if err := s.db.Where("user_id = ? AND delete_at IS NULL", *submission.UserID).First(&user).Error; err != nil {
		log.Printf("notification: owner %d not found for submission %d: %v", *submission.UserID, submission.SubmissionID, err)
		return
	}
	if !utils.ValidateEmail(user.Email) {
		return
	}

	subject := fmt.Sprintf("Your submission %q was %s", submission.Name, status)
	body := fmt.Sprintf("<p>Your creator submission <strong>%s</strong> has been <strong>%s</strong>.</p>", submission.Name, status)
	if comment != nil && *comment != "" {
		body += fmt.Sprintf("<p>Reviewer comment: %s</p>", *comment)
	}

	if err := config.SendMail([]string{user.Email}, subject, body); err != nil {
		log.Printf("notification: failed to send decision mail for submission %d: %v", submission.SubmissionID, err)
	}
}
