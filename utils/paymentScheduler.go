package utils

import (
	"log"
	"time"

	"techverse/database"
	"techverse/models"
	"techverse/services/enrollment"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializePaymentScheduler sets up the daily payment reconciliation job
func InitializePaymentScheduler() {
	log.Println("[PAYMENT-SCHEDULER] Initializing payment scheduler...")

	c := cron.New()

	// Run daily at 9 AM to reconcile pending payments and nudge stragglers
	c.AddFunc("0 9 * * *", func() {
		log.Println("[PAYMENT-SCHEDULER] Running daily payment reconciliation...")
		ReconcilePendingPayments()
		SendPendingPaymentReminders()
	})

	c.Start()
	log.Println("[PAYMENT-SCHEDULER] Payment scheduler started - runs daily at 9 AM")
}

// ReconcilePendingPayments checks the gateway for every pending enrollment
// that carries a payment reference and applies the gateway verdict
func ReconcilePendingPayments() {
	db := database.Database.Db

	var pending []models.Enrollment
	if err := db.
		Where("payment_status = ? AND payment_reference <> ''", models.PaymentPending).
		Find(&pending).Error; err != nil {
		log.Printf("[PAYMENT-SCHEDULER] Error fetching pending enrollments: %v", err)
		return
	}

	log.Printf("[PAYMENT-SCHEDULER] Found %d pending enrollments with references", len(pending))

	for _, e := range pending {
		status, err := CheckPaymentStatus(e.PaymentReference)
		if err != nil || status == "" {
			continue
		}

		record, err := enrollment.AdminSetStatus(db, e.ID, status, e.PaymentReference)
		if err != nil {
			log.Printf("[PAYMENT-SCHEDULER] Error updating enrollment %d: %v", e.ID, err)
			continue
		}

		log.Printf("[PAYMENT-SCHEDULER] Enrollment %d reconciled to %s", e.ID, status)

		if record.PaymentStatus == models.PaymentCompleted {
			var user models.User
			if err := db.Where("id = ?", record.UserID).First(&user).Error; err == nil {
				SendPaymentConfirmation(user.Email, user.Name, record.CourseName, record.PaymentReference)
			}
		}
	}
}

// SendPendingPaymentReminders mails users whose enrollment has been
// pending for more than two days and hasn't received a reminder yet
func SendPendingPaymentReminders() {
	db := database.Database.Db
	cutoff := now.BeginningOfDay().Add(-48 * time.Hour)

	var stale []models.Enrollment
	if err := db.
		Where("payment_status = ? AND reminder_sent = false AND enrolled_at < ?", models.PaymentPending, cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("[PAYMENT-SCHEDULER] Error fetching stale enrollments: %v", err)
		return
	}

	for _, e := range stale {
		var user models.User
		if err := db.Where("id = ?", e.UserID).First(&user).Error; err != nil {
			log.Printf("[PAYMENT-SCHEDULER] Error fetching user %d: %v", e.UserID, err)
			continue
		}

		SendPaymentReminder(user.Email, user.Name, e.CourseName, e.PaymentLink)

		// Mark reminder as sent
		db.Model(&e).Update("reminder_sent", true)
		log.Printf("[PAYMENT-SCHEDULER] Sent payment reminder for enrollment %d to %s", e.ID, user.Email)
	}
}
