// Package inquiry persists prospective-student inquiries against a table
// whose column set is discovered at runtime. The submit path adapts the
// write record to the probed columns; SubmitBasic is the degraded fallback
// used when the adaptive write fails.
package inquiry

import (
	"log"
	"regexp"
	"strings"

	"techverse/models"
	"techverse/services/apperr"
	"techverse/services/schema"

	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormData carries a user-submitted inquiry form
type FormData struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CourseInterest string `json:"course_interest"`
	Message        string `json:"message"`
}

// ConnectionReport describes the reachability of the inquiries table
type ConnectionReport struct {
	Connected bool     `json:"connected"`
	Columns   []string `json:"columns,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// validate trims and checks required fields. Runs before any store call.
func validate(data *FormData) error {
	data.Name = strings.TrimSpace(data.Name)
	data.Email = strings.TrimSpace(data.Email)
	data.Phone = strings.TrimSpace(data.Phone)
	data.CourseInterest = strings.TrimSpace(data.CourseInterest)
	data.Message = strings.TrimSpace(data.Message)

	if data.Name == "" {
		return apperr.NewValidation("name", "Name is required")
	}
	if data.Email == "" {
		return apperr.NewValidation("email", "Email is required")
	}
	if !emailPattern.MatchString(data.Email) {
		return apperr.NewValidation("email", "Please enter a valid email address")
	}
	return nil
}

// Submit validates the form, adapts the write record to the probed column
// set and inserts it. Optional values whose column is missing are folded
// into the message field rather than dropped. On insert failure the cached
// column set is invalidated so the caller's retry re-probes.
func Submit(db *gorm.DB, data FormData) (*models.Inquiry, error) {
	if err := validate(&data); err != nil {
		return nil, err
	}

	cols := schema.Columns(db)

	record := map[string]interface{}{
		"name":  data.Name,
		"email": data.Email,
	}

	if schema.Has(cols, "phone") && data.Phone != "" {
		record["phone"] = data.Phone
	}

	if schema.Has(cols, "course_interest") && data.CourseInterest != "" {
		record["course_interest"] = data.CourseInterest
	}

	if schema.Has(cols, "message") {
		// Fold the course interest into the message when its column is absent
		if !schema.Has(cols, "course_interest") && data.CourseInterest != "" {
			courseInfo := "Course Interest: " + data.CourseInterest
			if data.Message != "" {
				record["message"] = courseInfo + "\n\n" + data.Message
			} else {
				record["message"] = courseInfo
			}
		} else if data.Message != "" {
			record["message"] = data.Message
		}
	}

	if schema.Has(cols, "source") {
		record["source"] = "website"
	}

	if schema.Has(cols, "status") {
		record["status"] = models.InquiryNew
	}

	if err := db.Table("inquiries").Create(record).Error; err != nil {
		log.Printf("Inquiry insertion error: %v", err)
		schema.Invalidate()
		return nil, apperr.WrapStore("failed to submit inquiry", err)
	}

	return fetchLatest(db, data.Email)
}

// SubmitBasic is the fallback path. It concatenates course interest,
// message and phone into the message field and writes only the minimal
// column set, without probing.
func SubmitBasic(db *gorm.DB, data FormData) (*models.Inquiry, error) {
	if err := validate(&data); err != nil {
		return nil, err
	}

	var combined strings.Builder
	if data.CourseInterest != "" && data.CourseInterest != "general" {
		combined.WriteString("Course Interest: " + data.CourseInterest + "\n\n")
	}
	if data.Message != "" {
		combined.WriteString("Message: " + data.Message + "\n\n")
	}
	if data.Phone != "" {
		combined.WriteString("Phone: " + data.Phone)
	}

	message := strings.TrimSpace(combined.String())
	if message == "" {
		message = "General inquiry"
	}

	record := map[string]interface{}{
		"name":    data.Name,
		"email":   data.Email,
		"message": message,
	}

	if err := db.Table("inquiries").Create(record).Error; err != nil {
		log.Printf("Basic inquiry insertion error: %v", err)
		return nil, apperr.WrapStore("failed to submit basic inquiry", err)
	}

	return fetchLatest(db, data.Email)
}

// fetchLatest returns the newest stored inquiry for an email. Map-based
// inserts don't report the generated id, so the inserted row is read back.
func fetchLatest(db *gorm.DB, email string) (*models.Inquiry, error) {
	var inq models.Inquiry
	if err := db.Where("email = ?", email).Order("id DESC").First(&inq).Error; err != nil {
		return nil, apperr.WrapStore("failed to read back inquiry", err)
	}
	return &inq, nil
}

// List returns all inquiries, newest first
func List(db *gorm.DB) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	if err := db.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, apperr.WrapStore("failed to fetch inquiries", err)
	}
	return inquiries, nil
}

// UpdateStatus sets an inquiry's status. Any status may overwrite any
// other; only enum membership is checked. updated_at is touched only when
// that column exists.
func UpdateStatus(db *gorm.DB, id uint, status string) (*models.Inquiry, error) {
	if !models.IsValidInquiryStatus(status) {
		return nil, apperr.NewValidation("status", "Invalid inquiry status")
	}

	update := map[string]interface{}{"status": status}
	if schema.Has(schema.Columns(db), "updated_at") {
		update["updated_at"] = gorm.Expr("CURRENT_TIMESTAMP")
	}

	result := db.Table("inquiries").Where("id = ?", id).Updates(update)
	if result.Error != nil {
		schema.Invalidate()
		return nil, apperr.WrapStore("failed to update inquiry status", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.WrapStore("failed to update inquiry status", gorm.ErrRecordNotFound)
	}

	var inq models.Inquiry
	if err := db.Where("id = ?", id).First(&inq).Error; err != nil {
		return nil, apperr.WrapStore("failed to read back inquiry", err)
	}
	return &inq, nil
}

// TestConnection checks the inquiries table and reports its column set.
// Used by the admin diagnostics endpoint.
func TestConnection(db *gorm.DB) ConnectionReport {
	var rows []map[string]interface{}
	if err := db.Table("inquiries").Limit(1).Find(&rows).Error; err != nil {
		return ConnectionReport{Connected: false, Error: "Connection failed: " + err.Error()}
	}
	return ConnectionReport{Connected: true, Columns: schema.Columns(db)}
}
