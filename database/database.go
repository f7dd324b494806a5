package database

import (
	"fmt"
	"log"
	"os"
	"techverse/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to the hosted PostgreSQL instance
func ConnectDb() {
	// Build the PostgreSQL connection string
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	runMigrations(db)
	seedCourses(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations for app-owned tables.
// The inquiries table is intentionally left out: it is provisioned by the
// marketing team and its column set varies, which is why writes to it go
// through the schema prober instead of a migrated model.
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// seedCourses inserts the course catalog if it is empty
func seedCourses(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		log.Printf("Error counting courses: %v", err)
		return
	}
	if count > 0 {
		return
	}

	courses := []models.Course{
		{
			Slug:        "web-development",
			Title:       "Full Stack Web Development",
			Description: "HTML, CSS, JavaScript, React and Node.js from scratch to deployment.",
			Duration:    12,
			Price:       4999,
			PaymentLink: "https://pay.techverse.academy/web-development",
			IsPublished: true,
		},
		{
			Slug:        "data-science",
			Title:       "Data Science & Machine Learning",
			Description: "Python, statistics, ML models and real-world projects.",
			Duration:    16,
			Price:       6999,
			PaymentLink: "https://pay.techverse.academy/data-science",
			IsPublished: true,
		},
		{
			Slug:        "digital-marketing",
			Title:       "Digital Marketing Mastery",
			Description: "SEO, social media, paid ads and analytics for modern marketers.",
			Duration:    8,
			Price:       2999,
			PaymentLink: "https://pay.techverse.academy/digital-marketing",
			IsPublished: true,
		},
		{
			Slug:        "finance-essentials",
			Title:       "Finance Essentials",
			Description: "Personal finance, markets and investment fundamentals.",
			Duration:    6,
			Price:       1999,
			PaymentLink: "https://pay.techverse.academy/finance-essentials",
			IsPublished: true,
		},
	}

	if err := db.Create(&courses).Error; err != nil {
		log.Printf("Error seeding courses: %v", err)
		return
	}
	log.Printf("Seeded %d courses", len(courses))
}
