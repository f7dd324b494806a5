// Package schema discovers which columns actually exist on the inquiries
// table. The table is provisioned outside this application and narrower
// deployments are common, so every adaptive write consults the probed set
// instead of assuming a fixed contract. Probing is best-effort and never
// fails: any store error degrades to a minimal hardcoded column set.
package schema

import (
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MinimalColumns is the column set assumed to always exist
var MinimalColumns = []string{"name", "email", "phone", "message"}

// FullColumns is every column the application ever tries to write
var FullColumns = []string{"name", "email", "phone", "course_interest", "message", "source", "status"}

var (
	mu     sync.Mutex
	cached []string
)

// Columns returns the column set of the inquiries table. The result is
// cached for the process lifetime; callers that observe a write failure
// must call Invalidate so the next write re-probes instead of trusting a
// stale assumption.
func Columns(db *gorm.DB) []string {
	mu.Lock()
	defer mu.Unlock()

	if cached == nil {
		cached = probe(db)
	}

	cols := make([]string, len(cached))
	copy(cols, cached)
	return cols
}

// Invalidate clears the cached column set
func Invalidate() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}

// Has reports whether column name is in cols
func Has(cols []string, name string) bool {
	for _, c := range cols {
		if c == name {
			return true
		}
	}
	return false
}

// probe inspects the live table. Strategy: sample one row and read its
// column names; if the table is empty, attempt a disposable sentinel insert
// of the full column set and delete it again; if either path errors,
// fall back to MinimalColumns.
func probe(db *gorm.DB) []string {
	var rows []map[string]interface{}
	if err := db.Table("inquiries").Limit(1).Find(&rows).Error; err != nil {
		log.Printf("Error checking inquiries table structure: %v", err)
		return minimalSet()
	}

	if len(rows) > 0 {
		cols := make([]string, 0, len(rows[0]))
		for name := range rows[0] {
			cols = append(cols, name)
		}
		sort.Strings(cols)
		return cols
	}

	// Empty table: try a sentinel insert covering every expected column.
	// The sentinel email is unique so the cleanup delete can never touch a
	// real row. Two concurrent probes may each insert and delete a
	// sentinel; harmless, just wasteful.
	sentinel := "probe-" + uuid.NewString() + "@techverse.internal"
	record := map[string]interface{}{
		"name":            "schema probe",
		"email":           sentinel,
		"phone":           "0",
		"course_interest": "probe",
		"message":         "schema probe",
		"source":          "probe",
		"status":          "new",
	}

	if err := db.Table("inquiries").Create(record).Error; err != nil {
		log.Printf("Inquiries probe insert rejected, assuming minimal schema: %v", err)
		return minimalSet()
	}

	if err := db.Exec("DELETE FROM inquiries WHERE email = ?", sentinel).Error; err != nil {
		log.Printf("Error deleting probe row %s: %v", sentinel, err)
	}

	cols := make([]string, len(FullColumns))
	copy(cols, FullColumns)
	return cols
}

func minimalSet() []string {
	cols := make([]string, len(MinimalColumns))
	copy(cols, MinimalColumns)
	return cols
}
