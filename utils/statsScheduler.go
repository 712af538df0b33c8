package utils

import (
	"coursehub/database"
	courseModels "coursehub/models/course"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeStatsScheduler sets up the hourly refresh of per-course
// enrollment counters. The counters are informational only; the per-student
// enrollment index stays the source of truth.
func InitializeStatsScheduler() {
	log.Println("[STATS-SCHEDULER] Initializing course stats scheduler...")

	c := cron.New()

	c.AddFunc("@hourly", func() {
		log.Println("[STATS-SCHEDULER] Refreshing course enrollment counters...")
		RefreshEnrollmentCounters()
	})

	c.Start()
	log.Println("[STATS-SCHEDULER] Course stats scheduler started - runs hourly")
}

// RefreshEnrollmentCounters recomputes courses.enrolled_students from the
// per-student enrollment index
func RefreshEnrollmentCounters() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		log.Printf("[STATS-SCHEDULER] Error fetching courses: %v", err)
		return
	}

	updated := 0
	for _, crs := range courses {
		var count int64
		if err := db.Model(&courseModels.StudentCourse{}).
			Where("course_id = ? AND is_deleted = ?", crs.ID, false).
			Count(&count).Error; err != nil {
			log.Printf("[STATS-SCHEDULER] Error counting enrollments for course %d: %v", crs.ID, err)
			continue
		}

		if count == crs.EnrolledStudents {
			continue
		}

		if err := db.Model(&courseModels.Course{}).
			Where("id = ?", crs.ID).
			Update("enrolled_students", count).Error; err != nil {
			log.Printf("[STATS-SCHEDULER] Error updating course %d: %v", crs.ID, err)
			continue
		}
		updated++
	}

	log.Printf("[STATS-SCHEDULER] Enrollment counters refreshed, %d courses updated", updated)
}
