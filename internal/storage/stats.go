// ABOUTME: Derives app stats from the full document.
// ABOUTME: Recomputed by a full scan after every mutation.
package storage

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// weeklyWindowDays is the number of calendar days, ending today, that count
// toward weekly_workouts.
const weeklyWindowDays = 7

func recomputeStats(doc *models.Document, now time.Time) *models.AppStats {
	stats := &models.AppStats{}
	var volume float64

	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	windowStart := today.AddDate(0, 0, -(weeklyWindowDays - 1))

	for _, session := range doc.SessionList() {
		stats.TotalSessions++
		for _, exercise := range session.ExerciseList() {
			stats.TotalExercises++
			volume += exercise.TotalVolume()
		}

		day, err := session.Day(loc)
		if err != nil {
			continue
		}
		if !day.Before(windowStart) && !day.After(today) {
			stats.WeeklyWorkouts++
		}
	}

	stats.TotalVolume = int(volume)
	return stats
}
