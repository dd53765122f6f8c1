package scheduling

import (
	"time"

	"backend/internal/models"
)

// HourlySlots splits [dayStart, dayEnd) into one-hour windows. A trailing
// span shorter than an hour is dropped rather than offered as a short slot.
func HourlySlots(dayStart, dayEnd time.Time) []Window {
	slots := make([]Window, 0)

	for cursor := dayStart; cursor.Before(dayEnd); cursor = cursor.Add(time.Hour) {
		end := cursor.Add(time.Hour)
		if end.After(dayEnd) {
			break
		}
		slots = append(slots, Window{Start: cursor, End: end})
	}

	return slots
}

// FreeSlots removes every slot that overlaps a booked job.
func FreeSlots(slots []Window, booked []models.Job) []Window {
	free := make([]Window, 0, len(slots))

	for _, slot := range slots {
		taken := false
		for _, job := range booked {
			window := Window{
				Start: job.Schedule.ScheduledStart,
				End:   job.Schedule.ScheduledEnd,
			}
			if Overlaps(slot, window) {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, slot)
		}
	}

	return free
}
