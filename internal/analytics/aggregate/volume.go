package aggregate

import (
	"sort"
	"time"

	"github.com/athlosfit/athlos/internal/analytics/facts"
	"github.com/athlosfit/athlos/internal/analytics/period"
)

// Session groups the performed sets sharing the same student, plan and
// UTC calendar day. The calendar-day boundary is a policy choice (the
// raw facts carry no visit delimiter), applied uniformly in UTC so the
// same facts always produce the same sessions.
type Session struct {
	StudentID string               `json:"studentId"`
	PlanID    string               `json:"planId"`
	Day       string               `json:"day"` // "2006-01-02", UTC
	Sets      []facts.PerformedSet `json:"sets"`
}

// Sessions folds performed sets into sessions, ordered by day then
// student then plan for deterministic output.
func Sessions(sets []facts.PerformedSet) []Session {
	type sessionKey struct {
		studentID string
		planID    string
		day       string
	}

	grouped := make(map[sessionKey][]facts.PerformedSet)
	for _, ps := range sets {
		key := sessionKey{
			studentID: ps.StudentID,
			planID:    ps.PlanID,
			day:       ps.PerformedAt.UTC().Format("2006-01-02"),
		}
		grouped[key] = append(grouped[key], ps)
	}

	sessions := make([]Session, 0, len(grouped))
	for key, keySets := range grouped {
		sort.Slice(keySets, func(i, j int) bool {
			return keySets[i].PerformedAt.Before(keySets[j].PerformedAt)
		})
		sessions = append(sessions, Session{
			StudentID: key.studentID,
			PlanID:    key.planID,
			Day:       key.day,
			Sets:      keySets,
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.StudentID != b.StudentID {
			return a.StudentID < b.StudentID
		}
		return a.PlanID < b.PlanID
	})
	return sessions
}

type BucketSessions struct {
	Bucket   string `json:"bucket"`
	Sessions int    `json:"sessions"`
}

type VolumeResult struct {
	TotalSessions     int              `json:"totalSessions"`
	PerBucket         []BucketSessions `json:"perBucket"`
	AvgSessionsPerDay float64          `json:"avgSessionsPerDay"`
}

// Volume counts training sessions per chart bucket and averages them
// over the days of the range.
func Volume(w period.Window, sets []facts.PerformedSet) VolumeResult {
	perBucket := make([]BucketSessions, len(w.Buckets))
	bucketIdx := make(map[string]int, len(w.Buckets))
	for i, b := range w.Buckets {
		perBucket[i] = BucketSessions{Bucket: b.Key}
		bucketIdx[b.Key] = i
	}

	sessions := Sessions(sets)
	for _, s := range sessions {
		day, err := time.Parse("2006-01-02", s.Day)
		if err != nil {
			continue
		}
		if key, ok := w.BucketKeyFor(day); ok {
			perBucket[bucketIdx[key]].Sessions++
		}
	}

	avg := 0.0
	if days := w.Current.Days(); days > 0 {
		avg = Round1(float64(len(sessions)) / float64(days))
	}

	return VolumeResult{
		TotalSessions:     len(sessions),
		PerBucket:         perBucket,
		AvgSessionsPerDay: avg,
	}
}

// WeekdaySessions is the "which days do people train" distribution:
// session counts per ISO weekday, Monday first.
type WeekdaySessions struct {
	Weekday  int `json:"weekday"` // ISO: 1=Monday .. 7=Sunday
	Sessions int `json:"sessions"`
}

func WeekdayDistribution(sets []facts.PerformedSet) []WeekdaySessions {
	distribution := make([]WeekdaySessions, 7)
	for i := range distribution {
		distribution[i].Weekday = i + 1
	}

	for _, s := range Sessions(sets) {
		day, err := time.Parse("2006-01-02", s.Day)
		if err != nil {
			continue
		}
		distribution[isoWeekday(day)-1].Sessions++
	}
	return distribution
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7 // Sunday
	}
	return wd
}

// Streak counts the consecutive UTC calendar days with at least one
// session for the student, scanning backward from today. No session
// today means streak 0; a single gap day ends the streak.
func Streak(sets []facts.PerformedSet, studentID string, today time.Time) int {
	daysWithSession := make(map[string]bool)
	for _, s := range Sessions(sets) {
		if s.StudentID == studentID {
			daysWithSession[s.Day] = true
		}
	}

	streak := 0
	for day := today.UTC(); daysWithSession[day.Format("2006-01-02")]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
