package aggregate

import (
	"github.com/athlosfit/athlos/internal/analytics/facts"

	log "github.com/sirupsen/logrus"
)

// SanitizeSets drops performed sets that fail reference integrity:
// sets whose plan does not exist, or whose plan belongs to a different
// student. Such gaps are expected in historical data and must not
// block a whole report, so offending rows are skipped and counted
// instead of failing the request.
func SanitizeSets(sets []facts.PerformedSet, plans []facts.WorkoutPlan) (clean []facts.PerformedSet, skipped int) {
	plansByID := make(map[string]facts.WorkoutPlan, len(plans))
	for _, p := range plans {
		plansByID[p.ID] = p
	}

	clean = make([]facts.PerformedSet, 0, len(sets))
	for _, ps := range sets {
		plan, ok := plansByID[ps.PlanID]
		if !ok {
			log.Warnf("performed set %s references unknown plan %s, skipping", ps.ID, ps.PlanID)
			skipped++
			continue
		}
		if plan.StudentID != ps.StudentID {
			log.Warnf(
				"performed set %s student %s does not match plan %s student %s, skipping",
				ps.ID, ps.StudentID, plan.ID, plan.StudentID,
			)
			skipped++
			continue
		}
		clean = append(clean, ps)
	}

	return clean, skipped
}
