package metrics

import (
	"time"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/models"
)

// progressingWellThreshold is the progress percentage from which a goal
// counts towards the "on track goals" card.
const progressingWellThreshold = 40.0

// GoalProgress is current / target × 100, unbounded above 100.
// ok is false when the target is zero.
func GoalProgress(g models.Goal) (float64, bool) {
	return ratio(g.CurrentAmount, g.TargetAmount)
}

// monthsBetween counts calendar months from now to target, ignoring the day.
func monthsBetween(now, target time.Time) int {
	return (target.Year()-now.Year())*12 + int(target.Month()) - int(now.Month())
}

// MonthsRemaining is the number of calendar months until the target date,
// floored at zero.
func MonthsRemaining(g models.Goal, now time.Time) int {
	return max(0, monthsBetween(now, g.TargetDate))
}

// RequiredMonthly is the contribution needed each remaining month to close
// the shortfall; zero once no months remain.
func RequiredMonthly(g models.Goal, now time.Time) float64 {
	months := MonthsRemaining(g, now)
	if months <= 0 {
		return 0
	}
	return (g.TargetAmount - g.CurrentAmount) / float64(months)
}

// ClassifyGoal applies the goal policy in order: a required contribution above
// the current one needs action; otherwise anything under 100% is on track.
// A zero target counts as achieved.
func ClassifyGoal(g models.Goal, now time.Time) models.GoalStatus {
	if RequiredMonthly(g, now) > g.MonthlyContribution {
		return models.GoalActionRequired
	}
	if progress, ok := GoalProgress(g); ok && progress < 100 {
		return models.GoalOnTrack
	}
	return models.GoalAchieved
}

// GoalMetrics derives the view of a single goal at time now.
// Overdue is set when no months remain and the target has not been reached.
func GoalMetrics(g models.Goal, now time.Time) models.GoalView {
	months := MonthsRemaining(g, now)
	return models.GoalView{
		Goal:            g,
		TargetLabel:     g.TargetDate.Format("Jan 2006"),
		Progress:        optional(GoalProgress(g)),
		MonthsRemaining: months,
		RequiredMonthly: RequiredMonthly(g, now),
		Overdue:         months == 0 && g.CurrentAmount < g.TargetAmount,
		Status:          ClassifyGoal(g, now),
	}
}

// GoalViews applies GoalMetrics to each goal, preserving order.
func GoalViews(goals []models.Goal, now time.Time) []models.GoalView {
	views := make([]models.GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, GoalMetrics(g, now))
	}
	return views
}

// GoalsSummary totals all goals for the summary cards.
func GoalsSummary(goals []models.Goal) models.GoalsSummary {
	var s models.GoalsSummary
	s.GoalCount = len(goals)
	for _, g := range goals {
		s.TotalTarget += g.TargetAmount
		s.TotalCurrent += g.CurrentAmount
		s.TotalMonthly += g.MonthlyContribution
		if p, ok := GoalProgress(g); ok && p >= progressingWellThreshold {
			s.ProgressingWell++
		}
	}
	s.AchievedPercent = optional(ratio(s.TotalCurrent, s.TotalTarget))
	s.TotalTargetDisplay = common.FormatCrore(s.TotalTarget)
	s.TotalCurrentDisplay = common.FormatCrore(s.TotalCurrent)
	return s
}
