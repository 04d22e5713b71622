package models

import (
	"fmt"
	"strings"
	"time"
)

// RiskLevel grades how volatile a goal or recommended instrument is.
type RiskLevel string

// Risk levels.
const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ParseRiskLevel validates a risk level, case-insensitively.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	}
	return "", fmt.Errorf("unknown risk level %q", s)
}

// Valid reports whether r is a known risk level.
func (r RiskLevel) Valid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// GoalStatus is the policy classification of a goal.
type GoalStatus string

// Goal statuses. Evaluated in this order: action required, on track, achieved.
const (
	GoalActionRequired GoalStatus = "action_required"
	GoalOnTrack        GoalStatus = "on_track"
	GoalAchieved       GoalStatus = "achieved"
)

// Valid reports whether s is a known goal status.
func (s GoalStatus) Valid() bool {
	return s == GoalActionRequired || s == GoalOnTrack || s == GoalAchieved
}

// Goal is a target amount to be reached by a date through monthly contributions.
type Goal struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	Risk                RiskLevel `json:"risk"`
	TargetAmount        float64   `json:"target_amount"`
	CurrentAmount       float64   `json:"current_amount"`
	TargetDate          time.Time `json:"target_date"`
	MonthlyContribution float64   `json:"monthly_contribution"`
}

// NewGoal builds a goal, validating the risk level and parsing the target date.
func NewGoal(id int, name, category, risk string, target, current float64, targetDate string, monthly float64) (Goal, error) {
	r, err := ParseRiskLevel(risk)
	if err != nil {
		return Goal{}, err
	}
	d, err := ParseTargetDate(targetDate)
	if err != nil {
		return Goal{}, err
	}
	if target < 0 || current < 0 || monthly < 0 {
		return Goal{}, fmt.Errorf("goal %q: amounts must not be negative", name)
	}
	return Goal{
		ID:                  id,
		Name:                name,
		Category:            category,
		Risk:                r,
		TargetAmount:        target,
		CurrentAmount:       current,
		TargetDate:          d,
		MonthlyContribution: monthly,
	}, nil
}

// ParseTargetDate accepts "Dec 2028" or "2028-12-31" style dates.
func ParseTargetDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"Jan 2006", "January 2006", "2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid target date %q", s)
}

// GoalView pairs a goal with its derived values.
// Progress is nil when the target amount is zero.
type GoalView struct {
	Goal
	TargetLabel     string     `json:"target_label"`
	Progress        *float64   `json:"progress"`
	MonthsRemaining int        `json:"months_remaining"`
	RequiredMonthly float64    `json:"required_monthly"`
	Overdue         bool       `json:"overdue"`
	Status          GoalStatus `json:"status"`
}

// GoalsSummary aggregates all goals for the summary cards.
type GoalsSummary struct {
	GoalCount           int      `json:"goal_count"`
	TotalTarget         float64  `json:"total_target"`
	TotalCurrent        float64  `json:"total_current"`
	TotalMonthly        float64  `json:"total_monthly"`
	AchievedPercent     *float64 `json:"achieved_percent"`
	ProgressingWell     int      `json:"progressing_well"`
	TotalTargetDisplay  string   `json:"total_target_display"`
	TotalCurrentDisplay string   `json:"total_current_display"`
}
