package metrics

import (
	"fmt"

	"github.com/harborview/marinadesk/internal/models"
)

// NameValue is the generic chart point for pie/bar style breakdowns
type NameValue struct {
	Name  string
	Value float64
}

// TypeCostPoint is a service-type bucket with request count and average
// cost
type TypeCostPoint struct {
	Name    string
	Count   int
	AvgCost float64
}

// MonthlyPoint is one month in the maintenance spending series
type MonthlyPoint struct {
	Month string
	Cost  float64
	Count int
}

// MembershipSeries reshapes the tier distribution into chart points
func MembershipSeries(dist []models.TierCount) []NameValue {
	out := make([]NameValue, 0, len(dist))
	for _, d := range dist {
		out = append(out, NameValue{Name: string(d.Tier), Value: float64(d.Count.Int())})
	}
	return out
}

// MonthlySpendingSeries reshapes the monthly maintenance spend
func MonthlySpendingSeries(spending []models.MonthlySpend) []MonthlyPoint {
	out := make([]MonthlyPoint, 0, len(spending))
	for _, m := range spending {
		out = append(out, MonthlyPoint{Month: m.Month, Cost: m.TotalCost.Float(), Count: m.Count.Int()})
	}
	return out
}

// ServiceTypeSeries reshapes the per-type request breakdown
func ServiceTypeSeries(byType []models.ServiceTypeCount) []TypeCostPoint {
	out := make([]TypeCostPoint, 0, len(byType))
	for _, t := range byType {
		out = append(out, TypeCostPoint{Name: t.ServiceType, Count: t.Count.Int(), AvgCost: t.AvgCost.Float()})
	}
	return out
}

// ServiceStatusSeries reshapes the per-status request breakdown
func ServiceStatusSeries(byStatus []models.ServiceStatusCount) []NameValue {
	out := make([]NameValue, 0, len(byStatus))
	for _, s := range byStatus {
		out = append(out, NameValue{Name: string(s.Status), Value: float64(s.Count.Int())})
	}
	return out
}

// RatingDistribution counts feedback into the five star buckets.
// Index 0 is 1 star, index 4 is 5 stars; out-of-range ratings are
// ignored.
func RatingDistribution(feedback []models.Feedback) [5]int {
	var dist [5]int
	for _, f := range feedback {
		if f.Rating >= 1 && f.Rating <= 5 {
			dist[f.Rating-1]++
		}
	}
	return dist
}

// RatingSeries maps the distribution into chart points from 5 stars down
// to 1, dropping empty buckets
func RatingSeries(feedback []models.Feedback) []NameValue {
	dist := RatingDistribution(feedback)
	out := make([]NameValue, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		count := dist[stars-1]
		if count == 0 {
			continue
		}
		label := fmt.Sprintf("%d Stars", stars)
		if stars == 1 {
			label = "1 Star"
		}
		out = append(out, NameValue{Name: label, Value: float64(count)})
	}
	return out
}
