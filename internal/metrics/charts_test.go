package metrics

import (
	"testing"

	"github.com/harborview/marinadesk/internal/models"
	"github.com/stretchr/testify/assert"
)

func feedbackWithRatings(ratings ...int) []models.Feedback {
	out := make([]models.Feedback, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, models.Feedback{Rating: r})
	}
	return out
}

func TestRatingDistribution(t *testing.T) {
	dist := RatingDistribution(feedbackWithRatings(5, 5, 4, 3, 5, 1))
	assert.Equal(t, [5]int{1, 0, 1, 1, 3}, dist)
}

func TestRatingDistribution_IgnoresOutOfRange(t *testing.T) {
	dist := RatingDistribution(feedbackWithRatings(0, 6, -1, 3))
	assert.Equal(t, [5]int{0, 0, 1, 0, 0}, dist)
}

func TestRatingSeries_DropsEmptyBucketsHighToLow(t *testing.T) {
	series := RatingSeries(feedbackWithRatings(5, 5, 4, 3, 5, 1))

	// 2-star bucket is empty and must not appear
	assert.Equal(t, []NameValue{
		{Name: "5 Stars", Value: 3},
		{Name: "4 Stars", Value: 1},
		{Name: "3 Stars", Value: 1},
		{Name: "1 Star", Value: 1},
	}, series)
}

func TestRatingSeries_Empty(t *testing.T) {
	assert.Empty(t, RatingSeries(nil))
}

func TestMembershipSeries(t *testing.T) {
	series := MembershipSeries([]models.TierCount{
		{Tier: models.TierBasic, Count: 12},
		{Tier: models.TierGold, Count: 3},
	})

	assert.Equal(t, []NameValue{
		{Name: "BASIC", Value: 12},
		{Name: "GOLD", Value: 3},
	}, series)
}

func TestMonthlySpendingSeries(t *testing.T) {
	series := MonthlySpendingSeries([]models.MonthlySpend{
		{Month: "2031-05", TotalCost: 1200.5, Count: 4},
		{Month: "2031-06", TotalCost: 0, Count: 0},
	})

	assert.Equal(t, []MonthlyPoint{
		{Month: "2031-05", Cost: 1200.5, Count: 4},
		{Month: "2031-06", Cost: 0, Count: 0},
	}, series)
}

func TestServiceTypeSeries(t *testing.T) {
	series := ServiceTypeSeries([]models.ServiceTypeCount{
		{ServiceType: "Dock Repair", Count: 7, AvgCost: 350.25},
	})

	assert.Equal(t, []TypeCostPoint{
		{Name: "Dock Repair", Count: 7, AvgCost: 350.25},
	}, series)
}

func TestServiceStatusSeries(t *testing.T) {
	series := ServiceStatusSeries([]models.ServiceStatusCount{
		{Status: models.RequestPending, Count: 4},
		{Status: models.RequestCompleted, Count: 9},
	})

	assert.Equal(t, []NameValue{
		{Name: "PENDING", Value: 4},
		{Name: "COMPLETED", Value: 9},
	}, series)
}
