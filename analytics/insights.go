package analytics

import (
	"fmt"

	"github.com/refform/refform/model"
)

// Insights derives narrative insights from a snapshot by running its
// threshold rules in priority order. Pure and total: at least one insight
// always comes back.
func Insights(m model.Metrics) []model.Insight {
	if m.TotalSubmissions == 0 {
		return []model.Insight{{
			Severity: model.SeverityInfo,
			Title:    "Get Started",
			Message:  "Share your campaign link to start collecting submissions and referrals!",
		}}
	}

	insights := []model.Insight{}

	switch {
	case m.ConversionRate > 40:
		insights = append(insights, model.Insight{
			Severity: model.SeveritySuccess,
			Title:    "Excellent Referral Rate!",
			Message:  fmt.Sprintf("%d%% of your submissions came from referrals. Your content is highly shareable!", m.ConversionRate),
		})
	case m.ConversionRate > 20:
		insights = append(insights, model.Insight{
			Severity: model.SeverityInfo,
			Title:    "Good Referral Performance",
			Message:  fmt.Sprintf("%d%% referral rate is solid. Consider incentives to boost sharing.", m.ConversionRate),
		})
	default:
		insights = append(insights, model.Insight{
			Severity: model.SeverityWarning,
			Title:    "Referral Opportunity",
			Message:  fmt.Sprintf("Only %d%% of submissions are referrals. Add sharing incentives or make your content more engaging.", m.ConversionRate),
		})
	}

	if len(m.TopReferrers) > 0 {
		top := m.TopReferrers[0]
		insights = append(insights, model.Insight{
			Severity: model.SeveritySuccess,
			Title:    "Top Performer",
			Message:  fmt.Sprintf("%s is crushing it with %d referrals! Consider featuring them as a success story.", top.Name, top.Referrals),
		})
	}

	if m.AverageScore > 8 {
		insights = append(insights, model.Insight{
			Severity: model.SeveritySuccess,
			Title:    "High Engagement",
			Message:  fmt.Sprintf("Average score of %v shows your audience is highly engaged!", m.AverageScore),
		})
	}

	if m.TotalSubmissions > 100 {
		insights = append(insights, model.Insight{
			Severity: model.SeveritySuccess,
			Title:    "Growing Community",
			Message:  fmt.Sprintf("%d submissions! You're building a strong community.", m.TotalSubmissions),
		})
	}

	return insights
}
