package analytics

import (
	"strings"
	"testing"

	"github.com/refform/refform/model"
)

func severities(insights []model.Insight) []string {
	out := make([]string, len(insights))
	for i, insight := range insights {
		out[i] = insight.Severity
	}
	return out
}

func TestInsightsEmptySnapshot(t *testing.T) {
	insights := Insights(model.Metrics{})
	if len(insights) != 1 {
		t.Fatalf("expected a single insight, got %+v", insights)
	}
	if insights[0].Severity != model.SeverityInfo || insights[0].Title != "Get Started" {
		t.Fatalf("unexpected insight %+v", insights[0])
	}
}

func TestInsightsConversionTiers(t *testing.T) {
	tests := []struct {
		rate     int
		severity string
		title    string
	}{
		{50, model.SeveritySuccess, "Excellent Referral Rate!"},
		{41, model.SeveritySuccess, "Excellent Referral Rate!"},
		{40, model.SeverityInfo, "Good Referral Performance"},
		{21, model.SeverityInfo, "Good Referral Performance"},
		{20, model.SeverityWarning, "Referral Opportunity"},
		{5, model.SeverityWarning, "Referral Opportunity"},
	}

	for _, tt := range tests {
		insights := Insights(model.Metrics{TotalSubmissions: 10, ConversionRate: tt.rate})
		if len(insights) != 1 {
			t.Fatalf("rate %d: expected exactly one tier insight, got %+v", tt.rate, insights)
		}
		if insights[0].Severity != tt.severity || insights[0].Title != tt.title {
			t.Fatalf("rate %d: unexpected insight %+v", tt.rate, insights[0])
		}
		if !strings.Contains(insights[0].Message, "%") {
			t.Fatalf("rate %d: message should carry the percentage: %q", tt.rate, insights[0].Message)
		}
	}
}

func TestInsightsTopPerformer(t *testing.T) {
	insights := Insights(model.Metrics{
		TotalSubmissions: 10,
		ConversionRate:   30,
		TopReferrers:     []model.ReferrerStat{{Name: "alice", Referrals: 4, ConversionRate: 100}},
	})
	if len(insights) != 2 {
		t.Fatalf("expected tier + top performer, got %+v", insights)
	}
	top := insights[1]
	if top.Severity != model.SeveritySuccess || top.Title != "Top Performer" {
		t.Fatalf("unexpected insight %+v", top)
	}
	if !strings.Contains(top.Message, "alice") || !strings.Contains(top.Message, "4") {
		t.Fatalf("message should name the top referrer and count: %q", top.Message)
	}
}

func TestInsightsHighEngagementAndVolume(t *testing.T) {
	insights := Insights(model.Metrics{
		TotalSubmissions: 150,
		ConversionRate:   45,
		AverageScore:     8.5,
		TopReferrers:     []model.ReferrerStat{{Name: "alice", Referrals: 60}},
	})

	want := []string{
		model.SeveritySuccess, // excellent referral rate
		model.SeveritySuccess, // top performer
		model.SeveritySuccess, // high engagement
		model.SeveritySuccess, // growing community
	}
	got := severities(insights)
	if len(got) != len(want) {
		t.Fatalf("expected %d insights, got %+v", len(want), insights)
	}
	if insights[2].Title != "High Engagement" || insights[3].Title != "Growing Community" {
		t.Fatalf("unexpected insights %+v", insights)
	}
}

func TestInsightsBoundaries(t *testing.T) {
	// average of exactly 8 and volume of exactly 100 stay quiet
	insights := Insights(model.Metrics{
		TotalSubmissions: 100,
		ConversionRate:   30,
		AverageScore:     8,
	})
	if len(insights) != 1 {
		t.Fatalf("expected only the tier insight, got %+v", insights)
	}
}

func TestInsightsNeverEmpty(t *testing.T) {
	for _, m := range []model.Metrics{{}, {TotalSubmissions: 1}, {TotalSubmissions: 1, ConversionRate: 100}} {
		if len(Insights(m)) == 0 {
			t.Fatalf("expected at least one insight for %+v", m)
		}
	}
}
