package analytics

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/refform/refform/model"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func submittedAt(daysAgo int) time.Time {
	return testNow.AddDate(0, 0, -daysAgo)
}

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(nil, testNow)

	if m.TotalSubmissions != 0 || m.TotalReferrals != 0 {
		t.Fatalf("expected zero counts, got %+v", m)
	}
	if m.ConversionRate != 0 || m.AverageScore != 0 {
		t.Fatalf("expected zero rates, got %+v", m)
	}
	if len(m.TopReferrers) != 0 {
		t.Fatalf("expected empty leaderboard, got %+v", m.TopReferrers)
	}
	if len(m.ScoreDistribution) != 0 {
		t.Fatalf("expected empty distribution, got %+v", m.ScoreDistribution)
	}
	if len(m.DailySubmissions) != 7 {
		t.Fatalf("expected 7 daily buckets, got %d", len(m.DailySubmissions))
	}
	for _, day := range m.DailySubmissions {
		if day.Count != 0 {
			t.Fatalf("expected zero daily counts, got %+v", m.DailySubmissions)
		}
	}
}

func TestZeroMatchesEmptyAggregate(t *testing.T) {
	// a failed fetch and a genuinely empty campaign produce identical
	// snapshots; only the log tells them apart
	if !reflect.DeepEqual(Zero(testNow), Aggregate(nil, testNow)) {
		t.Fatal("zero snapshot differs from empty aggregation")
	}
}

func TestAggregateReferralCounts(t *testing.T) {
	submissions := make([]model.Submission, 0, 10)
	for i := 0; i < 10; i++ {
		sub := model.Submission{ID: fmt.Sprint(i), SubmittedAt: testNow}
		if i < 3 {
			sub.ReferrerCode = "alice"
		}
		submissions = append(submissions, sub)
	}

	m := Aggregate(submissions, testNow)
	if m.TotalSubmissions != 10 {
		t.Fatalf("expected 10 submissions, got %d", m.TotalSubmissions)
	}
	if m.TotalReferrals != 3 {
		t.Fatalf("expected 3 referrals, got %d", m.TotalReferrals)
	}
	if m.ConversionRate != 30 {
		t.Fatalf("expected conversion rate 30, got %d", m.ConversionRate)
	}
}

func TestAggregateConversionRateRounding(t *testing.T) {
	// 1/8 = 12.5% rounds half away from zero to 13
	submissions := make([]model.Submission, 8)
	for i := range submissions {
		submissions[i] = model.Submission{SubmittedAt: testNow}
	}
	submissions[0].ReferrerCode = "r"

	if m := Aggregate(submissions, testNow); m.ConversionRate != 13 {
		t.Fatalf("expected conversion rate 13, got %d", m.ConversionRate)
	}
}

func TestAggregateAverageScore(t *testing.T) {
	submissions := []model.Submission{
		{Score: 1, SubmittedAt: testNow},
		{Score: 2, SubmittedAt: testNow},
		{Score: 2, SubmittedAt: testNow},
	}

	m := Aggregate(submissions, testNow)
	if m.AverageScore != 1.7 {
		t.Fatalf("expected average score 1.7, got %v", m.AverageScore)
	}
}

func TestAggregateLeaderboard(t *testing.T) {
	submissions := []model.Submission{
		{ReferrerCode: "bob", SubmittedAt: testNow},
		{ReferrerCode: "alice", SubmittedAt: testNow},
		{ReferrerCode: "alice", SubmittedAt: testNow},
		{ReferrerCode: "carol", SubmittedAt: testNow},
		{SubmittedAt: testNow},
	}

	m := Aggregate(submissions, testNow)
	if len(m.TopReferrers) != 3 {
		t.Fatalf("expected 3 referrers, got %+v", m.TopReferrers)
	}
	if m.TopReferrers[0].Name != "alice" || m.TopReferrers[0].Referrals != 2 {
		t.Fatalf("expected alice on top, got %+v", m.TopReferrers)
	}
	// ties keep first-seen order
	if m.TopReferrers[1].Name != "bob" || m.TopReferrers[2].Name != "carol" {
		t.Fatalf("expected tie order bob, carol, got %+v", m.TopReferrers)
	}
	for i := 1; i < len(m.TopReferrers); i++ {
		if m.TopReferrers[i-1].Referrals < m.TopReferrers[i].Referrals {
			t.Fatalf("leaderboard not sorted: %+v", m.TopReferrers)
		}
	}
	// nothing else mentions them: rate defaults to 100%
	for _, stat := range m.TopReferrers {
		if stat.ConversionRate != 100 {
			t.Fatalf("expected 100%% conversion, got %+v", stat)
		}
	}
}

func TestAggregateLeaderboardMentions(t *testing.T) {
	submissions := []model.Submission{
		{ReferrerCode: "alice", SubmittedAt: testNow},
		// mentions alice by name without being attributed to her code
		{ReferrerName: "alice", SubmittedAt: testNow},
	}

	m := Aggregate(submissions, testNow)
	if len(m.TopReferrers) != 1 {
		t.Fatalf("expected 1 referrer, got %+v", m.TopReferrers)
	}
	if m.TopReferrers[0].ConversionRate != 50 {
		t.Fatalf("expected 50%% conversion, got %+v", m.TopReferrers[0])
	}
}

func TestAggregateLeaderboardCap(t *testing.T) {
	submissions := []model.Submission{}
	for i := 0; i < 12; i++ {
		submissions = append(submissions, model.Submission{
			ReferrerCode: fmt.Sprintf("ref%02d", i),
			SubmittedAt:  testNow,
		})
	}

	m := Aggregate(submissions, testNow)
	if len(m.TopReferrers) != 10 {
		t.Fatalf("expected leaderboard capped at 10, got %d", len(m.TopReferrers))
	}
}

func TestAggregateDailySubmissions(t *testing.T) {
	submissions := []model.Submission{
		{SubmittedAt: submittedAt(0)},
		{SubmittedAt: submittedAt(0)},
		{SubmittedAt: submittedAt(3)},
		{SubmittedAt: submittedAt(6)},
		{SubmittedAt: submittedAt(8)}, // outside the window
	}

	m := Aggregate(submissions, testNow)
	if len(m.DailySubmissions) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(m.DailySubmissions))
	}

	for i, day := range m.DailySubmissions {
		want := testNow.AddDate(0, 0, i-6).Format("2006-01-02")
		if day.Date != want {
			t.Fatalf("bucket %d: expected date %s, got %s", i, want, day.Date)
		}
	}

	counts := []int{1, 0, 0, 1, 0, 0, 2}
	for i, want := range counts {
		if m.DailySubmissions[i].Count != want {
			t.Fatalf("bucket %d: expected count %d, got %+v", i, want, m.DailySubmissions)
		}
	}
}

func TestAggregateScoreDistribution(t *testing.T) {
	submissions := []model.Submission{
		{Score: 3, SubmittedAt: testNow},
		{Score: 0, SubmittedAt: testNow},
		{Score: 3, SubmittedAt: testNow},
		{Score: 1, SubmittedAt: testNow},
	}

	m := Aggregate(submissions, testNow)
	want := []model.ScoreBucket{{Score: 0, Count: 1}, {Score: 1, Count: 1}, {Score: 3, Count: 2}}
	if !reflect.DeepEqual(m.ScoreDistribution, want) {
		t.Fatalf("expected %+v, got %+v", want, m.ScoreDistribution)
	}
}
