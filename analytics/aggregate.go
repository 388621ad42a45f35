package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/refform/refform/model"
	"github.com/refform/refform/referral"
)

const (
	dayFormat       = "2006-01-02"
	dailyWindowDays = 7
	leaderboardSize = 10
)

// Aggregate computes a full metrics snapshot from a raw submission set.
// Pure: same input and reference time always produce the same snapshot.
func Aggregate(submissions []model.Submission, now time.Time) model.Metrics {
	total := len(submissions)

	referrals := 0
	scoreSum := 0
	for _, sub := range submissions {
		if sub.ReferrerCode != "" {
			referrals++
		}
		scoreSum += sub.Score
	}

	m := model.Metrics{
		TotalSubmissions:  total,
		TotalReferrals:    referrals,
		TopReferrers:      topReferrers(submissions),
		DailySubmissions:  dailySubmissions(submissions, now),
		ScoreDistribution: scoreDistribution(submissions),
	}
	if total > 0 {
		// half rounds away from zero
		m.ConversionRate = int(math.Round(float64(referrals) / float64(total) * 100))
		m.AverageScore = math.Round(float64(scoreSum)/float64(total)*10) / 10
	}
	return m
}

// Zero is the snapshot of a campaign with no data. A failed fetch
// degrades to the same value, distinguished only by the log.
func Zero(now time.Time) model.Metrics {
	return Aggregate(nil, now)
}

// topReferrers groups referral submissions by attribution key and ranks
// them by count, descending. Ties keep first-seen order. Capped at 10.
//
// A referrer's conversion rate relates submissions attributed to them to
// submissions mentioning them at all; with no other mentions it is 100%.
func topReferrers(submissions []model.Submission) []model.ReferrerStat {
	keys := []string{}
	counts := map[string]int{}
	for _, sub := range submissions {
		if sub.ReferrerCode == "" {
			continue
		}
		key := referral.Key(sub)
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key]++
	}

	mentions := map[string]int{}
	for _, sub := range submissions {
		key := sub.ReferrerCode
		if key == "" {
			key = sub.ReferrerName
		}
		if key != "" && counts[key] > 0 {
			mentions[key]++
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return counts[keys[i]] > counts[keys[j]]
	})
	if len(keys) > leaderboardSize {
		keys = keys[:leaderboardSize]
	}

	stats := []model.ReferrerStat{}
	for _, key := range keys {
		count := counts[key]
		mentioned := mentions[key]
		if mentioned < count {
			mentioned = count
		}
		stats = append(stats, model.ReferrerStat{
			Name:           key,
			Referrals:      count,
			ConversionRate: int(math.Round(float64(count) / float64(mentioned) * 100)),
		})
	}
	return stats
}

// dailySubmissions builds one bucket per calendar date for today and the
// 6 preceding days, oldest first. A submission lands in the bucket
// matching the UTC date portion of its stored timestamp.
func dailySubmissions(submissions []model.Submission, now time.Time) []model.DailyCount {
	days := make([]model.DailyCount, 0, dailyWindowDays)
	for i := dailyWindowDays - 1; i >= 0; i-- {
		date := now.UTC().AddDate(0, 0, -i).Format(dayFormat)

		count := 0
		for _, sub := range submissions {
			if sub.SubmittedAt.UTC().Format(dayFormat) == date {
				count++
			}
		}
		days = append(days, model.DailyCount{Date: date, Count: count})
	}
	return days
}

func scoreDistribution(submissions []model.Submission) []model.ScoreBucket {
	counts := map[int]int{}
	for _, sub := range submissions {
		counts[sub.Score]++
	}

	scores := make([]int, 0, len(counts))
	for score := range counts {
		scores = append(scores, score)
	}
	sort.Ints(scores)

	buckets := []model.ScoreBucket{}
	for _, score := range scores {
		buckets = append(buckets, model.ScoreBucket{Score: score, Count: counts[score]})
	}
	return buckets
}
