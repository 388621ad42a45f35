package model

// Metrics is a fully derived snapshot, recomputed per request and never
// persisted or mutated in place.
type Metrics struct {
	TotalSubmissions  int            `json:"totalSubmissions"`
	TotalReferrals    int            `json:"totalReferrals"`
	ConversionRate    int            `json:"conversionRate"`
	AverageScore      float64        `json:"averageScore"`
	TopReferrers      []ReferrerStat `json:"topReferrers"`
	DailySubmissions  []DailyCount   `json:"dailySubmissions"`
	ScoreDistribution []ScoreBucket  `json:"scoreDistribution"`
}

type ReferrerStat struct {
	Name           string `json:"name"`
	Referrals      int    `json:"referrals"`
	ConversionRate int    `json:"conversionRate"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ScoreBucket struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// OverallMetrics is the cross-campaign snapshot.
type OverallMetrics struct {
	Metrics
	ActiveCampaigns int `json:"activeCampaigns"`
}

const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
)

// Insight is transient narrative output derived from a Metrics snapshot.
type Insight struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}
