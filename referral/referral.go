package referral

import (
	"net/url"
	"strings"

	"github.com/refform/refform/model"
)

// CodeParam is the well-known query parameter carrying a referral code.
const CodeParam = "ref"

// UnknownKey is the bucket for referral submissions whose referrer cannot
// be named.
const UnknownKey = "Unknown"

// Code pulls the referral code from a request query. Any non-empty string
// is accepted verbatim; no format validation is performed.
func Code(query url.Values) string {
	return query.Get(CodeParam)
}

// Key resolves the attribution key of a submission for leaderboard
// grouping: referrer code, else referrer name, else UnknownKey. Distinct
// people sharing a resolved key are indistinguishable.
func Key(sub model.Submission) string {
	switch {
	case sub.ReferrerCode != "":
		return sub.ReferrerCode
	case sub.ReferrerName != "":
		return sub.ReferrerName
	default:
		return UnknownKey
	}
}

// Link builds the canonical outbound referral link for a submitter.
// Deterministic: all whitespace is stripped from the display name and the
// result is embedded verbatim as the referral code. No uniqueness check
// is performed, so differently punctuated names may collide.
func Link(baseUrl, campaignID, displayName string) string {
	code := strings.Join(strings.Fields(displayName), "")
	return strings.TrimSuffix(baseUrl, "/") + "/form/" + campaignID + "?" + CodeParam + "=" + code
}

// SubmitterName extracts a display name for the referral link from the
// submitted answers, falling back to "Anonymous".
func SubmitterName(answers model.AnswerSet) string {
	for _, id := range []string{"name", "personal_info"} {
		if answer, ok := answers[id]; ok && answer.Value != "" {
			return answer.Value
		}
	}
	return "Anonymous"
}
