package referral

import (
	"net/url"
	"testing"

	"github.com/refform/refform/model"
)

func TestCode(t *testing.T) {
	query, _ := url.ParseQuery("ref=JaneDoe&other=1")
	if got := Code(query); got != "JaneDoe" {
		t.Fatalf("expected JaneDoe, got %q", got)
	}
	if got := Code(url.Values{}); got != "" {
		t.Fatalf("expected empty code, got %q", got)
	}
}

func TestKeyFallbackChain(t *testing.T) {
	tests := []struct {
		sub  model.Submission
		want string
	}{
		{model.Submission{ReferrerCode: "code", ReferrerName: "name"}, "code"},
		{model.Submission{ReferrerName: "name"}, "name"},
		{model.Submission{}, "Unknown"},
	}
	for _, tt := range tests {
		if got := Key(tt.sub); got != tt.want {
			t.Fatalf("expected key %q, got %q", tt.want, got)
		}
	}
}

func TestLinkDeterministic(t *testing.T) {
	first := Link("https://x.test", "camp1", "Jane Doe")
	for i := 0; i < 3; i++ {
		if got := Link("https://x.test", "camp1", "Jane Doe"); got != first {
			t.Fatalf("expected identical link on repeated calls, got %q then %q", first, got)
		}
	}
	if first != "https://x.test/form/camp1?ref=JaneDoe" {
		t.Fatalf("unexpected link %q", first)
	}
}

func TestLinkStripsAllWhitespace(t *testing.T) {
	got := Link("https://x.test/", "c1", "  Mary\tJane  Watson ")
	if got != "https://x.test/form/c1?ref=MaryJaneWatson" {
		t.Fatalf("unexpected link %q", got)
	}
}

func TestSubmitterName(t *testing.T) {
	answers := model.AnswerSet{
		"personal_info": {Kind: model.AnswerText, Value: "Peter Parker"},
	}
	if got := SubmitterName(answers); got != "Peter Parker" {
		t.Fatalf("expected Peter Parker, got %q", got)
	}

	answers["name"] = model.Answer{Kind: model.AnswerText, Value: "MJ"}
	if got := SubmitterName(answers); got != "MJ" {
		t.Fatalf("expected name to win, got %q", got)
	}

	if got := SubmitterName(nil); got != "Anonymous" {
		t.Fatalf("expected Anonymous, got %q", got)
	}
}
