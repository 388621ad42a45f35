package store

import (
	"time"

	"github.com/refform/refform/model"
)

// DemoCampaignID is reserved: its campaign is built in and its
// submissions are never persisted.
const (
	DemoCampaignID   = "demo-campaign"
	DemoSubmissionID = "demo-id"
)

// DemoCampaign returns the built-in demo quiz served for the reserved
// campaign id.
func DemoCampaign() model.Campaign {
	return model.Campaign{
		ID:          DemoCampaignID,
		Version:     1,
		Title:       "Gen Z Slang Quiz",
		Description: "How well do you know Gen Z slang? Take the quiz and share it with your friends.",
		Type:        model.CampaignSurvey,
		Active:      true,
		CreatedAt:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Schema: model.FormSchema{
			Questions: []model.Question{
				{
					ID:   "q1",
					Text: "What does 'Cap' mean in Gen Z slang?",
					Type: model.QuestionSingle,
					Options: []model.QuestionOption{
						{Value: "nothing", Label: "Nothing"},
						{Value: "lie", Label: "Lie", Correct: true},
						{Value: "honesty", Label: "Honesty"},
						{Value: "cover", Label: "Cover"},
					},
					Required: true,
					Order:    1,
				},
				{
					ID:   "q2",
					Text: "What does 'Drip' mean in Gen Z slang?",
					Type: model.QuestionSingle,
					Options: []model.QuestionOption{
						{Value: "information", Label: "Information"},
						{Value: "fashion", Label: "Fashionable Clothing", Correct: true},
						{Value: "truthfulness", Label: "Truthfulness"},
						{Value: "nothing", Label: "Nothing"},
					},
					Required: true,
					Order:    2,
				},
				{
					ID:   "q3",
					Text: "What does 'Tea' mean in Gen Z slang?",
					Type: model.QuestionSingle,
					Options: []model.QuestionOption{
						{Value: "gossip", Label: "Gossip", Correct: true},
						{Value: "drink", Label: "Drink"},
						{Value: "nothing", Label: "Nothing"},
						{Value: "skills", Label: "Skills"},
					},
					Required: true,
					Order:    3,
				},
				{
					ID:       "personal_info",
					Text:     "Tell us about yourself",
					Type:     model.QuestionText,
					Required: true,
					Order:    4,
				},
			},
			Settings: &model.SchemaSettings{
				PassingScore: 2,
				ShowResults:  true,
			},
		},
	}
}
