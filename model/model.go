package model

import "time"

const (
	CampaignSurvey    = "SURVEY"
	CampaignAffiliate = "AFFILIATE"
)

type Campaign struct {
	ID          string     `json:"id,omitempty"`
	Version     int        `json:"version,omitempty"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Type        string     `json:"type" validate:"required,oneof=SURVEY AFFILIATE"`
	Schema      FormSchema `json:"formSchema"`
	TargetURL   string     `json:"targetUrl,omitempty"`
	Active      bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
}

type FormSchema struct {
	Questions []Question      `json:"questions" validate:"dive"`
	Settings  *SchemaSettings `json:"settings,omitempty"`
}

type SchemaSettings struct {
	RequireReferral bool `json:"requireReferral,omitempty"`
	PassingScore    int  `json:"passingScore,omitempty"`
	ShowResults     bool `json:"showResults,omitempty"`
}

const (
	QuestionSingle   = "single"
	QuestionMultiple = "multiple"
	QuestionText     = "text"
	QuestionImage    = "image"
)

type Question struct {
	ID       string           `json:"id" validate:"required"`
	Text     string           `json:"text" validate:"required"`
	Type     string           `json:"type" validate:"required,oneof=single multiple text image"`
	Options  []QuestionOption `json:"options,omitempty"`
	Required bool             `json:"required,omitempty"`
	Order    int              `json:"order,omitempty"`
}

type QuestionOption struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Correct bool   `json:"isCorrect,omitempty"`
	Image   string `json:"image,omitempty"`
}

const (
	AnswerText         = "text"
	AnswerSingleChoice = "single_choice"
	AnswerMultiChoice  = "multi_choice"
)

// Answer is a tagged value: Value carries text and single_choice answers,
// Values carries multi_choice selections.
type Answer struct {
	Kind   string   `json:"kind" validate:"required,oneof=text single_choice multi_choice"`
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// AnswerSet maps question ids to submitted answers.
type AnswerSet map[string]Answer

// Submission is immutable once created.
type Submission struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaignId"`
	Answers      AnswerSet `json:"answers"`
	ReferrerCode string    `json:"referrerCode,omitempty"`
	ReferrerName string    `json:"referrerName,omitempty"`
	Score        int       `json:"score"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
