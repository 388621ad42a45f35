package scoring

import (
	"fmt"

	"github.com/refform/refform/model"
)

// Score counts correctly answered single-choice questions. Only
// single-choice questions with at least one option marked correct
// participate; a missing or non-matching answer scores zero for its
// question, never an error.
func Score(schema model.FormSchema, answers model.AnswerSet) int {
	score := 0
	for _, q := range schema.Questions {
		if q.Type != model.QuestionSingle {
			continue
		}

		answer, ok := answers[q.ID]
		if !ok || answer.Kind != model.AnswerSingleChoice {
			continue
		}
		for _, opt := range q.Options {
			if opt.Correct && answer.Value == opt.Value {
				score++
				break
			}
		}
	}
	return score
}

// MaxScore is the number of single-choice questions that have a correct
// option, i.e. the best possible Score for the schema. It is derived on
// demand and never stored.
func MaxScore(schema model.FormSchema) int {
	max := 0
	for _, q := range schema.Questions {
		if q.Type != model.QuestionSingle {
			continue
		}
		for _, opt := range q.Options {
			if opt.Correct {
				max++
				break
			}
		}
	}
	return max
}

var kindForType = map[string]string{
	model.QuestionSingle:   model.AnswerSingleChoice,
	model.QuestionImage:    model.AnswerSingleChoice,
	model.QuestionMultiple: model.AnswerMultiChoice,
	model.QuestionText:     model.AnswerText,
}

// ValidateAnswers checks an answer set against the schema: every answer
// must address a known question and carry the kind its question type
// expects. Missing answers are fine, they just score nothing.
func ValidateAnswers(schema model.FormSchema, answers model.AnswerSet) error {
	byID := make(map[string]model.Question, len(schema.Questions))
	for _, q := range schema.Questions {
		byID[q.ID] = q
	}

	for id, answer := range answers {
		q, ok := byID[id]
		if !ok {
			return fmt.Errorf("unknown question %q", id)
		}
		if kindForType[q.Type] != answer.Kind {
			return fmt.Errorf("question %q: kind %q does not answer a %q question", id, answer.Kind, q.Type)
		}
	}
	return nil
}
