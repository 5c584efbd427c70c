package model

import (
	"github.com/google/uuid"
)

// Query is one user submission. It is built per question and dropped once answered.
type Query struct {
	ID       uuid.UUID
	Question string
	Prompt   string
}

func NewQuery(question, prompt string) Query {
	return Query{
		ID:       uuid.New(),
		Question: question,
		Prompt:   prompt,
	}
}

// Answer is either the provider's text or the error that replaced it, never both.
type Answer struct {
	QueryID uuid.UUID
	Model   string
	Text    string
	Err     error
}

func (a Answer) Failed() bool {
	return a.Err != nil
}
