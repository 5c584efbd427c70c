package dto

import "github.com/google/uuid"

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponseDTO struct {
	QueryID uuid.UUID `json:"query_id"`
	Model   string    `json:"model"`
	Answer  string    `json:"answer"`
}

type ModelDTO struct {
	Model   string `json:"model"`
	Subject string `json:"subject"`
}
