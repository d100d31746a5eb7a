package models

import "time"

type QuestionRecord struct {
	ID         string
	Question   string
	Answer     string
	InDomain   bool
	Confidence float64
	Status     string
	LatencyMS  int
	CreatedAt  time.Time
}

type FeedbackRecord struct {
	ID        int
	RequestID string
	Question  string
	Answer    string
	Vote      string
	CreatedAt time.Time
}
