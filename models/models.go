// Package models holds the gorm models of the Q&A schema.
package models

// All lists every model for schema bootstrap, parents first.
func All() []interface{} {
	return []interface{}{&Question{}, &Answer{}, &QuestionVote{}, &AnswerVote{}}
}
