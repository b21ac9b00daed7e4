package models

import "time"

// MaxAnswerLength bounds answer content, counted in characters.
const MaxAnswerLength = 300

// Answer belongs to a question and is never updated after creation.
type Answer struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	QuestionID uint         `gorm:"index;not null" json:"question_id"`
	Content    string       `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time    `json:"created_at"`
	Votes      []AnswerVote `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
