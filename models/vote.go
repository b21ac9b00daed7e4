package models

import "time"

// Vote values accepted for questions and answers.
const (
	Upvote   = 1
	Downvote = -1
)

// QuestionVote is an append-only vote on a question.
type QuestionVote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"index;not null" json:"question_id"`
	Vote       int       `gorm:"not null;check:chk_question_votes_vote,vote IN (-1, 1)" json:"vote"`
	CreatedAt  time.Time `json:"created_at"`
}

// AnswerVote is an append-only vote on an answer.
type AnswerVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AnswerID  uint      `gorm:"index;not null" json:"answer_id"`
	Vote      int       `gorm:"not null;check:chk_answer_votes_vote,vote IN (-1, 1)" json:"vote"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidVote reports whether v is an upvote or a downvote.
func ValidVote(v int) bool {
	return v == Upvote || v == Downvote
}
