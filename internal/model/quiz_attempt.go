package model

import "gorm.io/datatypes"

// QuizAttempt 每次进入评分状态时记录一次
type QuizAttempt struct {
	BaseModel
	SessionID  string                          `gorm:"size:64;not null;index:idx_attempt_session_tutorial" json:"-"`
	TutorialID string                          `gorm:"size:128;not null;index:idx_attempt_session_tutorial" json:"tutorialId"`
	Correct    int                             `gorm:"not null" json:"correct"`
	Total      int                             `gorm:"not null" json:"total"`
	Selections datatypes.JSONType[map[int]int] `json:"selections"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
