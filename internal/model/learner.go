package model

import (
	"motorkeys_backend/internal/motor"
	"time"
)

// swagger:model
type Learner struct {
	UUIDBase
	Name  string       `gorm:"size:64;not null" json:"name"`
	Motor MotorProfile `gorm:"embedded;embeddedPrefix:motor_" json:"motor"`
}

// MotorProfile 学习者的运动技能指标，与 motor.Profile 一一对应
type MotorProfile struct {
	LeftHandErrors      int            `json:"leftHandErrors"`
	RightHandErrors     int            `json:"rightHandErrors"`
	CommonLetterErrors  map[string]int `gorm:"serializer:json;type:text" json:"commonLetterErrors"`
	RowTransitionSpeed  float64        `json:"rowTransitionSpeed"`
	RowTransitionWords  int            `json:"rowTransitionWords"`
	TypingSpeedBaseline float64        `json:"typingSpeedBaseline"`
	ErrorBaseline       float64        `json:"errorBaseline"`
	WordsCompleted      int            `json:"wordsCompleted"`
}

func (m MotorProfile) ToProfile() motor.Profile {
	return motor.Profile{
		LeftHandErrors:      m.LeftHandErrors,
		RightHandErrors:     m.RightHandErrors,
		CommonLetterErrors:  m.CommonLetterErrors,
		RowTransitionSpeed:  m.RowTransitionSpeed,
		RowTransitionWords:  m.RowTransitionWords,
		TypingSpeedBaseline: m.TypingSpeedBaseline,
		ErrorBaseline:       m.ErrorBaseline,
		WordsCompleted:      m.WordsCompleted,
	}
}

func MotorProfileFrom(p motor.Profile) MotorProfile {
	return MotorProfile{
		LeftHandErrors:      p.LeftHandErrors,
		RightHandErrors:     p.RightHandErrors,
		CommonLetterErrors:  p.CommonLetterErrors,
		RowTransitionSpeed:  p.RowTransitionSpeed,
		RowTransitionWords:  p.RowTransitionWords,
		TypingSpeedBaseline: p.TypingSpeedBaseline,
		ErrorBaseline:       p.ErrorBaseline,
		WordsCompleted:      p.WordsCompleted,
	}
}

// WordAttempt 单词输入历史
// swagger:model
type WordAttempt struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LearnerID       string    `gorm:"type:varchar(36);index;not null" json:"learnerId"`
	WordID          string    `gorm:"size:64;not null" json:"wordId"`
	ElapsedMs       float64   `json:"elapsedMs"`
	LetterCount     int       `json:"letterCount"`
	ErrorCount      int       `json:"errorCount"`
	RowTransitionMs *float64  `json:"rowTransitionMs,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
