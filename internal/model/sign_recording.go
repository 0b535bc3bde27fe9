package model

import "time"

// SignRecording 手语视频录制记录，status 为 approved / pending / deleted
// swagger:model
type SignRecording struct {
	Word       string    `gorm:"primaryKey;size:64" json:"word"`
	RecordedAt string    `gorm:"size:40" json:"recordedAt"`
	DurationMs int64     `json:"durationMs"`
	LoopPath   string    `gorm:"size:255" json:"loopPath"`
	RawPath    string    `gorm:"size:255" json:"rawPath"`
	PosterPath string    `gorm:"size:255" json:"posterPath,omitempty"`
	Status     string    `gorm:"size:16;index" json:"status"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
