package model

import "time"

// UGCWord 用户自建词汇（孩子画图或拍照后自己录入的单词）
// swagger:model
type UGCWord struct {
	Word      string   `gorm:"primaryKey;size:64" json:"word"`
	Syllables []string `gorm:"serializer:json;type:text" json:"syllables"`
	Segments  []string `gorm:"serializer:json;type:text" json:"segments"`
	ImagePath string   `gorm:"size:255" json:"imagePath"`
	ImageType string   `gorm:"size:32" json:"imageType"`
	Source    string   `gorm:"size:16" json:"source"`
	// CreatedAtMs 客户端提供的创建时间（毫秒时间戳）
	CreatedAtMs int64     `json:"createdAt"`
	Active      bool      `gorm:"index" json:"active"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
