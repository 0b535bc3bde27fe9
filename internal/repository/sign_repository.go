package repository

import (
	"errors"
	"motorkeys_backend/internal/model"
	"motorkeys_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SignRepository struct {
	DB *gorm.DB
}

func NewSignRepository(db *gorm.DB) *SignRepository {
	return &SignRepository{DB: db}
}

func (r *SignRepository) Upsert(sign *model.SignRecording) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "word"}},
		UpdateAll: true,
	}).Create(sign).Error
}

func (r *SignRepository) FindByWord(word string) (*model.SignRecording, error) {
	var s model.SignRecording
	err := r.DB.Where("word = ?", word).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SignRepository) List() ([]model.SignRecording, error) {
	var signs []model.SignRecording
	err := r.DB.Order("word ASC").Find(&signs).Error
	return signs, err
}

func (r *SignRepository) UpdateStatus(word, status string) error {
	result := r.DB.Model(&model.SignRecording{}).Where("word = ?", word).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrSignNotFound
	}
	return nil
}
