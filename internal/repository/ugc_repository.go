package repository

import (
	"errors"
	"motorkeys_backend/internal/model"
	"motorkeys_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UGCRepository struct {
	DB *gorm.DB
}

func NewUGCRepository(db *gorm.DB) *UGCRepository {
	return &UGCRepository{DB: db}
}

// Upsert 同名单词整条覆盖
func (r *UGCRepository) Upsert(word *model.UGCWord) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "word"}},
		UpdateAll: true,
	}).Create(word).Error
}

func (r *UGCRepository) FindByWord(word string) (*model.UGCWord, error) {
	var w model.UGCWord
	err := r.DB.Where("word = ?", word).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUGCWordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// List activeOnly 为 true 时只返回启用的单词
func (r *UGCRepository) List(activeOnly bool) ([]model.UGCWord, error) {
	var words []model.UGCWord
	query := r.DB.Order("created_at_ms ASC, word ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&words).Error
	return words, err
}

func (r *UGCRepository) SetActive(word string, active bool) error {
	result := r.DB.Model(&model.UGCWord{}).Where("word = ?", word).Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrUGCWordNotFound
	}
	return nil
}

func (r *UGCRepository) Delete(word string) error {
	result := r.DB.Where("word = ?", word).Delete(&model.UGCWord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrUGCWordNotFound
	}
	return nil
}
