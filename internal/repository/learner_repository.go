package repository

import (
	"errors"
	"motorkeys_backend/internal/model"
	"motorkeys_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearnerRepository struct {
	DB *gorm.DB
}

func NewLearnerRepository(db *gorm.DB) *LearnerRepository {
	return &LearnerRepository{DB: db}
}

// WithTx 返回绑定到事务的仓库
func (r *LearnerRepository) WithTx(tx *gorm.DB) *LearnerRepository {
	return &LearnerRepository{DB: tx}
}

func (r *LearnerRepository) Create(learner *model.Learner) error {
	return r.DB.Create(learner).Error
}

func (r *LearnerRepository) FindByID(id string) (*model.Learner, error) {
	return r.findByID(r.DB, id)
}

// FindByIDForUpdate 加行锁读取，只在事务内使用，保证同一学习者的画像更新串行执行
func (r *LearnerRepository) FindByIDForUpdate(id string) (*model.Learner, error) {
	return r.findByID(r.DB.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *LearnerRepository) findByID(db *gorm.DB, id string) (*model.Learner, error) {
	var learner model.Learner
	err := db.Where("id = ?", id).First(&learner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLearnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &learner, nil
}

func (r *LearnerRepository) List() ([]model.Learner, error) {
	var learners []model.Learner
	err := r.DB.Order("created_at ASC").Find(&learners).Error
	return learners, err
}

func (r *LearnerRepository) SaveMotor(learner *model.Learner) error {
	return r.DB.Save(learner).Error
}

func (r *LearnerRepository) CreateAttempt(attempt *model.WordAttempt) error {
	return r.DB.Create(attempt).Error
}

// RecentAttempts 最新的在前
func (r *LearnerRepository) RecentAttempts(learnerID string, limit int) ([]model.WordAttempt, error) {
	var attempts []model.WordAttempt
	err := r.DB.Where("learner_id = ?", learnerID).
		Order("id DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}
