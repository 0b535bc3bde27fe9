package service

import (
	"context"
	"errors"
	"fmt"
	"motorkeys_backend/internal/model"
	"motorkeys_backend/internal/motor"
	"motorkeys_backend/internal/repository"
	"motorkeys_backend/internal/util"
	"motorkeys_backend/pkg/logger"
	"motorkeys_backend/pkg/monitoring"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	maxLearnerName  = 64
	topLetterErrors = 5
)

// AttemptInput 一次单词输入
type AttemptInput struct {
	WordID      string            `json:"wordId" binding:"required"`
	Keystrokes  []motor.Keystroke `json:"keystrokes"`
	ElapsedMs   float64           `json:"elapsedMs"`
	LetterCount int               `json:"letterCount"`
}

type AttemptResult struct {
	Summary motor.WordSummary `json:"summary"`
	Profile motor.Profile     `json:"profile"`
	Attempt model.WordAttempt `json:"attempt"`
}

// MotorStats 学习者运动技能概览
type MotorStats struct {
	LearnerID       string              `json:"learnerId"`
	Profile         motor.Profile       `json:"profile"`
	TopLetterErrors []motor.LetterError `json:"topLetterErrors"`
	WeakerHand      string              `json:"weakerHand"`
	RecentWords     []string            `json:"recentWords"`
}

type LearnerService struct {
	Repo    *repository.LearnerRepository
	Recent  repository.RecentItemsStore
	Catalog *CatalogService
}

func NewLearnerService(repo *repository.LearnerRepository, recent repository.RecentItemsStore, catalog *CatalogService) *LearnerService {
	return &LearnerService{Repo: repo, Recent: recent, Catalog: catalog}
}

func (s *LearnerService) Create(name string) (*model.Learner, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxLearnerName {
		return nil, fmt.Errorf("%w: name must be 1-%d characters", util.ErrInvalidInput, maxLearnerName)
	}

	learner := &model.Learner{
		Name:  name,
		Motor: model.MotorProfile{CommonLetterErrors: map[string]int{}},
	}
	if err := s.Repo.Create(learner); err != nil {
		return nil, err
	}
	logger.Log.Info("Learner created", zap.String("learner_id", learner.ID))
	return learner, nil
}

func (s *LearnerService) Get(id string) (*model.Learner, error) {
	return s.Repo.FindByID(id)
}

func (s *LearnerService) List() ([]model.Learner, error) {
	return s.Repo.List()
}

// RecordAttempt 统计按键并合并进画像，画像与历史在同一事务中写入，读取画像时加行锁
func (s *LearnerService) RecordAttempt(ctx context.Context, learnerID string, in AttemptInput) (*AttemptResult, error) {
	word, err := s.Catalog.Word(in.WordID)
	if err != nil {
		return nil, err
	}

	summary, err := motor.Summarize(in.Keystrokes)
	if err != nil {
		return nil, err
	}

	var result AttemptResult
	err = s.Repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		learner, err := repo.FindByIDForUpdate(learnerID)
		if err != nil {
			return err
		}

		profile, err := motor.Fold(learner.Motor.ToProfile(), summary, in.ElapsedMs, in.LetterCount)
		if err != nil {
			return err
		}

		learner.Motor = model.MotorProfileFrom(profile)
		if err := repo.SaveMotor(learner); err != nil {
			return err
		}

		attempt := model.WordAttempt{
			LearnerID:       learner.ID,
			WordID:          word.ID,
			ElapsedMs:       in.ElapsedMs,
			LetterCount:     in.LetterCount,
			ErrorCount:      summary.ErrorCount,
			RowTransitionMs: summary.RowTransitionMs,
		}
		if err := repo.CreateAttempt(&attempt); err != nil {
			return err
		}

		result = AttemptResult{Summary: summary, Profile: profile, Attempt: attempt}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.WordAttempts.Inc()

	// 最近单词只影响推荐，写入失败不回滚
	if err := s.Recent.Push(ctx, learnerID, word.ID); err != nil {
		logger.Log.Warn("Failed to record recent word",
			zap.String("learner_id", learnerID),
			zap.String("word_id", word.ID),
			zap.Error(err))
	}
	return &result, nil
}

func (s *LearnerService) MotorStats(ctx context.Context, learnerID string) (*MotorStats, error) {
	learner, err := s.Repo.FindByID(learnerID)
	if err != nil {
		return nil, err
	}

	recent, err := s.Recent.List(ctx, learnerID)
	if err != nil {
		logger.Log.Warn("Failed to load recent words", zap.String("learner_id", learnerID), zap.Error(err))
		recent = []string{}
	}

	profile := learner.Motor.ToProfile()
	return &MotorStats{
		LearnerID:       learner.ID,
		Profile:         profile,
		TopLetterErrors: motor.TopLetterErrors(profile, topLetterErrors),
		WeakerHand:      weakerHand(profile),
		RecentWords:     recent,
	}, nil
}

func weakerHand(p motor.Profile) string {
	switch {
	case p.LeftHandErrors > p.RightHandErrors:
		return motor.HandLeft.String()
	case p.RightHandErrors > p.LeftHandErrors:
		return motor.HandRight.String()
	default:
		return "balanced"
	}
}

// IsInvalidAttempt 按键或长度参数不合法
func IsInvalidAttempt(err error) bool {
	return errors.Is(err, motor.ErrInvalidKeystroke) ||
		errors.Is(err, motor.ErrInvalidInput) ||
		errors.Is(err, util.ErrInvalidInput)
}
