package service

import (
	"bytes"
	"context"
	"fmt"
	"motorkeys_backend/internal/model"
	"motorkeys_backend/internal/repository"
	"motorkeys_backend/internal/util"
	"motorkeys_backend/pkg/logger"
	"motorkeys_backend/pkg/monitoring"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// SaveUGCWordRequest 前端提交的自建单词
type SaveUGCWordRequest struct {
	Word      string   `json:"word"`
	Syllables []string `json:"syllables"`
	Segments  []string `json:"segments"`
	ImageType string   `json:"imageType"`
	ImageData string   `json:"imageData"`
	CreatedAt int64    `json:"createdAt"`
}

type UGCService struct {
	Repo          *repository.UGCRepository
	Storage       *StorageService
	maxImageBytes atomic.Int64
}

func NewUGCService(repo *repository.UGCRepository, storage *StorageService, maxImageBytes int64) *UGCService {
	s := &UGCService{Repo: repo, Storage: storage}
	s.maxImageBytes.Store(maxImageBytes)
	return s
}

// SetLimits 配置热更新时调用
func (s *UGCService) SetLimits(maxImageBytes int64) {
	if maxImageBytes > 0 {
		s.maxImageBytes.Store(maxImageBytes)
	}
}

func (s *UGCService) MaxImageBytes() int64 {
	return s.maxImageBytes.Load()
}

func ugcImageKey(word string) string {
	return path.Join(util.UGCWordDir, word, util.UGCImageName)
}

func cleanParts(parts []string) []string {
	return lo.Filter(lo.Map(parts, func(p string, _ int) string {
		return strings.TrimSpace(p)
	}), func(p string, _ int) bool { return p != "" })
}

// SaveWord 保存图片并写入单词，同名单词整条覆盖
func (s *UGCService) SaveWord(ctx context.Context, req SaveUGCWordRequest) (*model.UGCWord, error) {
	if req.Word == "" || req.ImageData == "" {
		return nil, fmt.Errorf("%w: missing required fields: word, syllables, segments, imageData", util.ErrInvalidInput)
	}
	word := util.SanitizeWord(req.Word)
	if word == "" {
		return nil, fmt.Errorf("%w: word must contain letters or digits", util.ErrInvalidInput)
	}
	syllables := cleanParts(req.Syllables)
	segments := cleanParts(req.Segments)
	if len(syllables) == 0 || len(segments) == 0 {
		return nil, fmt.Errorf("%w: syllables and segments must not be empty", util.ErrInvalidInput)
	}

	data, mimeType, err := util.DecodeAndValidate(req.ImageData, s.MaxImageBytes(), util.AllowedImageTypes)
	if err != nil {
		return nil, err
	}

	url, err := s.Storage.Upload(ctx, ugcImageKey(word), bytes.NewReader(data), int64(len(data)), mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}

	imageType := req.ImageType
	if imageType == "" {
		imageType = "upload"
	}
	createdAt := req.CreatedAt
	if createdAt <= 0 {
		createdAt = time.Now().UnixMilli()
	}

	ugc := &model.UGCWord{
		Word:        word,
		Syllables:   syllables,
		Segments:    segments,
		ImagePath:   url,
		ImageType:   imageType,
		Source:      "user",
		CreatedAtMs: createdAt,
		Active:      true,
	}
	if err := s.Repo.Upsert(ugc); err != nil {
		return nil, err
	}

	monitoring.UGCWordsSaved.Inc()
	logger.Log.Info("UGC word saved",
		zap.String("word", word),
		zap.String("mime", mimeType),
		zap.Int("bytes", len(data)))
	return ugc, nil
}

func (s *UGCService) List() ([]model.UGCWord, error) {
	return s.Repo.List(false)
}

func (s *UGCService) Get(word string) (*model.UGCWord, error) {
	return s.Repo.FindByWord(util.SanitizeWord(word))
}

func (s *UGCService) SetActive(word string, active bool) error {
	return s.Repo.SetActive(util.SanitizeWord(word), active)
}

// Delete 删除记录和图片，图片删除失败只记录日志
func (s *UGCService) Delete(ctx context.Context, word string) error {
	word = util.SanitizeWord(word)
	if err := s.Repo.Delete(word); err != nil {
		return err
	}
	if err := s.Storage.Delete(ctx, ugcImageKey(word)); err != nil {
		logger.Log.Warn("Failed to delete UGC image", zap.String("word", word), zap.Error(err))
	}
	return nil
}
