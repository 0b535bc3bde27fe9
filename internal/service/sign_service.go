package service

import (
	"context"
	"fmt"
	"math"
	"motorkeys_backend/internal/model"
	"motorkeys_backend/internal/repository"
	"motorkeys_backend/internal/util"
	"motorkeys_backend/pkg/logger"
	"motorkeys_backend/pkg/monitoring"
	"os"
	"path"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	signRawName    = "raw.webm"
	signLoopName   = "sign_loop.mp4"
	signPosterName = "poster.jpg"
)

// VideoProcessor 手语视频转码
type VideoProcessor interface {
	Process(inputPath, outputPath string) error
	Poster(videoPath, posterPath string) error
	Probe(videoPath string) (*util.VideoInfo, error)
}

// FFmpegProcessor 通过 ffmpeg 命令行转码
type FFmpegProcessor struct {
	Path string
}

func (p FFmpegProcessor) Process(inputPath, outputPath string) error {
	return util.ProcessSignVideo(p.Path, inputPath, outputPath)
}

func (p FFmpegProcessor) Poster(videoPath, posterPath string) error {
	return util.GeneratePoster(p.Path, videoPath, posterPath)
}

// Probe 依赖 PATH 中的 ffprobe
func (p FFmpegProcessor) Probe(videoPath string) (*util.VideoInfo, error) {
	return util.GetVideoInfo(videoPath)
}

// UploadSignRequest 录制页面提交的手语视频
type UploadSignRequest struct {
	Word      string `json:"word"`
	VideoData string `json:"videoData"`
	// Duration 录制时长（毫秒）
	Duration  int64  `json:"duration"`
	Timestamp string `json:"timestamp"`
}

type SignService struct {
	Repo          *repository.SignRepository
	Storage       *StorageService
	Processor     VideoProcessor
	WorkDir       string
	maxVideoBytes atomic.Int64
}

func NewSignService(repo *repository.SignRepository, storage *StorageService, processor VideoProcessor, workDir string, maxVideoBytes int64) *SignService {
	s := &SignService{Repo: repo, Storage: storage, Processor: processor, WorkDir: workDir}
	s.maxVideoBytes.Store(maxVideoBytes)
	return s
}

func (s *SignService) SetLimits(maxVideoBytes int64) {
	if maxVideoBytes > 0 {
		s.maxVideoBytes.Store(maxVideoBytes)
	}
}

func (s *SignService) MaxVideoBytes() int64 {
	return s.maxVideoBytes.Load()
}

func signKey(word, name string) string {
	return path.Join(util.SignVideoDir, word, name)
}

// Upload 保存原始录像，转码为循环播放的 mp4 后上传并登记
func (s *SignService) Upload(ctx context.Context, req UploadSignRequest) (*model.SignRecording, error) {
	if req.Word == "" || req.VideoData == "" {
		return nil, fmt.Errorf("%w: missing required fields: word, videoData", util.ErrInvalidInput)
	}
	word := util.SanitizeWord(req.Word)
	if word == "" {
		return nil, fmt.Errorf("%w: word must contain at least one alphanumeric character", util.ErrInvalidInput)
	}

	data, _, err := util.DecodeAndValidate(req.VideoData, s.MaxVideoBytes(), util.AllowedVideoTypes)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.WorkDir, 0755); err != nil {
		return nil, err
	}
	dir, err := os.MkdirTemp(s.WorkDir, "sign-"+word+"-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	rawPath := filepath.Join(dir, signRawName)
	if err := os.WriteFile(rawPath, data, 0644); err != nil {
		return nil, err
	}

	loopPath := filepath.Join(dir, signLoopName)
	if err := s.Processor.Process(rawPath, loopPath); err != nil {
		monitoring.SignVideosProcessed.WithLabelValues("failure").Inc()
		logger.Log.Error("Sign video processing failed", zap.String("word", word), zap.Error(err))
		return nil, err
	}
	monitoring.SignVideosProcessed.WithLabelValues("success").Inc()

	rawURL, err := s.Storage.UploadFile(ctx, signKey(word, signRawName), rawPath, "video/webm")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	loopURL, err := s.Storage.UploadFile(ctx, signKey(word, signLoopName), loopPath, "video/mp4")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}

	// 封面可选
	var posterURL string
	posterPath := filepath.Join(dir, signPosterName)
	if err := s.Processor.Poster(loopPath, posterPath); err != nil {
		logger.Log.Warn("Sign poster generation failed", zap.String("word", word), zap.Error(err))
	} else if posterURL, err = s.Storage.UploadFile(ctx, signKey(word, signPosterName), posterPath, "image/jpeg"); err != nil {
		logger.Log.Warn("Sign poster upload failed", zap.String("word", word), zap.Error(err))
		posterURL = ""
	}

	// 客户端未上报时长时从转码结果读取
	durationMs := max(req.Duration, 0)
	if durationMs == 0 {
		if info, err := s.Processor.Probe(loopPath); err != nil {
			logger.Log.Warn("Sign video probe failed", zap.String("word", word), zap.Error(err))
		} else {
			durationMs = int64(math.Round(info.Duration * 1000))
		}
	}

	recordedAt := req.Timestamp
	if recordedAt == "" {
		recordedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}

	sign := &model.SignRecording{
		Word:       word,
		RecordedAt: recordedAt,
		DurationMs: durationMs,
		LoopPath:   loopURL,
		RawPath:    rawURL,
		PosterPath: posterURL,
		Status:     util.SignStatusApproved,
	}
	if err := s.Repo.Upsert(sign); err != nil {
		return nil, err
	}

	logger.Log.Info("Sign video recorded", zap.String("word", word), zap.Int64("duration_ms", sign.DurationMs))
	return sign, nil
}

func (s *SignService) List() ([]model.SignRecording, error) {
	return s.Repo.List()
}

// ValidSignStatus approved / pending / deleted
func ValidSignStatus(status string) bool {
	switch status {
	case util.SignStatusApproved, util.SignStatusPending, util.SignStatusDeleted:
		return true
	}
	return false
}

// UpdateStatus 返回规范化后的单词
func (s *SignService) UpdateStatus(word, status string) (string, error) {
	if !ValidSignStatus(status) {
		return "", fmt.Errorf("%w: status must be one of: approved, pending, deleted", util.ErrInvalidInput)
	}
	word = util.SanitizeWord(word)
	if word == "" {
		return "", fmt.Errorf("%w: word must contain at least one alphanumeric character", util.ErrInvalidInput)
	}
	if err := s.Repo.UpdateStatus(word, status); err != nil {
		return word, err
	}
	logger.Log.Info("Sign status updated", zap.String("word", word), zap.String("status", status))
	return word, nil
}
