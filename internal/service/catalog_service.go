package service

import (
	"fmt"
	"motorkeys_backend/internal/catalog"
	"motorkeys_backend/internal/model"
	"motorkeys_backend/internal/repository"
	"motorkeys_backend/internal/util"
	"motorkeys_backend/pkg/logger"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// WordFilter 词汇查询条件，空字段表示不过滤
type WordFilter struct {
	Category      string
	PartOfSpeech  string
	GradeBand     string
	Tag           string
	SightWord     *bool
	HighFrequency bool
}

// CatalogService 组合内置种子目录、启用的用户词汇和手语录像状态
type CatalogService struct {
	Base     *catalog.Catalog
	UGCRepo  *repository.UGCRepository
	SignRepo *repository.SignRepository
}

func NewCatalogService(base *catalog.Catalog, ugcRepo *repository.UGCRepository, signRepo *repository.SignRepository) *CatalogService {
	return &CatalogService{Base: base, UGCRepo: ugcRepo, SignRepo: signRepo}
}

// Current 每次调用重新合并，返回的目录不会被后续写入影响
func (s *CatalogService) Current() (*catalog.Catalog, error) {
	ugcWords, err := s.UGCRepo.List(true)
	if err != nil {
		return nil, fmt.Errorf("list ugc words: %w", err)
	}
	signs, err := s.SignRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list signs: %w", err)
	}

	merged, err := s.Base.WithWords(lo.Map(ugcWords, func(w model.UGCWord, _ int) catalog.Word {
		return UGCToWord(w)
	})...)
	if err != nil {
		return nil, err
	}

	byWord := lo.Associate(signs, func(sr model.SignRecording) (string, model.SignRecording) {
		return sr.Word, sr
	})
	return merged.WithEnrichment(func(w catalog.Word) catalog.Word {
		if sr, ok := byWord[util.SanitizeWord(w.Text)]; ok {
			return applySign(w, sr)
		}
		return w
	}), nil
}

// UGCToWord 用户词汇在目录中的表示
func UGCToWord(w model.UGCWord) catalog.Word {
	return catalog.Word{
		ID:                    catalog.UGCWordID(w.Word),
		Text:                  w.Word,
		GradeBands:            []catalog.GradeBand{},
		PartOfSpeech:          catalog.Noun,
		InstructionalPurposes: []catalog.InstructionalPurpose{catalog.PurposeEngagingMeaning},
		Syllables:             w.Syllables,
		Segments:              w.Segments,
		SemanticCategories:    []string{"user"},
		EngagementTags:        []catalog.EngagementTag{"user_created"},
		ImageURL:              w.ImagePath,
		Lineage: catalog.Lineage{
			Sources: []catalog.WordSource{catalog.SourceUGC},
			Notes:   "Created by a learner (" + w.ImageType + " image).",
		},
	}
}

// SignStatus 录像状态到目录状态：approved->recorded, pending->pending, 其余->missing
func SignStatus(status string) catalog.SignStatus {
	switch status {
	case util.SignStatusApproved:
		return catalog.SignRecorded
	case util.SignStatusPending:
		return catalog.SignPending
	default:
		return catalog.SignMissing
	}
}

func applySign(w catalog.Word, sr model.SignRecording) catalog.Word {
	if w.ASL == nil {
		w.ASL = &catalog.ASLMeta{Gloss: strings.ToUpper(w.Text)}
	}
	w.ASL.Status = SignStatus(sr.Status)
	w.ASL.HasRecordedSignVideo = w.ASL.Status == catalog.SignRecorded
	w.ASL.VideoURL = ""
	if w.ASL.HasRecordedSignVideo {
		w.ASL.VideoURL = sr.LoopPath
	}
	return w
}

func (s *CatalogService) Words(f WordFilter) ([]catalog.Word, error) {
	c, err := s.Current()
	if err != nil {
		return nil, err
	}

	words := c.AllWords()
	if f.Category != "" {
		words = intersect(words, c.WordsByCategory(f.Category))
	}
	if f.PartOfSpeech != "" {
		words = intersect(words, c.WordsByPartOfSpeech(catalog.PartOfSpeech(f.PartOfSpeech)))
	}
	if f.GradeBand != "" {
		words = intersect(words, c.WordsByGradeBand(catalog.GradeBand(f.GradeBand)))
	}
	if f.Tag != "" {
		words = intersect(words, c.WordsByEngagementTag(catalog.EngagementTag(f.Tag)))
	}
	if f.SightWord != nil {
		words = intersect(words, c.WordsBySightWordFlag(*f.SightWord))
	}
	if f.HighFrequency {
		words = intersect(words, c.HighFrequencyWords())
	}
	return words, nil
}

// intersect 保留 a 中同时出现在 b 里的词，顺序沿用 a
func intersect(a, b []catalog.Word) []catalog.Word {
	keep := lo.Associate(b, func(w catalog.Word) (string, bool) { return w.ID, true })
	return lo.Filter(a, func(w catalog.Word, _ int) bool { return keep[w.ID] })
}

func (s *CatalogService) Word(id string) (catalog.Word, error) {
	c, err := s.Current()
	if err != nil {
		return catalog.Word{}, err
	}
	w, ok := c.WordByID(id)
	if !ok {
		return catalog.Word{}, util.ErrWordNotFound
	}
	return w, nil
}

func (s *CatalogService) ListsForWord(id string) ([]catalog.WordList, error) {
	c, err := s.Current()
	if err != nil {
		return nil, err
	}
	lists, ok := c.ListsForWord(id)
	if !ok {
		return nil, util.ErrWordNotFound
	}
	return lists, nil
}

func (s *CatalogService) Lists() []catalog.WordList {
	return s.Base.AllWordLists()
}

func (s *CatalogService) List(id string) (catalog.WordList, error) {
	l, ok := s.Base.WordListByID(id)
	if !ok {
		return catalog.WordList{}, util.ErrNotFound
	}
	return l, nil
}

// ListWords coreOnly 为 true 时只返回核心词
func (s *CatalogService) ListWords(id string, coreOnly bool) (catalog.ListMembers, error) {
	c, err := s.Current()
	if err != nil {
		return catalog.ListMembers{}, err
	}

	query := c.WordsInList
	if coreOnly {
		query = c.CoreWordsInList
	}
	members, ok := query(id)
	if !ok {
		return catalog.ListMembers{}, util.ErrNotFound
	}
	if len(members.MissingWordIDs) > 0 {
		logger.Log.Warn("Word list references unknown words",
			zap.String("list", members.List.ID),
			zap.Strings("words", members.MissingWordIDs))
	}
	return members, nil
}

func (s *CatalogService) Stats() (catalog.RepositoryStats, error) {
	c, err := s.Current()
	if err != nil {
		return catalog.RepositoryStats{}, err
	}
	return c.Stats(), nil
}
