package motor

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// smoothing 新样本的权重
const smoothing = 0.1

var (
	ErrInvalidKeystroke = errors.New("invalid keystroke")
	ErrInvalidInput     = errors.New("invalid motor input")
)

// Keystroke 单次按键记录
type Keystroke struct {
	Key         string  `json:"key"`
	TimestampMs float64 `json:"timestamp"`
	IsCorrect   bool    `json:"isCorrect"`
	ExpectedKey string  `json:"expectedKey"`
}

// WordSummary 一次单词输入的统计结果
type WordSummary struct {
	LeftHandErrors  int            `json:"leftHandErrors"`
	RightHandErrors int            `json:"rightHandErrors"`
	ErrorCount      int            `json:"errorCount"`
	LetterErrors    map[string]int `json:"letterErrors"`
	// RowTransitionMs 跨行样本的平均耗时，没有样本时为 nil
	RowTransitionMs *float64 `json:"rowTransitionMs,omitempty"`
	RowTransitions  int      `json:"rowTransitions"`
}

// Profile 学习者的运动技能画像
type Profile struct {
	LeftHandErrors      int            `json:"leftHandErrors"`
	RightHandErrors     int            `json:"rightHandErrors"`
	CommonLetterErrors  map[string]int `json:"commonLetterErrors"`
	RowTransitionSpeed  float64        `json:"rowTransitionSpeed"`
	RowTransitionWords  int            `json:"rowTransitionWords"`
	TypingSpeedBaseline float64        `json:"typingSpeedBaseline"`
	ErrorBaseline       float64        `json:"errorBaseline"`
	WordsCompleted      int            `json:"wordsCompleted"`
}

// LetterError 某个字母的累计错误次数
type LetterError struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// Summarize 统计一次单词输入：按手和期望字母计数错误，并采集相邻正确按键之间的跨行耗时
func Summarize(keystrokes []Keystroke) (WordSummary, error) {
	summary := WordSummary{LetterErrors: make(map[string]int)}

	var (
		prev    *Keystroke
		total   float64
		samples int
	)
	for i := range keystrokes {
		k := &keystrokes[i]
		if k.Key == "" {
			return WordSummary{}, fmt.Errorf("%w: keystroke %d has no key", ErrInvalidKeystroke, i)
		}

		if !k.IsCorrect {
			if k.ExpectedKey == "" {
				return WordSummary{}, fmt.Errorf("%w: incorrect keystroke %d has no expected key", ErrInvalidKeystroke, i)
			}
			summary.ErrorCount++
			switch ClassifyHand(k.Key) {
			case HandLeft:
				summary.LeftHandErrors++
			case HandRight:
				summary.RightHandErrors++
			}
			summary.LetterErrors[strings.ToLower(k.ExpectedKey)]++
			continue
		}

		if prev != nil && IsRowTransition(prev.Key, k.Key) {
			total += k.TimestampMs - prev.TimestampMs
			samples++
		}
		prev = k
	}

	if samples > 0 {
		avg := total / float64(samples)
		summary.RowTransitionMs = &avg
		summary.RowTransitions = samples
	}
	return summary, nil
}

// Fold 将单词统计合并进画像，返回新画像，不修改传入的 profile
func Fold(profile Profile, summary WordSummary, wordElapsedMs float64, letterCount int) (Profile, error) {
	if letterCount <= 0 {
		return profile, fmt.Errorf("%w: letter count must be positive, got %d", ErrInvalidInput, letterCount)
	}
	if wordElapsedMs < 0 {
		return profile, fmt.Errorf("%w: elapsed time must not be negative, got %v", ErrInvalidInput, wordElapsedMs)
	}

	next := profile
	next.CommonLetterErrors = make(map[string]int, len(profile.CommonLetterErrors)+len(summary.LetterErrors))
	for letter, n := range profile.CommonLetterErrors {
		next.CommonLetterErrors[letter] = n
	}
	for letter, n := range summary.LetterErrors {
		next.CommonLetterErrors[letter] += n
	}

	next.LeftHandErrors += summary.LeftHandErrors
	next.RightHandErrors += summary.RightHandErrors

	// 跨行速度按自身样本数判断首个样本：此前的单词都没有跨行样本时直接取值，
	// 即使 WordsCompleted 已大于 0
	if summary.RowTransitionMs != nil {
		if profile.RowTransitionWords == 0 {
			next.RowTransitionSpeed = *summary.RowTransitionMs
		} else {
			next.RowTransitionSpeed = blend(profile.RowTransitionSpeed, *summary.RowTransitionMs)
		}
		next.RowTransitionWords++
	}

	perLetter := wordElapsedMs / float64(letterCount)
	if profile.WordsCompleted == 0 {
		next.TypingSpeedBaseline = perLetter
		next.ErrorBaseline = float64(summary.ErrorCount)
	} else {
		next.TypingSpeedBaseline = blend(profile.TypingSpeedBaseline, perLetter)
		next.ErrorBaseline = blend(profile.ErrorBaseline, float64(summary.ErrorCount))
	}

	next.WordsCompleted++
	return next, nil
}

func blend(old, sample float64) float64 {
	return old*(1-smoothing) + sample*smoothing
}

// TopLetterErrors 错误最多的 n 个字母，次数相同时按字母排序
func TopLetterErrors(profile Profile, n int) []LetterError {
	out := make([]LetterError, 0, len(profile.CommonLetterErrors))
	for letter, count := range profile.CommonLetterErrors {
		out = append(out, LetterError{Letter: letter, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Letter < out[j].Letter
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
