package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var seedYAML []byte

// HighInterestWord 高兴趣词汇的种子格式
type HighInterestWord struct {
	Word             string   `yaml:"word"`
	Emoji            string   `yaml:"emoji"`
	Tags             []string `yaml:"tags"`
	GradeBand        string   `yaml:"gradeBand"`
	ASLType          string   `yaml:"aslType"`
	EngagementType   string   `yaml:"engagementType"`
	SentencePatterns []string `yaml:"sentencePatterns"`
}

type highInterestGroup struct {
	Category string             `yaml:"category"`
	Name     string             `yaml:"name"`
	Words    []HighInterestWord `yaml:"words"`
}

type seedFile struct {
	Words        []Word                       `yaml:"words"`
	Lists        []WordList                   `yaml:"lists"`
	Entries      []WordListEntry              `yaml:"entries"`
	HighInterest []highInterestGroup          `yaml:"highInterest"`
	Translations map[string]map[string]string `yaml:"translations"`
}

// LoadSeed 从内置种子数据构建目录
func LoadSeed() (*Catalog, error) {
	return Parse(seedYAML)
}

// Parse 解析 YAML 种子数据：核心词汇原样载入，高兴趣词汇展开为 Word 与主题词表
func Parse(data []byte) (*Catalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: parse seed: %v", ErrInvalidCatalog, err)
	}

	words := seed.Words
	lists := seed.Lists
	entries := seed.Entries

	index := make(map[string]int, len(words))
	for i, w := range words {
		index[NormalizeID(w.ID)] = i
	}

	for _, group := range seed.HighInterest {
		listID := "hi_" + NormalizeID(group.Category)
		lists = append(lists, WordList{
			ID:          listID,
			Name:        group.Name,
			Description: "High-interest " + group.Category + " vocabulary with emoji support.",
			ListType:    ListTheme,
			Lineage: Lineage{
				Sources: []WordSource{SourceCustomThematic, SourceEmojiSeed},
				Notes:   "Expanded from the high-interest " + group.Category + " seed group.",
			},
		})

		for i, hi := range group.Words {
			id := NormalizeID(hi.Word)
			if _, exists := index[id]; !exists {
				index[id] = len(words)
				words = append(words, expandHighInterest(group.Category, hi))
			}
			order := i + 1
			entries = append(entries, WordListEntry{
				ListID: listID,
				WordID: id,
				Order:  &order,
				IsCore: true,
			})
		}
	}

	for lang, dict := range seed.Translations {
		for text, translated := range dict {
			i, ok := index[NormalizeID(text)]
			if !ok {
				continue
			}
			if words[i].Translations == nil {
				words[i].Translations = make(map[string]string)
			}
			words[i].Translations[lang] = translated
		}
	}

	return New(words, lists, entries)
}

func expandHighInterest(category string, hi HighInterestWord) Word {
	text := strings.TrimSpace(hi.Word)
	tags := make([]EngagementTag, 0, len(hi.Tags)+1)
	if hi.EngagementType != "" {
		tags = append(tags, EngagementTag(hi.EngagementType))
	}
	for _, t := range hi.Tags {
		tags = append(tags, EngagementTag(t))
	}

	w := Word{
		ID:                    NormalizeID(text),
		Text:                  text,
		GradeBands:            expandGradeBand(hi.GradeBand),
		PartOfSpeech:          categoryPartOfSpeech(category),
		InstructionalPurposes: []InstructionalPurpose{PurposeEngagingMeaning},
		Segments:              []string{text},
		SemanticCategories:    []string{category},
		EngagementTags:        tags,
		ASL: &ASLMeta{
			Gloss:  strings.ToUpper(text),
			Status: SignMissing,
		},
		Lineage: Lineage{
			Sources: []WordSource{SourceCustomThematic, SourceEmojiSeed},
			Notes:   fmt.Sprintf("High-interest %s word (%s, asl %s).", category, hi.EngagementType, hi.ASLType),
		},
	}
	if hi.Emoji != "" {
		w.Emoji = &EmojiMeta{Default: hi.Emoji, Label: text, IsPrimaryVisual: true}
	}
	return w
}

// expandGradeBand "K-1" -> [K 1]
func expandGradeBand(estimate string) []GradeBand {
	switch estimate {
	case "K-1":
		return []GradeBand{GradeK, Grade1}
	case "2-3":
		return []GradeBand{Grade2, Grade3}
	case "4-5":
		return []GradeBand{Grade4, Grade5}
	default:
		return []GradeBand{}
	}
}

func categoryPartOfSpeech(category string) PartOfSpeech {
	switch category {
	case "actions":
		return Verb
	case "feelings":
		return Adjective
	default:
		return Noun
	}
}
