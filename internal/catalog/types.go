package catalog

// GradeBand 教学年级段
type GradeBand string

const (
	GradePreK GradeBand = "preK"
	GradeK    GradeBand = "K"
	Grade1    GradeBand = "1"
	Grade2    GradeBand = "2"
	Grade3    GradeBand = "3"
	Grade4    GradeBand = "4"
	Grade5    GradeBand = "5"
)

// WordSource 词汇来源语料
type WordSource string

const (
	SourceDolchCore      WordSource = "dolch_core"
	SourceDolchNoun      WordSource = "dolch_noun"
	SourceFry1To100      WordSource = "fry_1_100"
	SourceFry101To200    WordSource = "fry_101_200"
	SourceCustomThematic WordSource = "custom_thematic"
	SourceEmojiSeed      WordSource = "emoji_seed"
	SourceUGC            WordSource = "ugc"
)

type InstructionalPurpose string

const (
	PurposeSightWord         InstructionalPurpose = "sight_word"
	PurposePhonicsRegular    InstructionalPurpose = "phonics_regular"
	PurposePhonicsIrregular  InstructionalPurpose = "phonics_irregular"
	PurposeMorphologyBase    InstructionalPurpose = "morphology_base"
	PurposeMorphologyDerived InstructionalPurpose = "morphology_derived"
	PurposeEngagingMeaning   InstructionalPurpose = "engaging_meaning"
	PurposeConnector         InstructionalPurpose = "connector_function"
)

type PartOfSpeech string

const (
	Noun         PartOfSpeech = "noun"
	Verb         PartOfSpeech = "verb"
	Adjective    PartOfSpeech = "adjective"
	Adverb       PartOfSpeech = "adverb"
	Pronoun      PartOfSpeech = "pronoun"
	Article      PartOfSpeech = "article"
	Preposition  PartOfSpeech = "preposition"
	Conjunction  PartOfSpeech = "conjunction"
	Interjection PartOfSpeech = "interjection"
	OtherPOS     PartOfSpeech = "other"
)

type DecodingPattern string

const (
	PatternCVC           DecodingPattern = "CVC"
	PatternCVCe          DecodingPattern = "CVCe"
	PatternCV            DecodingPattern = "CV"
	PatternDigraph       DecodingPattern = "digraph"
	PatternBlend         DecodingPattern = "blend"
	PatternRControlled   DecodingPattern = "r_controlled"
	PatternVowelTeam     DecodingPattern = "vowel_team"
	PatternIrregular     DecodingPattern = "irregular"
	PatternMultiSyllable DecodingPattern = "multi_syllable"
	PatternOther         DecodingPattern = "other"
)

// EngagementTag 自由标签，例如 animal、story_hook
type EngagementTag string

// SignStatus 手语视频状态
type SignStatus string

const (
	SignMissing  SignStatus = "missing"
	SignPending  SignStatus = "pending"
	SignRecorded SignStatus = "recorded"
)

type ListType string

const (
	ListGradeLevel    ListType = "grade_level"
	ListTheme         ListType = "theme"
	ListGameMode      ListType = "game_mode"
	ListStoryTemplate ListType = "story_template"
	ListAssessment    ListType = "assessment"
)

type EmojiMeta struct {
	Default         string `json:"defaultEmoji,omitempty" yaml:"defaultEmoji"`
	Label           string `json:"emojiLabel,omitempty" yaml:"emojiLabel"`
	IsPrimaryVisual bool   `json:"isPrimaryVisual" yaml:"isPrimaryVisual"`
}

type ASLMeta struct {
	Gloss                string     `json:"gloss,omitempty" yaml:"gloss"`
	HasRecordedSignVideo bool       `json:"hasRecordedSignVideo" yaml:"hasRecordedSignVideo"`
	Status               SignStatus `json:"signVideoStatus" yaml:"signVideoStatus"`
	VideoURL             string     `json:"signVideoUrl,omitempty" yaml:"signVideoUrl"`
}

// Lineage 记录词汇或词表的来源
type Lineage struct {
	Sources []WordSource `json:"sources" yaml:"sources"`
	Notes   string       `json:"notes,omitempty" yaml:"notes"`
}

// Word 单个词汇条目
type Word struct {
	ID    string  `json:"id" yaml:"id"`
	Text  string  `json:"text" yaml:"text"`
	Lemma *string `json:"lemma,omitempty" yaml:"lemma"`

	GradeBands            []GradeBand            `json:"gradeBands" yaml:"gradeBands"`
	PartOfSpeech          PartOfSpeech           `json:"partOfSpeech" yaml:"partOfSpeech"`
	InstructionalPurposes []InstructionalPurpose `json:"instructionalPurposes" yaml:"instructionalPurposes"`
	DecodingPattern       *DecodingPattern       `json:"decodingPattern,omitempty" yaml:"decodingPattern"`

	Syllables     []string `json:"syllables,omitempty" yaml:"syllables"`
	Segments      []string `json:"segments,omitempty" yaml:"segments"`
	FrequencyRank *int     `json:"frequencyRank,omitempty" yaml:"frequencyRank"`

	IsSightWord     bool `json:"isSightWord" yaml:"isSightWord"`
	IsHighFrequency bool `json:"isHighFrequency" yaml:"isHighFrequency"`

	SemanticCategories []string        `json:"semanticCategories" yaml:"semanticCategories"`
	EngagementTags     []EngagementTag `json:"engagementTags" yaml:"engagementTags"`

	Emoji *EmojiMeta `json:"emoji,omitempty" yaml:"emoji"`
	ASL   *ASLMeta   `json:"asl,omitempty" yaml:"asl"`
	// ImageURL 用户自建词汇的配图
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl"`

	// Translations 语言代码 -> 译文，例如 "es" -> "tiburón"
	Translations map[string]string `json:"translations,omitempty" yaml:"translations"`

	Lineage Lineage `json:"lineage" yaml:"lineage"`
}

// HasEmoji 是否有可展示的 emoji
func (w Word) HasEmoji() bool {
	return w.Emoji != nil && w.Emoji.Default != ""
}

// HasSignVideo 是否已录制手语视频
func (w Word) HasSignVideo() bool {
	return w.ASL != nil && w.ASL.HasRecordedSignVideo
}

type WordList struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description"`
	ListType    ListType    `json:"listType" yaml:"listType"`
	GradeBands  []GradeBand `json:"gradeBands" yaml:"gradeBands"`
	Lineage     Lineage     `json:"lineage" yaml:"lineage"`
}

// WordListEntry 词表与词汇的多对多关系
type WordListEntry struct {
	ListID        string `json:"listId" yaml:"listId"`
	WordID        string `json:"wordId" yaml:"wordId"`
	Order         *int   `json:"order,omitempty" yaml:"order"`
	IsCore        bool   `json:"isCore" yaml:"isCore"`
	PurposeInList string `json:"purposeInList,omitempty" yaml:"purposeInList"`
	Notes         string `json:"notes,omitempty" yaml:"notes"`
}

// ListMembers 词表成员查询结果
type ListMembers struct {
	List           WordList `json:"list"`
	Words          []Word   `json:"words"`
	MissingWordIDs []string `json:"missingWordIds,omitempty"`
}

type RepositoryStats struct {
	TotalWords          int                  `json:"totalWords"`
	TotalLists          int                  `json:"totalLists"`
	TotalEntries        int                  `json:"totalEntries"`
	SightWords          int                  `json:"sightWords"`
	HighFrequencyWords  int                  `json:"highFrequencyWords"`
	ByPartOfSpeech      map[PartOfSpeech]int `json:"byPartOfSpeech"`
	ByCategory          map[string]int       `json:"byCategory"`
	WordsWithEmoji      int                  `json:"wordsWithEmoji"`
	WordsWithoutEmoji   int                  `json:"wordsWithoutEmoji"`
	WordsWithASL        int                  `json:"wordsWithAsl"`
	WordsWithoutASL     int                  `json:"wordsWithoutAsl"`
}
