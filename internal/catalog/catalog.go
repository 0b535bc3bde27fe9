package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// UGCPrefix 用户自建词汇的 ID 前缀
const UGCPrefix = "user:"

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog 只读的词汇目录，构建后不再修改
type Catalog struct {
	words     []Word
	wordIndex map[string]int
	lists     []WordList
	listIndex map[string]int
	entries   []WordListEntry
}

// NormalizeID 统一 ID 格式：去空白、小写
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// UGCWordID 用户词汇在目录中的 ID
func UGCWordID(text string) string {
	return UGCPrefix + NormalizeID(text)
}

// New 校验并构建目录。传入的切片会被复制。
func New(words []Word, lists []WordList, entries []WordListEntry) (*Catalog, error) {
	c := &Catalog{
		words:     make([]Word, 0, len(words)),
		wordIndex: make(map[string]int, len(words)),
		lists:     make([]WordList, 0, len(lists)),
		listIndex: make(map[string]int, len(lists)),
		entries:   make([]WordListEntry, 0, len(entries)),
	}

	for _, w := range words {
		if err := validateWord(w); err != nil {
			return nil, err
		}
		if _, dup := c.wordIndex[w.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate word id %q", ErrInvalidCatalog, w.ID)
		}
		c.wordIndex[w.ID] = len(c.words)
		c.words = append(c.words, cloneWord(w))
	}

	for _, l := range lists {
		id := NormalizeID(l.ID)
		if id == "" || id != l.ID {
			return nil, fmt.Errorf("%w: list id %q must be non-empty and normalized", ErrInvalidCatalog, l.ID)
		}
		if _, dup := c.listIndex[id]; dup {
			return nil, fmt.Errorf("%w: duplicate list id %q", ErrInvalidCatalog, id)
		}
		c.listIndex[id] = len(c.lists)
		c.lists = append(c.lists, cloneList(l))
	}

	seen := make(map[[2]string]bool, len(entries))
	for _, e := range entries {
		key := [2]string{NormalizeID(e.ListID), NormalizeID(e.WordID)}
		if seen[key] {
			return nil, fmt.Errorf("%w: word %q appears twice in list %q", ErrInvalidCatalog, e.WordID, e.ListID)
		}
		seen[key] = true
		e.ListID, e.WordID = key[0], key[1]
		if e.Order != nil {
			e.Order = lo.ToPtr(*e.Order)
		}
		c.entries = append(c.entries, e)
	}

	return c, nil
}

func validateWord(w Word) error {
	if strings.TrimSpace(w.Text) == "" {
		return fmt.Errorf("%w: word %q has empty text", ErrInvalidCatalog, w.ID)
	}
	if w.ID != NormalizeID(w.ID) || strings.TrimPrefix(w.ID, UGCPrefix) != NormalizeID(w.Text) {
		return fmt.Errorf("%w: word id %q is not derived from text %q", ErrInvalidCatalog, w.ID, w.Text)
	}
	if w.FrequencyRank != nil && *w.FrequencyRank <= 0 {
		return fmt.Errorf("%w: word %q has non-positive frequency rank %d", ErrInvalidCatalog, w.ID, *w.FrequencyRank)
	}
	if len(w.Lineage.Sources) == 0 {
		return fmt.Errorf("%w: word %q has no lineage sources", ErrInvalidCatalog, w.ID)
	}
	return nil
}

// WithWords 返回追加了额外词汇的新目录，原目录不变
func (c *Catalog) WithWords(extra ...Word) (*Catalog, error) {
	words := make([]Word, 0, len(c.words)+len(extra))
	words = append(words, c.words...)
	words = append(words, extra...)
	return New(words, c.lists, c.entries)
}

// WithEnrichment 返回逐个词汇经过 fn 处理后的新目录
func (c *Catalog) WithEnrichment(fn func(Word) Word) *Catalog {
	out := &Catalog{
		words:     make([]Word, len(c.words)),
		wordIndex: c.wordIndex,
		lists:     c.lists,
		listIndex: c.listIndex,
		entries:   c.entries,
	}
	for i, w := range c.words {
		enriched := fn(cloneWord(w))
		// ID 参与索引，不允许被修改
		enriched.ID = w.ID
		out.words[i] = enriched
	}
	return out
}

func (c *Catalog) AllWords() []Word {
	return cloneWords(c.words)
}

// WordByID 大小写不敏感查找，不存在时返回 false
func (c *Catalog) WordByID(id string) (Word, bool) {
	i, ok := c.wordIndex[NormalizeID(id)]
	if !ok {
		return Word{}, false
	}
	return cloneWord(c.words[i]), true
}

func (c *Catalog) AllWordLists() []WordList {
	return lo.Map(c.lists, func(l WordList, _ int) WordList { return cloneList(l) })
}

func (c *Catalog) WordListByID(id string) (WordList, bool) {
	i, ok := c.listIndex[NormalizeID(id)]
	if !ok {
		return WordList{}, false
	}
	return cloneList(c.lists[i]), true
}

// WordsInList 按 order 升序返回词表中的词汇，未设置 order 的条目按录入顺序排在最后。
// 指向不存在词汇的条目会被跳过并记录在 MissingWordIDs 中。
func (c *Catalog) WordsInList(listID string) (ListMembers, bool) {
	return c.membersOf(listID, func(WordListEntry) bool { return true })
}

// CoreWordsInList 只返回 isCore 条目
func (c *Catalog) CoreWordsInList(listID string) (ListMembers, bool) {
	return c.membersOf(listID, func(e WordListEntry) bool { return e.IsCore })
}

func (c *Catalog) membersOf(listID string, keep func(WordListEntry) bool) (ListMembers, bool) {
	list, ok := c.WordListByID(listID)
	if !ok {
		return ListMembers{}, false
	}

	members := ListMembers{List: list, Words: []Word{}}
	for _, e := range c.EntriesForList(list.ID) {
		if !keep(e) {
			continue
		}
		w, found := c.WordByID(e.WordID)
		if !found {
			members.MissingWordIDs = append(members.MissingWordIDs, e.WordID)
			continue
		}
		members.Words = append(members.Words, w)
	}
	return members, true
}

// EntriesForList 已排序的词表条目
func (c *Catalog) EntriesForList(listID string) []WordListEntry {
	id := NormalizeID(listID)
	entries := lo.Filter(c.entries, func(e WordListEntry, _ int) bool {
		return e.ListID == id
	})

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Order, entries[j].Order
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})
	return entries
}

// ListsForWord 反向查询词汇所属的词表，词汇不存在时返回 false
func (c *Catalog) ListsForWord(wordID string) ([]WordList, bool) {
	id := NormalizeID(wordID)
	if _, ok := c.wordIndex[id]; !ok {
		return nil, false
	}

	lists := []WordList{}
	for _, e := range c.entries {
		if e.WordID != id {
			continue
		}
		if l, found := c.WordListByID(e.ListID); found {
			lists = append(lists, l)
		}
	}
	return lists, true
}

func (c *Catalog) WordsByCategory(category string) []Word {
	category = strings.ToLower(strings.TrimSpace(category))
	return c.filter(func(w Word) bool {
		return lo.ContainsBy(w.SemanticCategories, func(s string) bool {
			return strings.ToLower(s) == category
		})
	})
}

func (c *Catalog) WordsByPartOfSpeech(pos PartOfSpeech) []Word {
	return c.filter(func(w Word) bool { return w.PartOfSpeech == pos })
}

func (c *Catalog) WordsBySightWordFlag(isSightWord bool) []Word {
	return c.filter(func(w Word) bool { return w.IsSightWord == isSightWord })
}

func (c *Catalog) WordsByGradeBand(band GradeBand) []Word {
	return c.filter(func(w Word) bool { return lo.Contains(w.GradeBands, band) })
}

func (c *Catalog) HighFrequencyWords() []Word {
	return c.filter(func(w Word) bool { return w.IsHighFrequency })
}

func (c *Catalog) WordsByEngagementTag(tag EngagementTag) []Word {
	return c.filter(func(w Word) bool { return lo.Contains(w.EngagementTags, tag) })
}

func (c *Catalog) filter(pred func(Word) bool) []Word {
	out := []Word{}
	for _, w := range c.words {
		if pred(w) {
			out = append(out, cloneWord(w))
		}
	}
	return out
}

// Stats 每次调用重新计算
func (c *Catalog) Stats() RepositoryStats {
	stats := RepositoryStats{
		TotalWords:         len(c.words),
		TotalLists:         len(c.lists),
		TotalEntries:       len(c.entries),
		SightWords:         lo.CountBy(c.words, func(w Word) bool { return w.IsSightWord }),
		HighFrequencyWords: lo.CountBy(c.words, func(w Word) bool { return w.IsHighFrequency }),
		ByPartOfSpeech:     make(map[PartOfSpeech]int),
		ByCategory:         make(map[string]int),
		WordsWithEmoji:     lo.CountBy(c.words, Word.HasEmoji),
		WordsWithASL:       lo.CountBy(c.words, Word.HasSignVideo),
	}
	stats.WordsWithoutEmoji = stats.TotalWords - stats.WordsWithEmoji
	stats.WordsWithoutASL = stats.TotalWords - stats.WordsWithASL

	for _, w := range c.words {
		stats.ByPartOfSpeech[w.PartOfSpeech]++
		for _, cat := range lo.Uniq(w.SemanticCategories) {
			stats.ByCategory[cat]++
		}
	}
	return stats
}

// SpeakableTexts 去重排序后的小写词汇文本，用于 TTS 预生成
func (c *Catalog) SpeakableTexts() []string {
	texts := lo.Uniq(lo.Map(c.words, func(w Word, _ int) string {
		return strings.ToLower(strings.TrimSpace(w.Text))
	}))
	sort.Strings(texts)
	return texts
}

func cloneWords(words []Word) []Word {
	out := make([]Word, len(words))
	for i, w := range words {
		out[i] = cloneWord(w)
	}
	return out
}

func cloneWord(w Word) Word {
	w.GradeBands = cloneSlice(w.GradeBands)
	w.InstructionalPurposes = cloneSlice(w.InstructionalPurposes)
	w.Syllables = cloneSlice(w.Syllables)
	w.Segments = cloneSlice(w.Segments)
	w.SemanticCategories = cloneSlice(w.SemanticCategories)
	w.EngagementTags = cloneSlice(w.EngagementTags)
	w.Lineage.Sources = cloneSlice(w.Lineage.Sources)
	if w.Lemma != nil {
		w.Lemma = lo.ToPtr(*w.Lemma)
	}
	if w.DecodingPattern != nil {
		w.DecodingPattern = lo.ToPtr(*w.DecodingPattern)
	}
	if w.FrequencyRank != nil {
		w.FrequencyRank = lo.ToPtr(*w.FrequencyRank)
	}
	if w.Emoji != nil {
		w.Emoji = lo.ToPtr(*w.Emoji)
	}
	if w.ASL != nil {
		w.ASL = lo.ToPtr(*w.ASL)
	}
	if w.Translations != nil {
		t := make(map[string]string, len(w.Translations))
		for k, v := range w.Translations {
			t[k] = v
		}
		w.Translations = t
	}
	return w
}

func cloneList(l WordList) WordList {
	l.GradeBands = cloneSlice(l.GradeBands)
	l.Lineage.Sources = cloneSlice(l.Lineage.Sources)
	return l
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s...)
}
