package catalog

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWord(id string, opts ...func(*Word)) Word {
	w := Word{
		ID:                 id,
		Text:               id,
		GradeBands:         []GradeBand{GradeK},
		PartOfSpeech:       Noun,
		SemanticCategories: []string{},
		EngagementTags:     []EngagementTag{},
		Lineage:            Lineage{Sources: []WordSource{SourceCustomThematic}},
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	words := []Word{
		testWord("the", func(w *Word) {
			w.PartOfSpeech = Article
			w.IsSightWord = true
			w.IsHighFrequency = true
			w.FrequencyRank = lo.ToPtr(1)
		}),
		testWord("dog", func(w *Word) {
			w.IsSightWord = true
			w.SemanticCategories = []string{"animal", "pet"}
			w.EngagementTags = []EngagementTag{"animal"}
			w.Emoji = &EmojiMeta{Default: "🐶", Label: "dog face", IsPrimaryVisual: true}
		}),
		testWord("barks", func(w *Word) {
			w.PartOfSpeech = Verb
			w.SemanticCategories = []string{"Animal_Sound"}
			w.ASL = &ASLMeta{Gloss: "DOG-BARK", HasRecordedSignVideo: true, Status: SignRecorded}
		}),
	}
	lists := []WordList{
		{ID: "kindergarten_core", Name: "K core", ListType: ListGradeLevel, Lineage: Lineage{Sources: []WordSource{SourceDolchCore}}},
		{ID: "empty", Name: "Empty", ListType: ListTheme, Lineage: Lineage{Sources: []WordSource{SourceCustomThematic}}},
	}
	entries := []WordListEntry{
		{ListID: "kindergarten_core", WordID: "barks", Order: lo.ToPtr(21)},
		{ListID: "kindergarten_core", WordID: "ghost", IsCore: true},
		{ListID: "kindergarten_core", WordID: "dog", Order: lo.ToPtr(20), IsCore: true},
		{ListID: "kindergarten_core", WordID: "the", Order: lo.ToPtr(1), IsCore: true},
		{ListID: "missing_list", WordID: "dog"},
	}
	c, err := New(words, lists, entries)
	require.NoError(t, err)
	return c
}

func ids(words []Word) []string {
	return lo.Map(words, func(w Word, _ int) string { return w.ID })
}

func TestWordByID(t *testing.T) {
	c := newTestCatalog(t)

	w, ok := c.WordByID("  DOG ")
	require.True(t, ok)
	assert.Equal(t, "dog", w.ID)

	_, ok = c.WordByID("unicorn")
	assert.False(t, ok)

	// 返回值是副本
	w.SemanticCategories[0] = "changed"
	again, _ := c.WordByID("dog")
	assert.Equal(t, "animal", again.SemanticCategories[0])
}

func TestWordListsAreCopies(t *testing.T) {
	src := []WordList{{
		ID:         "k",
		Name:       "K",
		ListType:   ListGradeLevel,
		GradeBands: []GradeBand{GradeK},
		Lineage:    Lineage{Sources: []WordSource{SourceDolchCore}},
	}}
	c, err := New([]Word{testWord("dog")}, src, []WordListEntry{{ListID: "k", WordID: "dog"}})
	require.NoError(t, err)

	// 构建后修改调用方的切片不影响目录
	src[0].GradeBands[0] = Grade5
	l, ok := c.WordListByID("k")
	require.True(t, ok)
	assert.Equal(t, []GradeBand{GradeK}, l.GradeBands)

	// 返回值是副本
	l.GradeBands[0] = Grade3
	c.AllWordLists()[0].Lineage.Sources[0] = SourceUGC
	members, ok := c.WordsInList("k")
	require.True(t, ok)
	members.List.Lineage.Sources[0] = SourceUGC
	lists, ok := c.ListsForWord("dog")
	require.True(t, ok)
	lists[0].GradeBands[0] = Grade1

	again, _ := c.WordListByID("k")
	assert.Equal(t, []GradeBand{GradeK}, again.GradeBands)
	assert.Equal(t, []WordSource{SourceDolchCore}, again.Lineage.Sources)
}

func TestWordsInListOrdering(t *testing.T) {
	c := newTestCatalog(t)

	members, ok := c.WordsInList("kindergarten_core")
	require.True(t, ok)
	assert.Equal(t, []string{"the", "dog", "barks"}, ids(members.Words))
	assert.Equal(t, []string{"ghost"}, members.MissingWordIDs)

	core, ok := c.CoreWordsInList("KINDERGARTEN_CORE")
	require.True(t, ok)
	assert.Equal(t, []string{"the", "dog"}, ids(core.Words))

	empty, ok := c.WordsInList("empty")
	require.True(t, ok)
	assert.NotNil(t, empty.Words)
	assert.Empty(t, empty.Words)

	_, ok = c.WordsInList("nope")
	assert.False(t, ok)
}

func TestEntriesForListUnorderedLast(t *testing.T) {
	c := newTestCatalog(t)
	entries := c.EntriesForList("kindergarten_core")
	got := lo.Map(entries, func(e WordListEntry, _ int) string { return e.WordID })
	assert.Equal(t, []string{"the", "dog", "barks", "ghost"}, got)
}

func TestListsForWord(t *testing.T) {
	c := newTestCatalog(t)

	lists, ok := c.ListsForWord("dog")
	require.True(t, ok)
	require.Len(t, lists, 1)
	assert.Equal(t, "kindergarten_core", lists[0].ID)

	lists, ok = c.ListsForWord("barks")
	require.True(t, ok)
	assert.Len(t, lists, 1)

	_, ok = c.ListsForWord("ghost")
	assert.False(t, ok)
}

// 每个 WordsInList 结果里的词汇，其 ListsForWord 都应包含该词表
func TestListMembershipIsSymmetric(t *testing.T) {
	c, err := LoadSeed()
	require.NoError(t, err)

	for _, l := range c.AllWordLists() {
		members, ok := c.WordsInList(l.ID)
		require.True(t, ok)
		for _, w := range members.Words {
			lists, ok := c.ListsForWord(w.ID)
			require.True(t, ok)
			assert.True(t, lo.ContainsBy(lists, func(x WordList) bool { return x.ID == l.ID }),
				"word %s should list %s", w.ID, l.ID)
		}
	}
}

func TestFilters(t *testing.T) {
	c := newTestCatalog(t)

	assert.Equal(t, []string{"dog"}, ids(c.WordsByCategory("ANIMAL")))
	assert.Equal(t, []string{"barks"}, ids(c.WordsByCategory("animal_sound")))
	assert.Equal(t, []string{"dog"}, ids(c.WordsByPartOfSpeech(Noun)))
	assert.Equal(t, []string{"the", "dog"}, ids(c.WordsBySightWordFlag(true)))
	assert.Equal(t, []string{"barks"}, ids(c.WordsBySightWordFlag(false)))
	assert.Equal(t, []string{"the"}, ids(c.HighFrequencyWords()))
	assert.Equal(t, []string{"dog"}, ids(c.WordsByEngagementTag("animal")))
	assert.Len(t, c.WordsByGradeBand(GradeK), 3)

	none := c.WordsByCategory("space")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSightWordPartition(t *testing.T) {
	c, err := LoadSeed()
	require.NoError(t, err)

	sight := c.WordsBySightWordFlag(true)
	other := c.WordsBySightWordFlag(false)
	assert.Equal(t, len(c.AllWords()), len(sight)+len(other))
	assert.Empty(t, lo.Intersect(ids(sight), ids(other)))
}

func TestStats(t *testing.T) {
	c := newTestCatalog(t)
	stats := c.Stats()

	assert.Equal(t, 3, stats.TotalWords)
	assert.Equal(t, 2, stats.TotalLists)
	assert.Equal(t, 5, stats.TotalEntries)
	assert.Equal(t, 2, stats.SightWords)
	assert.Equal(t, 1, stats.HighFrequencyWords)
	assert.Equal(t, 2, stats.ByPartOfSpeech[Noun]+stats.ByPartOfSpeech[Verb])
	assert.Equal(t, 1, stats.ByCategory["animal"])
	assert.Equal(t, 1, stats.WordsWithEmoji)
	assert.Equal(t, 2, stats.WordsWithoutEmoji)
	assert.Equal(t, 1, stats.WordsWithASL)
	assert.Equal(t, 2, stats.WordsWithoutASL)

	// 两次调用结果一致
	assert.Equal(t, stats, c.Stats())
}

func TestNewRejectsInvalidData(t *testing.T) {
	src := Lineage{Sources: []WordSource{SourceUGC}}
	cases := map[string]struct {
		words   []Word
		lists   []WordList
		entries []WordListEntry
	}{
		"duplicate word": {words: []Word{testWord("cat"), testWord("cat")}},
		"id not derived": {words: []Word{testWord("cat", func(w *Word) { w.Text = "dog" })}},
		"uppercase id":   {words: []Word{testWord("Cat", func(w *Word) { w.Text = "cat" })}},
		"empty text":     {words: []Word{testWord("", func(w *Word) { w.Text = " " })}},
		"zero rank":      {words: []Word{testWord("cat", func(w *Word) { w.FrequencyRank = lo.ToPtr(0) })}},
		"no lineage":     {words: []Word{testWord("cat", func(w *Word) { w.Lineage = Lineage{} })}},
		"duplicate list": {lists: []WordList{{ID: "a", Lineage: src}, {ID: "a", Lineage: src}}},
		"duplicate entry": {entries: []WordListEntry{
			{ListID: "a", WordID: "cat"},
			{ListID: "A", WordID: "CAT"},
		}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(tc.words, tc.lists, tc.entries)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestWithWordsLeavesReceiverUntouched(t *testing.T) {
	c := newTestCatalog(t)
	ugc := testWord(UGCWordID("Zorp"), func(w *Word) {
		w.Text = "zorp"
		w.Lineage = Lineage{Sources: []WordSource{SourceUGC}}
	})

	merged, err := c.WithWords(ugc)
	require.NoError(t, err)

	_, ok := merged.WordByID("user:zorp")
	assert.True(t, ok)
	_, ok = c.WordByID("user:zorp")
	assert.False(t, ok)
	assert.Len(t, merged.AllWords(), 4)
	assert.Len(t, c.AllWords(), 3)

	_, err = merged.WithWords(ugc)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestWithEnrichment(t *testing.T) {
	c := newTestCatalog(t)
	enriched := c.WithEnrichment(func(w Word) Word {
		if w.ID == "dog" {
			w.ASL = &ASLMeta{Gloss: "DOG", HasRecordedSignVideo: true, Status: SignRecorded, VideoURL: "/signs/dog.mp4"}
		}
		w.ID = "tampered"
		return w
	})

	dog, ok := enriched.WordByID("dog")
	require.True(t, ok)
	assert.True(t, dog.HasSignVideo())
	assert.Equal(t, 2, enriched.Stats().WordsWithASL)

	orig, _ := c.WordByID("dog")
	assert.False(t, orig.HasSignVideo())
}

func TestLoadSeed(t *testing.T) {
	c, err := LoadSeed()
	require.NoError(t, err)

	the, ok := c.WordByID("the")
	require.True(t, ok)
	assert.Equal(t, Article, the.PartOfSpeech)
	assert.Equal(t, 1, *the.FrequencyRank)
	assert.ElementsMatch(t, []WordSource{SourceDolchCore, SourceFry1To100}, the.Lineage.Sources)
	assert.False(t, the.HasEmoji())

	// 与 /api/words/stats 路由冲突的 ID 不能出现在种子中
	_, ok = c.WordByID("stats")
	assert.False(t, ok)

	barks, ok := c.WordByID("barks")
	require.True(t, ok)
	assert.Equal(t, "bark", *barks.Lemma)
	assert.Equal(t, []string{"bark", "s"}, barks.Segments)

	members, ok := c.WordsInList("kindergarten_core")
	require.True(t, ok)
	assert.Equal(t, []string{"the", "dog", "barks"}, ids(members.Words))
	assert.Empty(t, members.MissingWordIDs)

	// 重复出现在多个主题中的高兴趣词只创建一次
	dragonLists, ok := c.ListsForWord("dragon")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"hi_animals", "hi_fantasy"},
		lo.Map(dragonLists, func(l WordList, _ int) string { return l.ID }))

	dragon, _ := c.WordByID("dragon")
	assert.Equal(t, "dragón", dragon.Translations["es"])
	assert.True(t, dragon.HasEmoji())
	assert.Equal(t, "DRAGON", dragon.ASL.Gloss)
	assert.Equal(t, SignMissing, dragon.ASL.Status)

	jump, _ := c.WordByID("jump")
	assert.Equal(t, Verb, jump.PartOfSpeech)
	happy, _ := c.WordByID("happy")
	assert.Equal(t, Adjective, happy.PartOfSpeech)
	assert.Equal(t, []GradeBand{GradeK, Grade1}, happy.GradeBands)

	stats := c.Stats()
	assert.Equal(t, stats.TotalWords, stats.WordsWithEmoji+stats.WordsWithoutEmoji)
	assert.Equal(t, stats.TotalWords, stats.WordsWithASL+stats.WordsWithoutASL)
	assert.Equal(t, len(c.AllWordLists()), stats.TotalLists)
}

func TestParseRejectsBrokenYAML(t *testing.T) {
	_, err := Parse([]byte("words: [ {id: "))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestSpeakableTexts(t *testing.T) {
	c := newTestCatalog(t)
	assert.Equal(t, []string{"barks", "dog", "the"}, c.SpeakableTexts())
}
