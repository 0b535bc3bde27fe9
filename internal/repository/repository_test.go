package repository

import (
	"context"
	"motorkeys_backend/internal/model"
	"motorkeys_backend/internal/testutil"
	"motorkeys_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func TestLearnerRepository(t *testing.T) {
	repo := NewLearnerRepository(testutil.NewDB(t))

	learner := &model.Learner{Name: "Ada"}
	require.NoError(t, repo.Create(learner))
	require.NotEmpty(t, learner.ID)

	learner.Motor.CommonLetterErrors = map[string]int{"a": 2}
	learner.Motor.WordsCompleted = 1
	require.NoError(t, repo.SaveMotor(learner))

	found, err := repo.FindByID(learner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Name)
	assert.Equal(t, map[string]int{"a": 2}, found.Motor.CommonLetterErrors)
	assert.Equal(t, 1, found.Motor.WordsCompleted)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)
}

// lockingOf 记录每次查询 learners 表时是否带有 FOR UPDATE 子句
func lockingOf(t *testing.T, db *gorm.DB) *[]bool {
	t.Helper()
	var locked []bool
	err := db.Callback().Query().After("gorm:query").Register("test:learner_locking", func(tx *gorm.DB) {
		if tx.Statement.Table != "learners" {
			return
		}
		c, ok := tx.Statement.Clauses["FOR"]
		l, isLocking := c.Expression.(clause.Locking)
		locked = append(locked, ok && isLocking && l.Strength == "UPDATE")
	})
	require.NoError(t, err)
	return &locked
}

func TestLearnerRepositoryFindByIDForUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	locked := lockingOf(t, db)
	repo := NewLearnerRepository(db)

	learner := &model.Learner{Name: "Cy"}
	require.NoError(t, repo.Create(learner))

	_, err := repo.FindByID(learner.ID)
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		found, err := repo.WithTx(tx).FindByIDForUpdate(learner.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, "Cy", found.Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, *locked)

	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := repo.WithTx(tx).FindByIDForUpdate("missing")
		return err
	})
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)
}

func TestAttemptRecentRepository(t *testing.T) {
	learners := NewLearnerRepository(testutil.NewDB(t))
	learner := &model.Learner{Name: "Bo"}
	require.NoError(t, learners.Create(learner))

	for _, w := range []string{"cat", "dog", "cat", "sun"} {
		require.NoError(t, learners.CreateAttempt(&model.WordAttempt{LearnerID: learner.ID, WordID: w, LetterCount: 3}))
	}

	recent := NewAttemptRecentRepository(learners, 2)
	require.NoError(t, recent.Push(context.Background(), learner.ID, "sun"))

	items, err := recent.List(context.Background(), learner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"sun", "cat"}, items)
}

func TestUGCRepository(t *testing.T) {
	repo := NewUGCRepository(testutil.NewDB(t))

	w := &model.UGCWord{Word: "zorp", Syllables: []string{"zorp"}, Segments: []string{"z", "orp"}, Active: true, CreatedAtMs: 1}
	require.NoError(t, repo.Upsert(w))

	// 覆盖写入
	w2 := &model.UGCWord{Word: "zorp", Syllables: []string{"zorp"}, Segments: []string{"zo", "rp"}, Active: true, CreatedAtMs: 2}
	require.NoError(t, repo.Upsert(w2))

	found, err := repo.FindByWord("zorp")
	require.NoError(t, err)
	assert.Equal(t, []string{"zo", "rp"}, found.Segments)

	require.NoError(t, repo.Upsert(&model.UGCWord{Word: "blip", Syllables: []string{"blip"}, Segments: []string{"bl", "ip"}, CreatedAtMs: 3}))

	all, err := repo.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	active, err := repo.List(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "zorp", active[0].Word)

	require.NoError(t, repo.SetActive("zorp", false))
	active, _ = repo.List(true)
	assert.Empty(t, active)

	assert.ErrorIs(t, repo.SetActive("nope", true), util.ErrUGCWordNotFound)
	require.NoError(t, repo.Delete("zorp"))
	assert.ErrorIs(t, repo.Delete("zorp"), util.ErrUGCWordNotFound)
	_, err = repo.FindByWord("zorp")
	assert.ErrorIs(t, err, util.ErrUGCWordNotFound)
}

func TestSignRepository(t *testing.T) {
	repo := NewSignRepository(testutil.NewDB(t))

	require.NoError(t, repo.Upsert(&model.SignRecording{Word: "dog", Status: util.SignStatusApproved, LoopPath: "/public/signs/dog/sign_loop.mp4"}))
	require.NoError(t, repo.UpdateStatus("dog", util.SignStatusPending))

	s, err := repo.FindByWord("dog")
	require.NoError(t, err)
	assert.Equal(t, util.SignStatusPending, s.Status)

	assert.ErrorIs(t, repo.UpdateStatus("cat", util.SignStatusPending), util.ErrSignNotFound)

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
