package quiz_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dentalogix/dentalogix-api/internal/procedure"
	"github.com/dentalogix/dentalogix-api/internal/question"
	"github.com/dentalogix/dentalogix-api/internal/quiz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")

	err = db.AutoMigrate(&procedure.Procedure{}, &question.Question{}, &question.Option{}, &quiz.Submission{}, &quiz.SubmissionAnswer{})
	require.NoError(t, err, "migrate test database")
	return db
}

func newSubmission(completedAt time.Time) *quiz.Submission {
	return &quiz.Submission{
		ID:              uuid.New(),
		FirstName:       "Dana",
		Email:           "dana@example.com",
		SmileType:       "glow_seeker",
		SmileTypeName:   "The Glow Seeker",
		Recommendations: []byte(`[{"key":"whitening","score":4}]`),
		Timeline:        "ASAP",
		PrimaryInterest: "whitening",
		CompletedAt:     completedAt,
	}
}

func TestRecord(t *testing.T) {
	t.Run("PersistsSubmissionWithAnswers", func(t *testing.T) {
		db := newTestDB(t)
		repo := quiz.NewRepository(db)

		q := question.Question{ID: uuid.New(), Prompt: "What brings you in?", Category: "goals"}
		require.NoError(t, db.Create(&q).Error)

		sub := newSubmission(time.Now())
		selected, err := json.Marshal([]uuid.UUID{uuid.New()})
		require.NoError(t, err)
		answers := []*quiz.SubmissionAnswer{
			{ID: uuid.New(), QuestionID: q.ID, SelectedOptions: selected},
		}

		require.NoError(t, repo.Record(sub, answers))

		found, err := repo.FindByID(sub.ID)
		require.NoError(t, err)
		require.NotNil(t, found, "submission should exist after Record")
		require.Equal(t, "glow_seeker", found.SmileType)

		details, err := repo.ListAnswers(sub.ID)
		require.NoError(t, err)
		require.Len(t, details, 1)
		require.Equal(t, q.Prompt, details[0].Prompt, "answer should be joined with its question")
		require.Equal(t, sub.ID, details[0].SubmissionID)
	})

	t.Run("RollsBackWhenAnswersFail", func(t *testing.T) {
		db := newTestDB(t)
		repo := quiz.NewRepository(db)

		// Without the answers table the second insert inside the transaction
		// fails; the submission insert must roll back with it.
		require.NoError(t, db.Migrator().DropTable(&quiz.SubmissionAnswer{}))

		sub := newSubmission(time.Now())
		selected, _ := json.Marshal([]uuid.UUID{uuid.New()})
		answers := []*quiz.SubmissionAnswer{
			{ID: uuid.New(), QuestionID: uuid.New(), SelectedOptions: selected},
		}

		require.Error(t, repo.Record(sub, answers))

		count, err := repo.Count()
		require.NoError(t, err)
		require.Zero(t, count, "submission leaked out of the failed transaction")
	})
}

func TestMarkNotified(t *testing.T) {
	db := newTestDB(t)
	repo := quiz.NewRepository(db)

	sub := newSubmission(time.Now())
	require.NoError(t, db.Create(sub).Error)

	require.NoError(t, repo.MarkNotified(sub.ID))

	found, err := repo.FindByID(sub.ID)
	require.NoError(t, err)
	require.True(t, found.NotificationSent)
}

func TestFindByIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := quiz.NewRepository(db)

	found, err := repo.FindByID(uuid.New())
	require.NoError(t, err)
	require.Nil(t, found, "missing submission should be nil, not an error")
}

func TestList(t *testing.T) {
	db := newTestDB(t)
	repo := quiz.NewRepository(db)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		sub := newSubmission(base.Add(time.Duration(i) * time.Hour))
		sub.FirstName = fmt.Sprintf("Visitor %d", i)
		require.NoError(t, db.Create(sub).Error)
	}

	t.Run("NewestFirst", func(t *testing.T) {
		subs, err := repo.List(10, 0)
		require.NoError(t, err)
		require.Len(t, subs, 3)
		require.Equal(t, "Visitor 2", subs[0].FirstName)
		require.Equal(t, "Visitor 0", subs[2].FirstName)
	})

	t.Run("Paging", func(t *testing.T) {
		subs, err := repo.List(1, 1)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		require.Equal(t, "Visitor 1", subs[0].FirstName)
	})

	t.Run("Count", func(t *testing.T) {
		count, err := repo.Count()
		require.NoError(t, err)
		require.EqualValues(t, 3, count)
	})
}
