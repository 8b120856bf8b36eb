package testimonial_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dentalogix/dentalogix-api/internal/procedure"
	"github.com/dentalogix/dentalogix-api/internal/testimonial"
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

	err = db.AutoMigrate(&procedure.Procedure{}, &testimonial.Testimonial{})
	require.NoError(t, err, "migrate test database")
	return db
}

func newTestimonial(name string, createdAt time.Time) *testimonial.Testimonial {
	return &testimonial.Testimonial{
		ID:          uuid.New(),
		PatientName: name,
		Content:     "Wonderful experience.",
		Rating:      5,
		IsPublished: true,
		CreatedAt:   createdAt,
	}
}

func TestListPublished(t *testing.T) {
	db := newTestDB(t)
	repo := testimonial.NewRepository(db)

	proc := procedure.Procedure{ID: uuid.New(), Key: "whitening", Name: "Teeth Whitening", IsActive: true}
	require.NoError(t, db.Create(&proc).Error)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	older := newTestimonial("Dana", base)
	older.ProcedureID = &proc.ID
	require.NoError(t, repo.Create(older))

	newer := newTestimonial("Miguel", base.Add(time.Hour))
	require.NoError(t, repo.Create(newer))

	hidden := newTestimonial("Quinn", base.Add(2*time.Hour))
	hidden.IsPublished = false
	require.NoError(t, repo.Create(hidden))

	views, err := repo.ListPublished()
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.Equal(t, "Miguel", views[0].PatientName, "newest first")
	require.Empty(t, views[0].ProcedureName, "no linked procedure")
	require.Equal(t, "Dana", views[1].PatientName)
	require.Equal(t, "Teeth Whitening", views[1].ProcedureName)
}

func TestListFeatured(t *testing.T) {
	db := newTestDB(t)
	repo := testimonial.NewRepository(db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	featured := newTestimonial("Dana", base)
	featured.Featured = true
	require.NoError(t, repo.Create(featured))

	plain := newTestimonial("Miguel", base.Add(time.Hour))
	require.NoError(t, repo.Create(plain))

	hiddenFeatured := newTestimonial("Quinn", base.Add(2*time.Hour))
	hiddenFeatured.Featured = true
	hiddenFeatured.IsPublished = false
	require.NoError(t, repo.Create(hiddenFeatured))

	views, err := repo.ListFeatured()
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "Dana", views[0].PatientName)
}

func TestListIncludesUnpublished(t *testing.T) {
	db := newTestDB(t)
	repo := testimonial.NewRepository(db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	hidden := newTestimonial("Quinn", base)
	hidden.IsPublished = false
	require.NoError(t, repo.Create(hidden))

	views, err := repo.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
}
