package procedure_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dentalogix/dentalogix-api/internal/procedure"
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

	err = db.AutoMigrate(&procedure.Procedure{})
	require.NoError(t, err, "migrate test database")
	return db
}

func TestListFeatured(t *testing.T) {
	db := newTestDB(t)
	svc := procedure.NewService(procedure.NewRepository(db))

	seed := []procedure.Procedure{
		{ID: uuid.New(), Key: "whitening", Name: "Teeth Whitening", Featured: true, IsActive: true, SortOrder: 2},
		{ID: uuid.New(), Key: "veneers", Name: "Veneers", Featured: true, IsActive: true, SortOrder: 1},
		{ID: uuid.New(), Key: "implants", Name: "Implants", Featured: true, IsActive: false, SortOrder: 3},
		{ID: uuid.New(), Key: "preventive", Name: "Preventive Care", IsActive: true},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	featured, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)

	require.Len(t, featured, 2, "inactive and non-featured procedures excluded")
	require.Equal(t, "veneers", featured[0].Key, "ordered by sort_order")
	require.Equal(t, "whitening", featured[1].Key)
}
