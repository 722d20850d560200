package snapshots

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hobfurniture/orderdesk-backend/pkg/db/models"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
)

func setupSnapshotDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:snapshottest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Snapshot{}))
	require.NoError(t, db.Exec("DELETE FROM snapshots").Error)
	return db
}

func setupStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db := setupSnapshotDB(t)
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store, err := NewStore(NewGormRepository(db), logg)
	require.NoError(t, err)
	return store, db
}

type fixture struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	require.NoError(t, store.Save(ctx, KeyCustomer, fixture{Name: "Arthur", Count: 2}))

	var loaded fixture
	require.True(t, store.Load(ctx, KeyCustomer, &loaded))
	assert.Equal(t, "Arthur", loaded.Name)
	assert.Equal(t, 2, loaded.Count)
}

func TestStoreLoadMissingKeyKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	loaded := fixture{Name: "default"}
	assert.False(t, store.Load(ctx, KeyOrder, &loaded))
	assert.Equal(t, "default", loaded.Name, "dest must stay untouched on a miss")
}

func TestStoreLoadCorruptPayloadKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	store, db := setupStore(t)

	record := models.Snapshot{Key: KeyGallery, Payload: []byte("{not json")}
	require.NoError(t, db.Create(&record).Error)

	loaded := fixture{Name: "default"}
	assert.False(t, store.Load(ctx, KeyGallery, &loaded))
	assert.Equal(t, "default", loaded.Name)
}

func TestStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store, db := setupStore(t)

	require.NoError(t, store.Save(ctx, KeyCompanyInfo, fixture{Name: "first"}))
	require.NoError(t, store.Save(ctx, KeyCompanyInfo, fixture{Name: "second"}))

	var count int64
	require.NoError(t, db.Model(&models.Snapshot{}).Where("key = ?", KeyCompanyInfo).Count(&count).Error)
	assert.Equal(t, int64(1), count, "writes upsert a single row per key")

	var loaded fixture
	require.True(t, store.Load(ctx, KeyCompanyInfo, &loaded))
	assert.Equal(t, "second", loaded.Name)
}

func TestStoreBackendName(t *testing.T) {
	store, _ := setupStore(t)
	assert.Equal(t, "sqlite", store.Backend())
}

func TestKeysCoverEveryRecord(t *testing.T) {
	assert.Equal(t, []string{KeyCompanyInfo, KeyCustomer, KeyOrder, KeyGallery}, Keys)
}
