package settings_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/settings"
	"github.com/alexanderramin/pulse/internal/testutil"
)

func TestStore_Defaults(t *testing.T) {
	kv := repository.NewSQLiteKVStore(testutil.NewTestDB(t))
	store := settings.NewStore(kv)
	require.NoError(t, store.Load(context.Background()))

	got := store.Get()
	assert.False(t, got.AIEnabled)
	assert.Equal(t, settings.DefaultCacheTTL, got.CacheTTL)
}

func TestStore_SetPersistsAcrossLoad(t *testing.T) {
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVStore(database)
	ctx := context.Background()

	store := settings.NewStore(kv)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Set(ctx, settings.Settings{AIEnabled: true, CacheTTL: time.Minute}))

	fresh := settings.NewStore(kv)
	require.NoError(t, fresh.Load(ctx))
	got := fresh.Get()
	assert.True(t, got.AIEnabled)
	assert.Equal(t, time.Minute, got.CacheTTL)
}

func TestStore_SetDefaults_PersistedValueStillWins(t *testing.T) {
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVStore(database)
	ctx := context.Background()

	seeded := settings.NewStore(kv)
	seeded.SetDefaults(settings.Settings{AIEnabled: true})
	require.NoError(t, seeded.Load(ctx))
	got := seeded.Get()
	assert.True(t, got.AIEnabled)
	assert.Equal(t, settings.DefaultCacheTTL, got.CacheTTL)

	require.NoError(t, seeded.Set(ctx, settings.Settings{AIEnabled: false, CacheTTL: time.Minute}))

	fresh := settings.NewStore(kv)
	fresh.SetDefaults(settings.Settings{AIEnabled: true})
	require.NoError(t, fresh.Load(ctx))
	assert.False(t, fresh.Get().AIEnabled)
}

func TestStore_SetNotifiesSubscribers(t *testing.T) {
	kv := repository.NewSQLiteKVStore(testutil.NewTestDB(t))
	store := settings.NewStore(kv)

	var seen []settings.Settings
	store.Subscribe(func(s settings.Settings) { seen = append(seen, s) })

	require.NoError(t, store.Set(context.Background(), settings.Settings{AIEnabled: true, CacheTTL: time.Minute}))
	require.Len(t, seen, 1)
	assert.True(t, seen[0].AIEnabled)
}

func TestStore_ZeroTTLFallsBackToDefault(t *testing.T) {
	kv := repository.NewSQLiteKVStore(testutil.NewTestDB(t))
	store := settings.NewStore(kv)

	require.NoError(t, store.Set(context.Background(), settings.Settings{AIEnabled: false}))
	assert.Equal(t, settings.DefaultCacheTTL, store.Get().CacheTTL)
}
