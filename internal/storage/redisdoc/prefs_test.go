package redisdoc_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"stayhub/internal/domain"
	"stayhub/internal/storage/redisdoc"
)

func newStore(t *testing.T) (*redisdoc.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = c.Close() })
	return redisdoc.NewFromClient(c), mr
}

func TestPrefs_SaveAndFind(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	in := domain.GuestPreferences{
		GuestID:                    "G1",
		PrefersSmokingRoom:         true,
		BedTypePreference:          "king",
		NeedsAccessibilityFeatures: false,
	}
	saved, err := store.Save(ctx, in)
	require.NoError(t, err)
	require.Equal(t, in, saved)

	// documents live under a stable key with no TTL
	require.True(t, mr.Exists("guest_prefs:G1"))
	require.Zero(t, mr.TTL("guest_prefs:G1"))

	got, err := store.FindByGuestID(ctx, "G1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, in, *got)
}

func TestPrefs_FindMissing(t *testing.T) {
	store, _ := newStore(t)

	got, err := store.FindByGuestID(context.Background(), "G9")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPrefs_SaveOverwrites(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, domain.GuestPreferences{GuestID: "G1", BedTypePreference: "twin"})
	require.NoError(t, err)
	_, err = store.Save(ctx, domain.GuestPreferences{GuestID: "G1", BedTypePreference: "queen"})
	require.NoError(t, err)

	got, err := store.FindByGuestID(ctx, "G1")
	require.NoError(t, err)
	require.Equal(t, "queen", got.BedTypePreference)
}

func TestPrefs_FindByGuestIDs(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, domain.GuestPreferences{GuestID: "G1", PrefersSmokingRoom: true})
	require.NoError(t, err)
	_, err = store.Save(ctx, domain.GuestPreferences{GuestID: "G3", BedTypePreference: "king"})
	require.NoError(t, err)

	byID, err := store.FindByGuestIDs(ctx, []string{"G1", "G2", "G3"})
	require.NoError(t, err)
	require.Len(t, byID, 2)
	require.True(t, byID["G1"].PrefersSmokingRoom)
	require.Equal(t, "king", byID["G3"].BedTypePreference)
	_, ok := byID["G2"]
	require.False(t, ok)

	empty, err := store.FindByGuestIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestPrefs_Delete(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, domain.GuestPreferences{GuestID: "G1"})
	require.NoError(t, err)

	ok, err := store.DeleteByGuestID(ctx, "G1")
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, mr.Exists("guest_prefs:G1"))

	ok, err = store.DeleteByGuestID(ctx, "G1")
	require.NoError(t, err)
	require.False(t, ok)
}
