package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/models"
)

func TestStore_CreateGetDelete(t *testing.T) {
	st := NewStore(nil, common.NewSilentLogger())

	s := st.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, models.PageLanding, s.Controller.Snapshot().Page)
	require.NotNil(t, s.Advisor)
	require.NotNil(t, s.Chat)

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, st.Delete(s.ID))
	_, err = st.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, st.Delete(s.ID), ErrSessionNotFound)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	st := NewStore(nil, common.NewSilentLogger())
	a, b := st.Create(), st.Create()
	require.NotEqual(t, a.ID, b.ID)

	a.Controller.LoginSuccess(models.User{Name: "A"})
	assert.False(t, b.Controller.Snapshot().Authenticated)
}

func TestStore_SweepRemovesIdle(t *testing.T) {
	st := NewStore(nil, common.NewSilentLogger())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	idle := st.Create()
	now = now.Add(30 * time.Minute)
	active := st.Create()

	now = now.Add(45 * time.Minute)
	_, err := st.Get(active.ID)
	require.NoError(t, err)

	removed := st.Sweep(time.Hour)
	assert.Equal(t, 1, removed)

	_, err = st.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(active.ID)
	assert.NoError(t, err)
}
