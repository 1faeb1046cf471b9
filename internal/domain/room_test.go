package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoomName(t *testing.T) {
	cases := map[string]string{
		"Paróquia São José":     "paróquia são josé",
		"  Grupo   de  Jovens ": "grupo de jovens",
		"FAMÍLIA\tSILVA":        "família silva",
		"":                      "",
		"   ":                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeRoomName(in), "input %q", in)
	}
}

func TestNewRoom_Defaults(t *testing.T) {
	now := time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC)

	room := NewRoom("id-1", "  Via Sacra  Noturna ", "hash", "host", now, DefaultRoomTTL)

	assert.Equal(t, "Via Sacra  Noturna", room.Name, "display name keeps inner spacing")
	assert.Equal(t, "via sacra noturna", room.NormalizedName)
	require.NotNil(t, room.ActiveName)
	assert.Equal(t, room.NormalizedName, *room.ActiveName)
	assert.Equal(t, FirstStation, room.CurrentStation)
	assert.True(t, room.Active)
	assert.Zero(t, room.ParticipantCount)
	assert.Equal(t, now.Add(24*time.Hour), room.ExpiresAt)
}

func TestRoom_IsExpired(t *testing.T) {
	now := time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC)
	room := &Room{Active: true, ExpiresAt: now}

	assert.True(t, room.IsExpired(now), "expires_at == now counts as expired")
	assert.False(t, room.IsAvailable(now))
	assert.False(t, room.IsExpired(now.Add(-time.Second)))
	assert.True(t, room.IsAvailable(now.Add(-time.Second)))

	room.Active = false
	assert.False(t, room.IsAvailable(now.Add(-time.Hour)), "inactive room is never available")
}

func TestValidStation(t *testing.T) {
	for _, s := range []int{1, 7, 14} {
		assert.True(t, ValidStation(s), "station %d", s)
	}
	for _, s := range []int{-1, 0, 15, 999} {
		assert.False(t, ValidStation(s), "station %d", s)
	}
}

func TestContentCounts_Empty(t *testing.T) {
	assert.True(t, ContentCounts{}.Empty())
	assert.False(t, ContentCounts{Stations: 14}.Empty())
	assert.False(t, ContentCounts{Intro: 1}.Empty())
}
