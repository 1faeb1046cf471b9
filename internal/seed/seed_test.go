package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"via-sacra/internal/service"
)

func TestDefault_IsValid(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	require.NoError(t, service.ValidateSeed(data))
	assert.NotEmpty(t, data.Intro.Title)
	require.Len(t, data.Stations, 14)
	for i, st := range data.Stations {
		assert.Equal(t, i+1, st.ID, "stations are stored in order")
		assert.NotEmpty(t, st.Title)
		assert.NotEmpty(t, st.Meditation)
	}
	assert.NotEmpty(t, data.FinalPrayers)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"intro":{"title":"T","text":"x"},"stations":[],"final_prayers":[]}`), 0o600))

	data, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "T", data.Intro.Title)
	assert.Empty(t, data.Stations)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParse_MissingKeysFailValidation(t *testing.T) {
	data, err := Parse([]byte(`{"stations":[]}`))
	require.NoError(t, err)
	assert.ErrorIs(t, service.ValidateSeed(data), service.ErrInvalidSeed)
}
