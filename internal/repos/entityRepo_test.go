package repos_test

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelibin/light-driver/internal/models"
	"github.com/wheelibin/light-driver/internal/repos"
)

func newRepo(t *testing.T) *repos.EntityRepo {
	t.Helper()
	db, err := repos.OpenMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	repo, err := repos.NewEntityRepo(logger, db)
	require.NoError(t, err)
	return repo
}

func mediaPlayer() models.Entity {
	return models.Entity{
		ID:          "mp",
		Type:        models.EntityTypeMediaPlayer,
		Name:        models.LanguageText{"en": "Player", "de": "Spieler"},
		DeviceClass: models.MediaPlayerDeviceClassStreamingBox,
		Features:    []models.Feature{models.MediaPlayerFeatureOnOff, models.MediaPlayerFeatureDpad},
		Attributes: models.MediaPlayerAttributes{
			State:      models.MediaPlayerStateOn,
			SourceList: []string{"Radio", "Streaming"},
		},
	}
}

func Test_AddAndGet(t *testing.T) {

	t.Run("should read back the entity as it was added", func(t *testing.T) {
		repo := newRepo(t)
		entity := mediaPlayer()

		require.NoError(t, repo.Add(entity))
		record, err := repo.Get("mp")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, entity, record.Entity)
		assert.False(t, record.Configured)
	})

	t.Run("should keep the area of a button", func(t *testing.T) {
		repo := newRepo(t)
		button := models.Entity{
			ID:         "b",
			Type:       models.EntityTypeButton,
			Name:       models.LanguageText{"en": "Button"},
			Features:   []models.Feature{models.ButtonFeaturePress},
			Area:       "test lab",
			Attributes: models.ButtonAttributes{},
		}

		require.NoError(t, repo.Add(button))
		record, err := repo.Get("b")

		require.NoError(t, err)
		assert.Equal(t, button, record.Entity)
	})

	t.Run("should return nil for an unknown id", func(t *testing.T) {
		repo := newRepo(t)

		record, err := repo.Get("nope")

		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("should refuse a duplicate id", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Add(mediaPlayer()))

		err := repo.Add(mediaPlayer())

		assert.ErrorIs(t, err, repos.ErrEntityExists)
	})
}

func Test_SetConfigured(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.Add(mediaPlayer()))

	changed, err := repo.SetConfigured("mp", true)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.SetConfigured("mp", true)
	require.NoError(t, err)
	assert.False(t, changed, "already configured")

	configured, err := repo.List(true)
	require.NoError(t, err)
	assert.Len(t, configured, 1)

	available, err := repo.List(false)
	require.NoError(t, err)
	assert.Empty(t, available)

	changed, err = repo.SetConfigured("unknown", true)
	require.NoError(t, err)
	assert.False(t, changed)
}

func Test_UpdateAttributes(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.Add(mediaPlayer()))

	updated := models.MediaPlayerAttributes{State: models.MediaPlayerStateOff, SourceList: []string{"Radio"}, Volume: 24}
	require.NoError(t, repo.UpdateAttributes("mp", updated))

	record, err := repo.Get("mp")
	require.NoError(t, err)
	assert.Equal(t, updated, record.Entity.Attributes)
}

func Test_List(t *testing.T) {
	repo := newRepo(t)
	for _, id := range []string{"c", "a", "b"} {
		e := mediaPlayer()
		e.ID = id
		require.NoError(t, repo.Add(e))
	}

	entities, err := repo.List(false)

	require.NoError(t, err)
	ids := []string{}
	for _, e := range entities {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}
