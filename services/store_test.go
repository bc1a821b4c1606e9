package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"technomech-api/models"
)

// The conformance suite runs against the SubmissionStore interface, not a
// concrete backing medium.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) SubmissionStore) {
	fields := func(email string) models.SubmissionFields {
		return models.SubmissionFields{
			Name:    "Asha Rao",
			Email:   email,
			Phone:   "+91 9876543210",
			Subject: "Quote",
			Message: "Need 500 units",
		}
	}

	t.Run("empty list is not an error", func(t *testing.T) {
		store := newStore(t)
		subs, err := store.List()
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("create assigns id, createdAt and status new", func(t *testing.T) {
		store := newStore(t)
		before := time.Now()
		sub, err := store.Create(fields("asha.rao@gmail.com"))
		require.NoError(t, err)

		assert.NotEmpty(t, sub.ID)
		assert.Equal(t, models.StatusNew, sub.Status)
		assert.False(t, sub.CreatedAt.Before(before.Add(-time.Second)))
		assert.False(t, sub.CreatedAt.After(time.Now().Add(time.Second)))
	})

	t.Run("identifiers are unique", func(t *testing.T) {
		store := newStore(t)
		a, err := store.Create(fields("a@gmail.com"))
		require.NoError(t, err)
		b, err := store.Create(fields("b@gmail.com"))
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("update applies partial fields and keeps createdAt", func(t *testing.T) {
		store := newStore(t)
		sub, err := store.Create(fields("a@gmail.com"))
		require.NoError(t, err)

		status := models.StatusContacted
		name := "Asha R."
		updated, err := store.Update(sub.ID, models.SubmissionUpdate{Status: &status, Name: &name})
		require.NoError(t, err)

		assert.Equal(t, models.StatusContacted, updated.Status)
		assert.Equal(t, "Asha R.", updated.Name)
		assert.Equal(t, sub.Email, updated.Email)
		assert.Equal(t, sub.ID, updated.ID)
		assert.WithinDuration(t, sub.CreatedAt, updated.CreatedAt, time.Second)
	})

	t.Run("update of unknown id reports not found", func(t *testing.T) {
		store := newStore(t)
		status := models.StatusPending
		_, err := store.Update("no-such-id", models.SubmissionUpdate{Status: &status})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := newStore(t)
		sub, err := store.Create(fields("a@gmail.com"))
		require.NoError(t, err)

		require.NoError(t, store.Delete(sub.ID))
		require.NoError(t, store.Delete(sub.ID))

		subs, err := store.List()
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("bulk delete removes only the intersection", func(t *testing.T) {
		store := newStore(t)
		a, err := store.Create(fields("a@gmail.com"))
		require.NoError(t, err)
		b, err := store.Create(fields("b@gmail.com"))
		require.NoError(t, err)
		c, err := store.Create(fields("c@gmail.com"))
		require.NoError(t, err)

		require.NoError(t, store.DeleteMany([]string{a.ID, c.ID, "no-such-id"}))

		subs, err := store.List()
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, b.ID, subs[0].ID)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) SubmissionStore {
		return NewMemoryStore()
	})
}

func TestFileStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) SubmissionStore {
		store, err := NewFileStore(filepath.Join(t.TempDir(), "submissions.json"))
		require.NoError(t, err)
		return store
	})
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	created, err := store.Create(models.SubmissionFields{
		Name:    "Asha Rao",
		Email:   "asha.rao@gmail.com",
		Phone:   "+91 9876543210",
		Subject: "Quote",
		Message: "Need 500 units",
	})
	require.NoError(t, err)

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	subs, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, created.ID, subs[0].ID)
	assert.Equal(t, "+91 9876543210", subs[0].Phone)
}

func TestFileStoreListNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	old := models.Submission{
		ID: "old", Name: "Old", Email: "old@gmail.com", Phone: "+91 1111111111",
		Subject: "s", Message: "m", Status: models.StatusNew,
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	recent := models.Submission{
		ID: "recent", Name: "Recent", Email: "recent@gmail.com", Phone: "+91 2222222222",
		Subject: "s", Message: "m", Status: models.StatusNew,
		CreatedAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, store.save([]models.Submission{old, recent}))

	subs, err := store.List()
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "recent", subs[0].ID)
	assert.Equal(t, "old", subs[1].ID)
}
