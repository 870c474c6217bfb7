package repository_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lernapp/backend/internal/domain/progress"
	"github.com/lernapp/backend/internal/repository"
	"github.com/lernapp/backend/internal/store"
)

var testLogger = slog.New(slog.DiscardHandler)

func newRepo(t *testing.T, s *store.MemoryStore, seed progress.Map, defaultPoints int) *repository.ProgressRepository {
	t.Helper()
	return repository.NewProgress(s, seed, progress.Settings{DefaultPoints: defaultPoints}, repository.RenameReject, testLogger)
}

func storedMap(t *testing.T, s *store.MemoryStore) progress.Map {
	t.Helper()

	raw, err := s.Get(repository.ProgressKey)
	require.NoError(t, err)

	var m progress.Map
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestNewProgress_MergesLocalOverSeed(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(repository.ProgressKey, `{"Ben":{"points":5}}`))

	seed := progress.Map{"Ben": {Points: 0}, "Cara": {Points: 2}}
	repo := newRepo(t, s, seed, 0)

	ben, err := repo.Get("Ben")
	require.NoError(t, err)
	assert.Equal(t, 5, ben.Points)

	cara, err := repo.Get("Cara")
	require.NoError(t, err)
	assert.Equal(t, 2, cara.Points)
}

func TestNewProgress_MalformedLocalTreatedAsEmpty(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(repository.ProgressKey, "{{{ not json"))

	repo := newRepo(t, s, progress.Map{"Ana": {Points: 4}}, 0)

	ana, err := repo.Get("Ana")
	require.NoError(t, err)
	assert.Equal(t, 4, ana.Points)
}

func TestEnsureUser(t *testing.T) {
	s := store.NewMemory()
	repo := newRepo(t, s, progress.Map{}, 3)

	record, err := repo.EnsureUser("Ana")
	require.NoError(t, err)
	assert.Equal(t, 3, record.Points)

	// Creation is written through immediately.
	assert.Equal(t, 3, storedMap(t, s)["Ana"].Points)

	// A second call returns the existing record unchanged.
	again, err := repo.EnsureUser("Ana")
	require.NoError(t, err)
	assert.Equal(t, record, again)
}

func TestEnsureUser_EmptyName(t *testing.T) {
	repo := newRepo(t, store.NewMemory(), progress.Map{}, 0)

	_, err := repo.EnsureUser("")
	assert.ErrorIs(t, err, repository.ErrInvalidName)
}

func TestAward(t *testing.T) {
	s := store.NewMemory()
	repo := newRepo(t, s, progress.Map{"Ana": {Points: 1}}, 0)

	record, err := repo.Award("Ana", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, record.Points)

	record, err = repo.Award("Ana", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, record.Points)

	assert.Equal(t, 3, storedMap(t, s)["Ana"].Points)
}

func TestAward_UnknownUser(t *testing.T) {
	repo := newRepo(t, store.NewMemory(), progress.Map{}, 0)

	_, err := repo.Award("Niemand", 1)
	assert.ErrorIs(t, err, repository.ErrUnknownUser)
}

func TestAward_NeverBelowZero(t *testing.T) {
	repo := newRepo(t, store.NewMemory(), progress.Map{"Ana": {Points: 1}}, 0)

	record, err := repo.Award("Ana", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, record.Points)
}

func TestAward_SurvivesPersistFailure(t *testing.T) {
	s := store.NewMemory()
	repo := newRepo(t, s, progress.Map{"Ana": {Points: 0}}, 0)

	s.SetErr = errors.New("quota exceeded")

	_, err := repo.Award("Ana", 1)
	require.NoError(t, err)
	record, err := repo.Award("Ana", 1)
	require.NoError(t, err)

	// Both awards land in memory even though neither write went through.
	assert.Equal(t, 2, record.Points)
}

func TestRename_MovesRecord(t *testing.T) {
	s := store.NewMemory()
	repo := newRepo(t, s, progress.Map{"Ana": {Points: 7}}, 0)

	record, err := repo.Rename("Ana", "Anna")
	require.NoError(t, err)
	assert.Equal(t, 7, record.Points)

	_, err = repo.Get("Ana")
	assert.ErrorIs(t, err, repository.ErrUnknownUser)

	stored := storedMap(t, s)
	assert.Equal(t, 7, stored["Anna"].Points)
	_, stillThere := stored["Ana"]
	assert.False(t, stillThere, "old key must be freed in the store too")
}

func TestRename_SameNameIsNoOp(t *testing.T) {
	repo := newRepo(t, store.NewMemory(), progress.Map{"Ana": {Points: 2}}, 0)

	record, err := repo.Rename("Ana", "Ana")
	require.NoError(t, err)
	assert.Equal(t, 2, record.Points)
}

func TestRename_Invalid(t *testing.T) {
	repo := newRepo(t, store.NewMemory(), progress.Map{"Ana": {Points: 2}}, 0)

	_, err := repo.Rename("Ana", "")
	assert.ErrorIs(t, err, repository.ErrInvalidName)

	_, err = repo.Rename("Niemand", "Wer")
	assert.ErrorIs(t, err, repository.ErrUnknownUser)
}

func TestRename_CollisionRejected(t *testing.T) {
	repo := newRepo(t, store.NewMemory(), progress.Map{"Ana": {Points: 2}, "Ben": {Points: 9}}, 0)

	_, err := repo.Rename("Ana", "Ben")
	assert.ErrorIs(t, err, repository.ErrNameTaken)

	// Nothing changed.
	ben, err := repo.Get("Ben")
	require.NoError(t, err)
	assert.Equal(t, 9, ben.Points)
	ana, err := repo.Get("Ana")
	require.NoError(t, err)
	assert.Equal(t, 2, ana.Points)
}

func TestRename_CollisionOverwritePolicy(t *testing.T) {
	s := store.NewMemory()
	repo := repository.NewProgress(
		s,
		progress.Map{"Ana": {Points: 2}, "Ben": {Points: 9}},
		progress.Settings{},
		repository.RenameOverwrite,
		testLogger,
	)

	record, err := repo.Rename("Ana", "Ben")
	require.NoError(t, err)
	assert.Equal(t, 2, record.Points, "renamed record wins over the previous holder")

	ben, err := repo.Get("Ben")
	require.NoError(t, err)
	assert.Equal(t, 2, ben.Points)

	_, err = repo.Get("Ana")
	assert.ErrorIs(t, err, repository.ErrUnknownUser)
}

func TestSnapshot_Independent(t *testing.T) {
	repo := newRepo(t, store.NewMemory(), progress.Map{"Ana": {Points: 2}}, 0)

	snap := repo.Snapshot()
	snap["Ana"] = progress.UserProgress{Points: 99}

	ana, err := repo.Get("Ana")
	require.NoError(t, err)
	assert.Equal(t, 2, ana.Points)
}
