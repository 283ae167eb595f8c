package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/profile"
)

type fakeUpserter struct {
	saved []string
	err   error
}

func (f *fakeUpserter) UpsertPlayer(_ context.Context, state *domain.PlayerState) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, state.Name)
	return nil
}

func writeProfile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestPlayersFromProfiles(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "main.yaml", `
player:
  name: Zezima
  skills: {farming: 99, magic: 94}
`)
	writeProfile(t, dir, "offline.yaml", `
options:
  patches: [catherby]
`)

	players, err := playersFromProfiles(profile.NewLoader(dir))
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Zezima", players[0].Name)
	assert.Equal(t, 94, players[0].Skills[domain.SkillMagic])
}

func TestPlayersFromProfiles_MissingDir(t *testing.T) {
	_, err := playersFromProfiles(profile.NewLoader(filepath.Join(t.TempDir(), "nope")))
	assert.Error(t, err)
}

func TestSeedPlayers(t *testing.T) {
	captureOutput(t)
	good := domain.NewPlayerState("zezima")
	good.Skills[domain.SkillFarming] = 99

	repo := &fakeUpserter{}
	n, err := seedPlayers(context.Background(), repo, []*domain.PlayerState{good})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"zezima"}, repo.saved)

	bad := domain.NewPlayerState("woody")
	bad.Skills["woodcutting"] = 50
	n, err = seedPlayers(context.Background(), repo, []*domain.PlayerState{good, bad})
	assert.ErrorIs(t, err, domain.ErrUnknownSkill)
	assert.Equal(t, 1, n)

	repo = &fakeUpserter{err: errors.New("db down")}
	_, err = seedPlayers(context.Background(), repo, []*domain.PlayerState{good})
	assert.ErrorContains(t, err, "db down")
}
