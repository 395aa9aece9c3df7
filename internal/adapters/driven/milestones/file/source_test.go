package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
)

func writeMilestones(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestSource_Milestones(t *testing.T) {
	path := filepath.Join(t.TempDir(), "milestones.json")
	writeMilestones(t, path, `[
		{"id": "m-surgery", "date": "2021-03-15", "color": "purple", "description": "Surgery"},
		{"id": "m-first", "date": "2021-01-02", "color": "#EF4444", "description": "First visit"}
	]`)

	source := NewSource(path)
	milestones, err := source.Milestones(context.Background())
	require.NoError(t, err)
	require.Len(t, milestones, 2)

	// Sorted by date.
	assert.Equal(t, "m-first", milestones[0].ID)
	assert.Equal(t, palette.Red, milestones[0].Color)
	assert.Equal(t, "m-surgery", milestones[1].ID)
	assert.Equal(t, palette.Purple, milestones[1].Color)
	assert.Equal(t, "Surgery", milestones[1].Description)
}

func TestSource_Milestones_MissingFile(t *testing.T) {
	source := NewSource(filepath.Join(t.TempDir(), "absent.json"))

	milestones, err := source.Milestones(context.Background())
	require.NoError(t, err)
	assert.Empty(t, milestones)
}

func TestSource_Milestones_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "milestones.json")
	writeMilestones(t, path, `{"not": "an array"`)

	source := NewSource(path)
	_, err := source.Milestones(context.Background())
	assert.ErrorIs(t, err, domain.ErrMilestonesUnavailable)
}

func TestSource_Milestones_GeneratesMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "milestones.json")
	writeMilestones(t, path, `[
		{"date": "2021-05-01", "description": "Discharge"}
	]`)

	source := NewSource(path)
	milestones, err := source.Milestones(context.Background())
	require.NoError(t, err)
	require.Len(t, milestones, 1)
	assert.NotEmpty(t, milestones[0].ID)
	assert.Equal(t, palette.Neutral, milestones[0].Color)
}

func TestSource_Milestones_SkipsBadDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "milestones.json")
	writeMilestones(t, path, `[
		{"id": "good", "date": "2021-05-01", "description": "kept"},
		{"id": "bad", "date": "yesterday", "description": "dropped"}
	]`)

	source := NewSource(path)
	milestones, err := source.Milestones(context.Background())
	require.NoError(t, err)
	require.Len(t, milestones, 1)
	assert.Equal(t, "good", milestones[0].ID)
}

func TestSource_Milestones_CachesUntilFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "milestones.json")
	writeMilestones(t, path, `[{"id": "m1", "date": "2021-01-01", "description": "one"}]`)

	source := NewSource(path)
	ctx := context.Background()

	first, err := source.Milestones(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	again, err := source.Milestones(ctx)
	require.NoError(t, err)
	require.Len(t, again, 1)

	// A rewrite with a newer modification time invalidates the cache.
	writeMilestones(t, path, `[
		{"id": "m1", "date": "2021-01-01", "description": "one"},
		{"id": "m2", "date": "2021-02-01", "description": "two"}
	]`)
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	updated, err := source.Milestones(ctx)
	require.NoError(t, err)
	assert.Len(t, updated, 2)
}

func TestSource_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "milestones.json")
	writeMilestones(t, path, `[{"id": "m1", "date": "2021-01-01", "description": "one"}]`)

	source := NewSource(path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := source.Watch(ctx)
	require.NoError(t, err)

	// Give the watcher a moment to register.
	time.Sleep(100 * time.Millisecond)

	writeMilestones(t, path, `[
		{"id": "m1", "date": "2021-01-01", "description": "one"},
		{"id": "m2", "date": "2021-02-01", "description": "two"}
	]`)

	select {
	case milestones := <-updates:
		assert.Len(t, milestones, 2)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for milestone reload")
	}
}

func TestSource_Watch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "milestones.json")
	writeMilestones(t, path, `[]`)

	source := NewSource(path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := source.Watch(ctx)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	writeMilestones(t, filepath.Join(dir, "notes.txt"), "unrelated")

	select {
	case <-updates:
		t.Fatal("unrelated file change should not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestSource_Watch_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "milestones.json")
	writeMilestones(t, path, `[]`)

	source := NewSource(path)
	ctx, cancel := context.WithCancel(context.Background())

	updates, err := source.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-updates:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
