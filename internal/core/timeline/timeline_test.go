package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func TestProject_Empty(t *testing.T) {
	projection := Project(nil, nil, Options{})

	assert.True(t, projection.Empty())
	assert.Nil(t, projection.Points)
	assert.Nil(t, projection.CurrentPosition)
}

func TestProject_SingleDateDegenerate(t *testing.T) {
	entries := []Entry{
		{ID: "doc-1", Date: date("2021-03-15"), Colors: []palette.ColorID{palette.Red}},
	}

	projection := Project(entries, nil, Options{CurrentDate: datePtr("2021-03-15")})

	require.Len(t, projection.Points, 1)
	assert.Equal(t, 0.0, projection.Points[0].Position)
	require.NotNil(t, projection.CurrentPosition)
	assert.Equal(t, 0.0, *projection.CurrentPosition)
}

func TestProject_LinearPositions(t *testing.T) {
	entries := []Entry{
		{ID: "doc-1", Date: date("2021-01-01")},
		{ID: "doc-2", Date: date("2021-01-06")},
		{ID: "doc-3", Date: date("2021-01-11")},
	}

	projection := Project(entries, nil, Options{})

	require.Len(t, projection.Points, 3)
	assert.Equal(t, 0.0, projection.Points[0].Position)
	assert.Equal(t, 50.0, projection.Points[1].Position)
	assert.Equal(t, 100.0, projection.Points[2].Position)
}

func TestProject_Monotonicity(t *testing.T) {
	entries := []Entry{
		{ID: "d", Date: date("2020-06-30")},
		{ID: "a", Date: date("2019-01-01")},
		{ID: "c", Date: date("2020-02-29")},
		{ID: "b", Date: date("2019-11-11")},
	}

	projection := Project(entries, nil, Options{})

	require.Len(t, projection.Points, 4)
	for i := 1; i < len(projection.Points); i++ {
		prev, curr := projection.Points[i-1], projection.Points[i]
		assert.True(t, prev.Date.Before(curr.Date))
		assert.LessOrEqual(t, prev.Position, curr.Position)
	}
	assert.Equal(t, 0.0, projection.Points[0].Position)
	assert.Equal(t, 100.0, projection.Points[3].Position)
}

func TestProject_SameDayColoursGrouped(t *testing.T) {
	entries := []Entry{
		{ID: "doc-1", Date: date("2021-05-01"), Colors: []palette.ColorID{palette.Red, palette.Blue}},
		{ID: "doc-2", Date: date("2021-05-01"), Colors: []palette.ColorID{palette.Blue, palette.Green}},
		{ID: "doc-3", Date: date("2021-06-01"), Colors: []palette.ColorID{palette.Red}},
	}

	projection := Project(entries, nil, Options{})

	require.Len(t, projection.Points, 2)
	first := projection.Points[0]
	assert.Equal(t, []palette.ColorID{palette.Red, palette.Blue, palette.Green}, first.Colors)

	// First document encountered wins the representative slot.
	assert.Equal(t, "doc-1", first.SourceIDs[palette.Red])
	assert.Equal(t, "doc-1", first.SourceIDs[palette.Blue])
	assert.Equal(t, "doc-2", first.SourceIDs[palette.Green])
}

func TestProject_Milestones(t *testing.T) {
	entries := []Entry{
		{ID: "doc-1", Date: date("2021-01-01")},
		{ID: "doc-2", Date: date("2021-01-21")},
	}
	milestones := []domain.Milestone{
		{ID: "m-late", Date: date("2021-01-21"), Color: palette.Purple, Description: "surgery"},
		{ID: "m-mid", Date: date("2021-01-11"), Color: palette.Orange, Description: "referral"},
	}

	projection := Project(entries, milestones, Options{})

	require.Len(t, projection.Milestones, 2)
	assert.Equal(t, "m-mid", projection.Milestones[0].ID)
	assert.Equal(t, 50.0, projection.Milestones[0].Position)
	assert.Equal(t, "m-late", projection.Milestones[1].ID)
	assert.Equal(t, 100.0, projection.Milestones[1].Position)
	assert.True(t, projection.Milestones[0].IsActive)
	assert.True(t, projection.Milestones[1].IsActive)
}

func TestProject_MilestoneActiveFilter(t *testing.T) {
	milestones := []domain.Milestone{
		{ID: "m-1", Date: date("2021-01-01"), Color: palette.Purple},
		{ID: "m-2", Date: date("2021-01-02"), Color: palette.Orange},
	}
	opts := Options{
		ActiveColors: map[palette.ColorID]struct{}{palette.Orange: {}},
	}

	projection := Project(nil, milestones, opts)

	require.Len(t, projection.Milestones, 2)
	assert.False(t, projection.Milestones[0].IsActive)
	assert.True(t, projection.Milestones[1].IsActive)
}

func TestProject_MilestonesExtendRange(t *testing.T) {
	// A milestone outside the document range stretches the axis.
	entries := []Entry{
		{ID: "doc-1", Date: date("2021-01-11")},
		{ID: "doc-2", Date: date("2021-01-21")},
	}
	milestones := []domain.Milestone{
		{ID: "m-1", Date: date("2021-01-01"), Color: palette.Neutral},
	}

	projection := Project(entries, milestones, Options{})

	assert.Equal(t, 0.0, projection.Milestones[0].Position)
	assert.Equal(t, 50.0, projection.Points[0].Position)
	assert.Equal(t, 100.0, projection.Points[1].Position)
}

func TestProject_CurrentPosition(t *testing.T) {
	entries := []Entry{
		{ID: "doc-1", Date: date("2021-01-01")},
		{ID: "doc-2", Date: date("2021-01-11")},
	}

	projection := Project(entries, nil, Options{CurrentDate: datePtr("2021-01-06")})

	require.NotNil(t, projection.CurrentPosition)
	assert.Equal(t, 50.0, *projection.CurrentPosition)

	// Without a current date the marker is absent.
	projection = Project(entries, nil, Options{})
	assert.Nil(t, projection.CurrentPosition)
}

func TestProject_CurrentPositionClampedToAxis(t *testing.T) {
	// The viewport's current date may sit outside the document range; the
	// marker clamps to the axis ends instead of leaving [0,100].
	entries := []Entry{
		{ID: "doc-1", Date: date("2024-01-01")},
		{ID: "doc-2", Date: date("2024-01-11")},
	}

	projection := Project(entries, nil, Options{CurrentDate: datePtr("2024-01-21")})
	require.NotNil(t, projection.CurrentPosition)
	assert.Equal(t, 100.0, *projection.CurrentPosition)

	projection = Project(entries, nil, Options{CurrentDate: datePtr("2023-12-22")})
	require.NotNil(t, projection.CurrentPosition)
	assert.Equal(t, 0.0, *projection.CurrentPosition)

	// In-range dates are unaffected by the clamp.
	projection = Project(entries, nil, Options{CurrentDate: datePtr("2024-01-06")})
	require.NotNil(t, projection.CurrentPosition)
	assert.Equal(t, 50.0, *projection.CurrentPosition)
}

func TestProject_FilterNonDestructive(t *testing.T) {
	// Re-projecting a subset must keep identical positions for every date
	// present in both calls, provided the subset spans the same range.
	full := []Entry{
		{ID: "doc-1", Date: date("2021-01-01")},
		{ID: "doc-2", Date: date("2021-01-06")},
		{ID: "doc-3", Date: date("2021-01-09")},
		{ID: "doc-4", Date: date("2021-01-11")},
	}
	filtered := []Entry{full[0], full[1], full[3]}

	fullProjection := Project(full, nil, Options{})
	filteredProjection := Project(filtered, nil, Options{})

	fullPositions := make(map[time.Time]float64)
	for _, p := range fullProjection.Points {
		fullPositions[p.Date] = p.Position
	}
	for _, p := range filteredProjection.Points {
		assert.Equal(t, fullPositions[p.Date], p.Position)
	}
}

func TestProject_DayResolution(t *testing.T) {
	// Intra-day times collapse onto the same point.
	morning := time.Date(2021, 1, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2021, 1, 1, 22, 30, 0, 0, time.UTC)
	entries := []Entry{
		{ID: "doc-1", Date: morning, Colors: []palette.ColorID{palette.Red}},
		{ID: "doc-2", Date: evening, Colors: []palette.ColorID{palette.Blue}},
		{ID: "doc-3", Date: date("2021-01-02")},
	}

	projection := Project(entries, nil, Options{})

	require.Len(t, projection.Points, 2)
	assert.Equal(t, []palette.ColorID{palette.Red, palette.Blue}, projection.Points[0].Colors)
}
