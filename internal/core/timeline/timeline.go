// Package timeline projects dated documents and externally supplied
// milestones onto a normalized one-dimensional axis. Positions are linear in
// time between the earliest and latest known date, at day resolution. The
// projection is a pure transform: it holds no state between calls, so
// re-projecting a filtered subset never moves a date that both calls share.
package timeline

import (
	"sort"
	"time"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
)

// Entry is one dated document reduced to what the axis needs: its id and the
// display colours present on it.
type Entry struct {
	// ID is the document id, used as the per-colour representative for
	// click-to-navigate.
	ID string

	// Date is the document's calendar date.
	Date time.Time

	// Colors are the display colours present on the document.
	Colors []palette.ColorID
}

// Options carries the per-call view state. Filter state is always passed
// explicitly; the projection never reads ambient state.
type Options struct {
	// CurrentDate, when set, yields Projection.CurrentPosition.
	CurrentDate *time.Time

	// ActiveColors filters milestone activity. Empty means all active.
	ActiveColors map[palette.ColorID]struct{}
}

// Project places all distinct dates across entries and milestones on the
// [0,100] axis. With no dated input at all it returns a zero Projection; the
// caller suppresses rendering. A single distinct date degenerates to
// position 0 for everything.
func Project(entries []Entry, milestones []domain.Milestone, opts Options) domain.Projection {
	start, end, ok := dateRange(entries, milestones)
	if !ok {
		return domain.Projection{}
	}

	position := positionFunc(start, end)

	points := entryPoints(entries, position)
	marks := milestonePoints(milestones, position, opts.ActiveColors)

	var current *float64
	if opts.CurrentDate != nil {
		p := clamp(position(day(*opts.CurrentDate)))
		current = &p
	}

	return domain.Projection{
		Points:          points,
		Milestones:      marks,
		CurrentPosition: current,
	}
}

// clamp limits a position to the [0,100] axis. The current date may
// legitimately fall outside the document range.
func clamp(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// day truncates a time to calendar-day resolution in UTC.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dateRange finds the earliest and latest day across all inputs.
func dateRange(entries []Entry, milestones []domain.Milestone) (start, end time.Time, ok bool) {
	consider := func(t time.Time) {
		d := day(t)
		if !ok {
			start, end = d, d
			ok = true
			return
		}
		if d.Before(start) {
			start = d
		}
		if d.After(end) {
			end = d
		}
	}

	for _, e := range entries {
		consider(e.Date)
	}
	for _, m := range milestones {
		consider(m.Date)
	}
	return start, end, ok
}

// positionFunc returns the linear interpolation for the given range.
func positionFunc(start, end time.Time) func(time.Time) float64 {
	span := end.Sub(start)
	return func(d time.Time) float64 {
		if span == 0 {
			return 0
		}
		return 100 * float64(d.Sub(start)) / float64(span)
	}
}

// entryPoints aggregates entries by day into chronological timeline points.
// Colour order and per-colour representatives are stable by input order.
func entryPoints(entries []Entry, position func(time.Time) float64) []domain.TimelinePoint {
	if len(entries) == 0 {
		return nil
	}

	byDay := make(map[time.Time]*domain.TimelinePoint)
	var order []time.Time

	for _, e := range entries {
		d := day(e.Date)
		point, present := byDay[d]
		if !present {
			point = &domain.TimelinePoint{
				Date:      d,
				Position:  position(d),
				SourceIDs: make(map[palette.ColorID]string),
			}
			byDay[d] = point
			order = append(order, d)
		}

		for _, c := range e.Colors {
			if _, seen := point.SourceIDs[c]; seen {
				continue
			}
			point.SourceIDs[c] = e.ID
			point.Colors = append(point.Colors, c)
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	points := make([]domain.TimelinePoint, 0, len(order))
	for _, d := range order {
		points = append(points, *byDay[d])
	}
	return points
}

// milestonePoints projects milestones independently of documents.
func milestonePoints(milestones []domain.Milestone, position func(time.Time) float64, active map[palette.ColorID]struct{}) []domain.MilestonePoint {
	if len(milestones) == 0 {
		return nil
	}

	marks := make([]domain.MilestonePoint, 0, len(milestones))
	for _, m := range milestones {
		isActive := true
		if len(active) > 0 {
			_, isActive = active[m.Color]
		}
		marks = append(marks, domain.MilestonePoint{
			Milestone: m,
			Position:  position(day(m.Date)),
			IsActive:  isActive,
		})
	}

	sort.SliceStable(marks, func(i, j int) bool {
		return day(marks[i].Date).Before(day(marks[j].Date))
	})
	return marks
}
