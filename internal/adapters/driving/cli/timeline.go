package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/chartlens-cli/internal/core/domain"
	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
	"github.com/custodia-labs/chartlens-cli/internal/core/ports/driving"
)

var (
	timelineJSON    bool
	timelineTypes   []string
	timelineColors  []string
	timelineCurrent string
	timelineWidth   int
)

var timelineCmd = &cobra.Command{
	Use:   "timeline [id]",
	Short: "Project a patient's record dates onto an axis",
	Long: `Projects a patient's record dates and configured milestones onto a
proportional axis scaled to the covered date range. Each mark sits at its
date's relative position between the earliest and latest date.

Marks:
  o  - one or more documents on that date
  ^  - milestone
  |  - current viewport date (with --current)`,
	Args: cobra.ExactArgs(1),
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().BoolVar(&timelineJSON, "json", false, "output the projection as JSON")
	timelineCmd.Flags().StringSliceVarP(&timelineTypes, "type", "t", nil, "only project documents of these types")
	timelineCmd.Flags().StringSliceVarP(&timelineColors, "color", "c", nil, "milestone colours to mark active")
	timelineCmd.Flags().StringVar(&timelineCurrent, "current", "", "viewport date (YYYY-MM-DD)")
	timelineCmd.Flags().IntVarP(&timelineWidth, "width", "w", 0, "axis width in columns (0 = terminal width)")
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	opts := driving.TimelineOptions{Types: timelineTypes}

	if len(timelineColors) > 0 {
		opts.ActiveColors = make(map[palette.ColorID]struct{}, len(timelineColors))
		for _, c := range timelineColors {
			opts.ActiveColors[palette.ColorID(c)] = struct{}{}
		}
	}

	if timelineCurrent != "" {
		current, err := time.Parse("2006-01-02", timelineCurrent)
		if err != nil {
			return fmt.Errorf("invalid --current date %q, want YYYY-MM-DD", timelineCurrent)
		}
		opts.CurrentDate = &current
	}

	projection, err := reviewService.Timeline(cmd.Context(), args[0], opts)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no patient with id %q", args[0])
		}
		return fmt.Errorf("timeline failed: %w", err)
	}

	if timelineJSON {
		data, err := json.MarshalIndent(projection, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal projection: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputTimelineAxis(cmd, projection)
}

func outputTimelineAxis(cmd *cobra.Command, projection *domain.Projection) error {
	if projection.Empty() {
		cmd.Println("Nothing to project: no dated documents or milestones.")
		return nil
	}

	width := timelineWidth
	if width <= 0 {
		width = terminalWidth()
	}
	// Leave room for the mark at position 100.
	axis := width - 1
	if axis < 20 {
		axis = 20
	}

	cmd.Println(renderAxis(projection, axis))
	cmd.Println()

	for _, p := range projection.Points {
		cmd.Printf("  o %s  %5.1f%%  %s\n",
			p.Date.Format("2006-01-02"), p.Position, joinColors(p.Colors))
	}
	for _, m := range projection.Milestones {
		active := ""
		if !m.IsActive {
			active = "  (inactive)"
		}
		cmd.Printf("  ^ %s  %5.1f%%  %s%s\n",
			m.Date.Format("2006-01-02"), m.Position, m.Description, active)
	}
	if projection.CurrentPosition != nil {
		cmd.Printf("  | current position %.1f%%\n", *projection.CurrentPosition)
	}

	return nil
}

// renderAxis draws the projection as a single line of marks. Later marks
// win collisions, current position last of all.
func renderAxis(projection *domain.Projection, width int) string {
	cells := make([]rune, width+1)
	for i := range cells {
		cells[i] = '-'
	}

	place := func(position float64, mark rune) {
		idx := int(position / 100 * float64(width))
		if idx < 0 {
			idx = 0
		}
		if idx > width {
			idx = width
		}
		cells[idx] = mark
	}

	for _, p := range projection.Points {
		place(p.Position, 'o')
	}
	for _, m := range projection.Milestones {
		place(m.Position, '^')
	}
	if projection.CurrentPosition != nil {
		place(*projection.CurrentPosition, '|')
	}

	return string(cells)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func joinColors(colors []palette.ColorID) string {
	if len(colors) == 0 {
		return ""
	}
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
