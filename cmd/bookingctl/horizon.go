package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliyamo/resort-booking/internal/daterange"
)

func newHorizonCmd() *cobra.Command {
	var (
		g    globalFlags
		days int
	)
	c := &cobra.Command{
		Use:   "horizon",
		Short: "Print the selectable days with their flags after replaying --picks",
		RunE: func(cmd *cobra.Command, args []string) error {
			today, picks, err := g.resolve(time.Now())
			if err != nil {
				return err
			}
			return printHorizon(cmd.OutOrStdout(), today, days, replay(today, picks))
		},
	}
	g.register(c)
	c.Flags().IntVar(&days, "days", daterange.DefaultHorizon, "number of days to print")
	return c
}

func printHorizon(w io.Writer, today time.Time, days int, sel daterange.Selection) error {
	horizon, err := daterange.GenerateHorizon(today, days)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "selection: %s\n", describe(sel))
	for _, d := range horizon {
		fmt.Fprintf(w, "%s %s %s\n", d.Date.Format(dateLayout), d.Date.Weekday().String()[:3], flagString(d.Flags(sel, today)))
	}
	return nil
}

func flagString(f daterange.DayFlags) string {
	var parts []string
	if f.Past {
		parts = append(parts, "past")
	}
	if f.Today {
		parts = append(parts, "today")
	}
	if f.Selected {
		parts = append(parts, "selected")
	}
	if f.InRange {
		parts = append(parts, "in-range")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
