package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliyamo/resort-booking/internal/config"
	"github.com/iliyamo/resort-booking/internal/daterange"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

const dateLayout = "2006-01-02"

// globalFlags are shared by every subcommand that needs a "today".
type globalFlags struct {
	today string
	tz    string
	picks string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bookingctl",
		Short:         "Replay booking date picks and print calendars and quotes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newVersionCmd())
	root.AddCommand(newHorizonCmd())
	root.AddCommand(newQuoteCmd())
	return root
}

func (g *globalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.today, "today", "", "today's date as YYYY-MM-DD (default: current date in --tz)")
	cmd.Flags().StringVar(&g.tz, "tz", "UTC", "IANA time zone that decides the current date")
	cmd.Flags().StringVar(&g.picks, "picks", "", "comma separated YYYY-MM-DD picks, applied in order")
}

// resolve returns today and the parsed picks.
func (g *globalFlags) resolve(now time.Time) (time.Time, []time.Time, error) {
	loc, err := config.ParseLocation(g.tz)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid --tz: %w", err)
	}
	today := daterange.Day(now.In(loc))
	if g.today != "" {
		t, err := time.Parse(dateLayout, g.today)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("invalid --today (want YYYY-MM-DD)")
		}
		today = t
	}
	picks, err := parseDates(g.picks)
	if err != nil {
		return time.Time{}, nil, err
	}
	return today, picks, nil
}

func parseDates(csv string) ([]time.Time, error) {
	var out []time.Time
	for _, p := range strings.Split(csv, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		t, err := time.Parse(dateLayout, p)
		if err != nil {
			return nil, fmt.Errorf("invalid pick %q (want YYYY-MM-DD)", p)
		}
		out = append(out, t)
	}
	return out, nil
}

// replay applies picks in order, starting from an empty selection.
func replay(today time.Time, picks []time.Time) daterange.Selection {
	var sel daterange.Selection
	for _, p := range picks {
		sel = daterange.SelectDate(sel, p, today)
	}
	return sel
}

func describe(sel daterange.Selection) string {
	switch sel.Phase() {
	case daterange.PartialRange:
		return fmt.Sprintf("check-in %s, check-out not set", sel.CheckIn.Format(dateLayout))
	case daterange.CompleteRange:
		return fmt.Sprintf("%s to %s", sel.CheckIn.Format(dateLayout), sel.CheckOut.Format(dateLayout))
	default:
		return "no dates selected"
	}
}
