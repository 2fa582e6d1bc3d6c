package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliyamo/resort-booking/internal/daterange"
)

func newQuoteCmd() *cobra.Command {
	var (
		g    globalFlags
		rate int64
	)
	c := &cobra.Command{
		Use:   "quote",
		Short: "Print nights and total for the selection produced by --picks",
		RunE: func(cmd *cobra.Command, args []string) error {
			today, picks, err := g.resolve(time.Now())
			if err != nil {
				return err
			}
			printQuote(cmd.OutOrStdout(), replay(today, picks), rate)
			return nil
		},
	}
	g.register(c)
	c.Flags().Int64Var(&rate, "rate", 150, "nightly rate")
	return c
}

func printQuote(w io.Writer, sel daterange.Selection, rate int64) {
	q := daterange.ComputeQuote(sel, rate)
	fmt.Fprintf(w, "selection: %s\nnights: %d\ntotal: %d\n", describe(sel), q.Nights, q.TotalPrice)
}
