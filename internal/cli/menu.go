// Package cli owns the interactive menu loop: it captures raw operator
// input, hands validated command numbers and arguments to the analysis core,
// and renders the structured results the core returns. Nothing in here
// computes statistics.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drodr32/CTA-Database-App/internal/app"
	"github.com/drodr32/CTA-Database-App/internal/logging"
)

// CLI drives one interactive session over the application's command loop.
type CLI struct {
	app *app.Application
	in  *bufio.Scanner
	out io.Writer
}

func New(application *app.Application, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		app: application,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run prints the welcome banner and general statistics, then processes
// commands until the operator exits or input ends. Command failures are
// reported and the loop continues; only infrastructure errors during the
// banner are fatal to the session.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "** Welcome to CTA L analysis app **")
	fmt.Fprintln(c.out)

	if err := c.printGeneralStats(ctx); err != nil {
		return err
	}

	for {
		fmt.Fprintln(c.out)
		line, ok := c.prompt("Please enter a command (1-9, x to exit): ")
		if !ok {
			return nil
		}

		if strings.ToLower(strings.TrimSpace(line)) == "x" {
			return nil
		}

		command, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || command < 1 || command > 9 {
			fmt.Fprintln(c.out, "**Error, unknown command, try again...")
			fmt.Fprintln(c.out)
			continue
		}

		c.dispatch(ctx, command)
	}
}

func (c *CLI) printGeneralStats(ctx context.Context) error {
	stats, err := c.app.Analyzer.Overview(ctx)
	if err != nil {
		logging.LogError(c.app.Logger, "failed to load general statistics", err)
		return err
	}

	fmt.Fprintln(c.out, "General Statistics:")
	fmt.Fprintf(c.out, "  # of stations: %s\n", comma(stats.Stations))
	fmt.Fprintf(c.out, "  # of stops: %s\n", comma(stats.Stops))
	fmt.Fprintf(c.out, "  # of ride entries: %s\n", comma(stats.RidershipRows))
	fmt.Fprintf(c.out, "  date range: %s - %s\n", stats.StartDate, stats.EndDate)
	fmt.Fprintf(c.out, "  Total ridership: %s\n", comma(stats.TotalRiders))
	fmt.Fprintln(c.out)

	return nil
}

// dispatch runs one numbered command to completion. Each invocation carries
// its own logger annotated with a fresh invocation ID.
func (c *CLI) dispatch(ctx context.Context, command int) {
	logger := c.app.Logger.With(slog.String("invocation_id", uuid.New().String()))
	ctx = logging.WithLogger(ctx, logger)

	start := time.Now()
	var err error

	switch command {
	case 1:
		err = c.stationSearch(ctx)
	case 2:
		err = c.stationBreakdown(ctx)
	case 3:
		err = c.weekdayRanking(ctx)
	case 4:
		err = c.stopsForLine(ctx)
	case 5:
		err = c.stopDistribution(ctx)
	case 6:
		err = c.yearlyRidership(ctx)
	case 7:
		err = c.monthlyRidership(ctx)
	case 8:
		err = c.compareStations(ctx)
	case 9:
		err = c.stationsNearPoint(ctx)
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
		logging.LogError(logger, "command failed", err, slog.Int("command", command))
		fmt.Fprintln(c.out, "**Error, command failed...")
	}
	logging.LogCommand(logger, command, outcome, time.Since(start))
}

// prompt writes the prompt text and reads one line. The boolean is false
// once input is exhausted.
func (c *CLI) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
