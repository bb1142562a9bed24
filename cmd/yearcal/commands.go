package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/yearcal/internal/calendar"
	"github.com/username/yearcal/internal/server"
	"github.com/username/yearcal/internal/view"
	"github.com/username/yearcal/pkg/dateutil"
)

func queryCmd() *cobra.Command {
	var dateStr string
	var weekdayStr string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Derive working days and matching dates for a selected date",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, index, err := initializeEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			selected, err := selectDate(engine, dateStr)
			if err != nil {
				return err
			}

			logger.Debug("Running query", zap.Stringer("date", selected))

			result := view.Present(engine.Query(selected), engine.Policy(), index.Describe(selected))
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			printResult(out, result)

			if weekdayStr != "" {
				weekday, err := dateutil.ParseWeekday(weekdayStr)
				if err != nil {
					return err
				}
				matched := engine.MatchingWeekdayDates(selected.Day, weekday)
				printList(out, fmt.Sprintf("Day %d on %s", selected.Day, weekday), formatAll(matched))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "Selected date (YYYY-MM-DD, DD-MM-YYYY or DD-Mon-YYYY)")
	cmd.Flags().StringVar(&weekdayStr, "weekday", "", "Also list dates with the selected day-of-month on this weekday")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func holidaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holidays",
		Short: "List the loaded holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := initializeEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			printHolidays(cmd.OutOrStdout(), engine.Year(), engine.Holidays())
			return nil
		},
	}
}

func calendarCmd() *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print month grids with holidays and weekends marked",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be 0 (all) or 1-12, got %d", month)
			}

			engine, _, err := initializeEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for m := time.January; m <= time.December; m++ {
				if month != 0 && int(m) != month {
					continue
				}
				printMonth(out, engine.Calendar().MonthInfo(engine.Year(), m))
			}
			fmt.Fprintln(out, "Legend: * holiday, ~ weekend")
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "Only print this month (1-12, 0 for all)")

	return cmd
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar page and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, index, err := initializeEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if addr == "" {
				addr = cfg.Server.Addr
			}

			srv := server.New(server.Config{
				Addr:            addr,
				RateLimit:       cfg.Server.RateLimit,
				ShutdownTimeout: cfg.Server.GetShutdownTimeout(),
				Engine:          engine,
				Stocks:          index,
				Logger:          logger,
			})

			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}

// selectDate parses --date and requires it to fall in the engine's year
func selectDate(engine *calendar.Engine, raw string) (calendar.Date, error) {
	t, err := dateutil.ParseDate(raw)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid --date: %w", err)
	}

	selected := calendar.DateOf(t)
	if err := engine.CheckSelected(selected); err != nil {
		return calendar.Date{}, fmt.Errorf("invalid --date: %w", err)
	}
	return selected, nil
}

func printResult(w io.Writer, res *view.Result) {
	fmt.Fprintf(w, "📅 %s (%s), boundary policy: %s\n", res.Date, res.Weekday, res.Policy)

	fmt.Fprintln(w, "\nPre-Post Days")
	fmt.Fprintln(w, "═══════════════════════════════════════")
	for _, row := range res.PrePost {
		fmt.Fprintf(w, "  %-10s %-12s - %s\n", row.Month, row.Pre, row.Post)
	}

	fmt.Fprintln(w, "\nStocks")
	fmt.Fprintln(w, "═══════════════════════════════════════")
	fmt.Fprintf(w, "  Stock Names:    %s\n", res.Stock.StockNames)
	fmt.Fprintf(w, "  Next Post Date: %s\n", res.Stock.NextPostDate)

	printList(w, "Both Matched ("+res.Weekday+")", res.BothMatched)
	printList(w, "SAT Matched", res.SaturdayMatched)
	printList(w, "Sun Matched", res.SundayMatched)
	printList(w, "Holidays Matched", res.HolidayMatched)
}

func printList(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintln(w, "═══════════════════════════════════════")
	if len(items) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}

func printHolidays(w io.Writer, year int, holidays *calendar.HolidaySet) {
	fmt.Fprintf(w, "Holidays %d: %d\n", year, holidays.Len())
	for _, h := range holidays.Holidays() {
		line := view.FormatDateWeekday(h.Date)
		if h.Name != "" {
			line += "  " + h.Name
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
}

func printMonth(w io.Writer, info *calendar.MonthInfo) {
	fmt.Fprintf(w, "\n%s %d\n", info.Month, info.Year)
	fmt.Fprintln(w, " Sun Mon Tue Wed Thu Fri Sat")

	offset := 0
	if len(info.Days) > 0 {
		offset = int(info.Days[0].Date.Weekday())
	}

	var row strings.Builder
	row.WriteString(strings.Repeat("    ", offset))
	col := offset
	for _, day := range info.Days {
		mark := " "
		switch day.Type {
		case calendar.DayTypeHoliday:
			mark = "*"
		case calendar.DayTypeSaturday, calendar.DayTypeSunday:
			mark = "~"
		}
		fmt.Fprintf(&row, "%3d%s", day.Date.Day, mark)

		col++
		if col == 7 {
			fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
			row.Reset()
			col = 0
		}
	}
	if row.Len() > 0 {
		fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
	}

	fmt.Fprintf(w, "Workdays: %d  Weekend days: %d  Holidays: %d\n", info.WorkDays, info.Weekends, info.Holidays)
}

func formatAll(dates []calendar.Date) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, view.FormatDateWeekday(d))
	}
	return out
}
