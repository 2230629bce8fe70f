// ABOUTME: CLI commands for the shared club calendar.
// ABOUTME: Watch streams live feed snapshots until interrupted.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var calendarDate string

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "View the club calendar",
	Long: `View the shared activity calendar. Matches and training sessions
appear here automatically when they are scheduled; entries move or vanish
with their source.

Examples:
  clubtrack calendar list
  clubtrack calendar list --date 2024-06-01
  clubtrack calendar watch`,
}

var calendarListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List calendar activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := svc.ListActivities(cmd.Context(), session, calendarDate)
		if err != nil {
			return fmt.Errorf("failed to list calendar: %w", err)
		}

		if len(activities) == 0 {
			fmt.Println("No activities found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range activities {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(shortID(a.ID)),
				a.Date,
				padRight(a.Time, 5),
				a.Title)
		}
		return nil
	},
}

var calendarWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the calendar live",
	Long: `Print the calendar and reprint it whenever it changes. Stop with
Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots, err := svc.WatchActivities(cmd.Context(), session)
		if err != nil {
			return fmt.Errorf("failed to watch calendar: %w", err)
		}

		faint := color.New(color.Faint)
		for snap := range snapshots {
			fmt.Printf("--- %d activities ---\n", len(snap))
			for _, a := range snap {
				fmt.Printf("%s %s %s %s\n",
					faint.Sprint(shortID(a.ID)),
					a.Date,
					padRight(a.Time, 5),
					a.Title)
			}
		}
		return nil
	},
}

func init() {
	calendarListCmd.Flags().StringVar(&calendarDate, "date", "", "restrict to one date (YYYY-MM-DD)")

	calendarCmd.AddCommand(calendarListCmd, calendarWatchCmd)
	rootCmd.AddCommand(calendarCmd)
}
