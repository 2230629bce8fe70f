// ABOUTME: CLI commands for the match schedule.
// ABOUTME: Schedule changes keep the shared calendar in step automatically.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hvilches/clubtrack/internal/models"
)

var (
	matchOpponent   string
	matchDate       string
	matchTime       string
	matchTournament string
	matchRound      string
	matchVenue      string
	matchResult     string
	matchStatus     string
)

var matchCmd = &cobra.Command{
	Use:     "match",
	Aliases: []string{"m"},
	Short:   "Manage the match schedule",
	Long: `Manage the club's fixtures. Scheduling, rescheduling, or cancelling a
match keeps the shared calendar in step: the calendar entry follows the
match to its new date and disappears when the match is deleted.

Examples:
  clubtrack match schedule --opponent "Rival FC" --date 2024-06-01 --time 19:00
  clubtrack match list
  clubtrack match update abc123 --date 2024-06-03
  clubtrack match delete abc123`,
}

var matchListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := svc.ListMatches(cmd.Context(), session)
		if err != nil {
			return fmt.Errorf("failed to list matches: %w", err)
		}

		if len(matches) == 0 {
			fmt.Println("No matches found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range matches {
			result := ""
			if m.Result != "" {
				result = " " + m.Result
			}
			fmt.Printf("%s %s %s vs %s [%s]%s\n",
				faint.Sprint(shortID(m.ID)),
				m.Date,
				padRight(m.Time, 5),
				m.Opponent,
				m.Status,
				result)
		}
		return nil
	},
}

var matchScheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"add"},
	Short:   "Schedule a match",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := &models.Match{
			Opponent:   matchOpponent,
			Date:       matchDate,
			Time:       matchTime,
			Tournament: matchTournament,
			Round:      matchRound,
			Venue:      matchVenue,
		}

		res, err := svc.CreateMatch(cmd.Context(), session, m)
		if err != nil {
			return fmt.Errorf("failed to schedule match: %w", err)
		}

		printWrite(res, fmt.Sprintf("match vs %s", matchOpponent))
		return nil
	},
}

var matchUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a match",
	Long: `Update a match. Unset flags keep their stored values; the calendar
entry moves with the match.

Examples:
  clubtrack match update abc123 --date 2024-06-03
  clubtrack match update abc123 --status jugado --result "2-1"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		old, err := svc.GetMatch(cmd.Context(), session, args[0])
		if err != nil {
			return fmt.Errorf("failed to load match: %w", err)
		}

		updated := *old
		if cmd.Flags().Changed("opponent") {
			updated.Opponent = matchOpponent
		}
		if cmd.Flags().Changed("date") {
			updated.Date = matchDate
		}
		if cmd.Flags().Changed("time") {
			updated.Time = matchTime
		}
		if cmd.Flags().Changed("tournament") {
			updated.Tournament = matchTournament
		}
		if cmd.Flags().Changed("round") {
			updated.Round = matchRound
		}
		if cmd.Flags().Changed("venue") {
			updated.Venue = matchVenue
		}
		if cmd.Flags().Changed("result") {
			updated.Result = matchResult
		}
		if cmd.Flags().Changed("status") {
			updated.Status = matchStatus
		}

		res, err := svc.UpdateMatch(cmd.Context(), session, args[0], &updated)
		if err != nil {
			return fmt.Errorf("failed to update match: %w", err)
		}

		printWrite(res, "match update")
		return nil
	},
}

var matchDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a match",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := svc.DeleteMatch(cmd.Context(), session, args[0])
		if err != nil {
			return fmt.Errorf("failed to delete match: %w", err)
		}

		printWrite(res, "match deletion")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{matchScheduleCmd, matchUpdateCmd} {
		c.Flags().StringVar(&matchOpponent, "opponent", "", "opposing team")
		c.Flags().StringVar(&matchDate, "date", "", "match date (YYYY-MM-DD)")
		c.Flags().StringVar(&matchTime, "time", "", "kick-off time (HH:MM)")
		c.Flags().StringVar(&matchTournament, "tournament", "", "tournament or league")
		c.Flags().StringVar(&matchRound, "round", "", "round or matchday")
		c.Flags().StringVar(&matchVenue, "venue", "", "venue")
	}
	matchUpdateCmd.Flags().StringVar(&matchResult, "result", "", "final score")
	matchUpdateCmd.Flags().StringVar(&matchStatus, "status", "", "programado, jugado, or cancelado")
	_ = matchScheduleCmd.MarkFlagRequired("opponent")
	_ = matchScheduleCmd.MarkFlagRequired("date")

	matchCmd.AddCommand(matchListCmd, matchScheduleCmd, matchUpdateCmd, matchDeleteCmd)
	rootCmd.AddCommand(matchCmd)
}
