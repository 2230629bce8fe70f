// ABOUTME: CLI commands for daily perceived exertion (RPE) records.
// ABOUTME: Same one-per-player-per-day upsert behavior as wellness.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hvilches/clubtrack/internal/models"
)

var (
	rpePlayer   string
	rpeScore    int
	rpeComments string
)

var rpeCmd = &cobra.Command{
	Use:   "rpe",
	Short: "Daily perceived exertion records",
	Long: `Record and review daily RPE (rating of perceived exertion, 1-10).

Like wellness, RPE is one record per player per local day; submitting again
the same day updates the existing record.`,
}

var rpeSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit today's RPE",
	Long: `Submit an RPE score for today.

Examples:
  clubtrack rpe submit --player abc123 --score 7
  clubtrack rpe submit --player abc123 --score 9 --comments "doble sesión"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := &models.EffortRecord{
			PlayerID: rpePlayer,
			Score:    rpeScore,
			Comments: rpeComments,
		}

		res, err := svc.SubmitEffort(cmd.Context(), session, rec)
		if err != nil {
			return fmt.Errorf("failed to submit RPE: %w", err)
		}

		printWrite(res, fmt.Sprintf("RPE %d", rpeScore))
		return nil
	},
}

var rpeTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's RPE for a player",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := svc.TodayEffort(cmd.Context(), session, rpePlayer)
		if err != nil {
			return fmt.Errorf("no RPE record for today: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s rpe=%d\n", faint.Sprint(shortID(rec.ID)), rec.Date, rec.Score)
		if rec.Comments != "" {
			fmt.Printf("  %s\n", faint.Sprint(truncate(rec.Comments, 60)))
		}
		return nil
	},
}

func init() {
	rpeSubmitCmd.Flags().StringVar(&rpePlayer, "player", "", "player document id")
	rpeSubmitCmd.Flags().IntVar(&rpeScore, "score", 0, "perceived exertion (1-10)")
	rpeSubmitCmd.Flags().StringVar(&rpeComments, "comments", "", "free-text comments")
	_ = rpeSubmitCmd.MarkFlagRequired("player")
	_ = rpeSubmitCmd.MarkFlagRequired("score")

	rpeTodayCmd.Flags().StringVar(&rpePlayer, "player", "", "player document id")
	_ = rpeTodayCmd.MarkFlagRequired("player")

	rpeCmd.AddCommand(rpeSubmitCmd, rpeTodayCmd)
	rootCmd.AddCommand(rpeCmd)
}
