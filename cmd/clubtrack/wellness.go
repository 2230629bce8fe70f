// ABOUTME: CLI commands for the daily wellness questionnaire.
// ABOUTME: Submit upserts by (player, local date); today and list read back.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hvilches/clubtrack/internal/club"
	"github.com/hvilches/clubtrack/internal/models"
)

var (
	wellnessPlayer       string
	wellnessMood         int
	wellnessSleepHours   int
	wellnessSleepQuality int
	wellnessRecovery     int
	wellnessSoreness     int
	wellnessSorenessType string
	wellnessSorenessZone string
	wellnessComments     string
	wellnessLimit        int
)

var wellnessCmd = &cobra.Command{
	Use:     "wellness",
	Aliases: []string{"w"},
	Short:   "Daily wellness questionnaires",
	Long: `Record and review daily wellness questionnaires.

Each player answers five 1-5 scores per day: mood, sleep hours, sleep
quality, recovery, and muscle soreness. A soreness of 3 or more requires
--soreness-type (general or especifico); "especifico" additionally requires
--soreness-zone.

There is at most one wellness record per player per local day. Submitting
again the same day updates the existing record.`,
}

var wellnessSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit today's wellness questionnaire",
	Long: `Submit a wellness questionnaire for today.

Examples:
  clubtrack wellness submit --player abc123 --mood 4 --sleep-hours 4 \
      --sleep-quality 3 --recovery 4 --soreness 2
  clubtrack wellness submit --player abc123 --mood 3 --sleep-hours 3 \
      --sleep-quality 3 --recovery 2 --soreness 4 \
      --soreness-type especifico --soreness-zone isquiotibiales`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := &models.WellnessRecord{
			PlayerID:     wellnessPlayer,
			Mood:         wellnessMood,
			SleepHours:   wellnessSleepHours,
			SleepQuality: wellnessSleepQuality,
			Recovery:     wellnessRecovery,
			Soreness:     wellnessSoreness,
			SorenessType: wellnessSorenessType,
			SorenessZone: wellnessSorenessZone,
			Comments:     wellnessComments,
		}

		res, err := svc.SubmitWellness(cmd.Context(), session, rec)
		if err != nil {
			return fmt.Errorf("failed to submit wellness: %w", err)
		}

		printWrite(res, "wellness questionnaire")
		return nil
	},
}

var wellnessTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's wellness record for a player",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := svc.TodayWellness(cmd.Context(), session, wellnessPlayer)
		if err != nil {
			return fmt.Errorf("no wellness record for today: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", faint.Sprint(shortID(rec.ID)), rec.Date)
		fmt.Printf("  mood %d  sleep %d/%d  recovery %d  soreness %d\n",
			rec.Mood, rec.SleepHours, rec.SleepQuality, rec.Recovery, rec.Soreness)
		if rec.SorenessType != "" {
			fmt.Printf("  soreness detail: %s %s\n", rec.SorenessType, rec.SorenessZone)
		}
		if rec.Comments != "" {
			fmt.Printf("  %s\n", faint.Sprint(truncate(rec.Comments, 60)))
		}
		return nil
	},
}

var wellnessListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent wellness records",
	Long: `List recent wellness records, newest first.

Examples:
  clubtrack wellness list                    # whole squad
  clubtrack wellness list --player abc123    # one player
  clubtrack wellness list -n 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := svc.ListWellness(cmd.Context(), session, wellnessPlayer, wellnessLimit)
		if err != nil {
			return fmt.Errorf("failed to list wellness: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No wellness records found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range records {
			fmt.Printf("%s %s %s mood=%d sleep=%d/%d rec=%d sore=%d\n",
				faint.Sprint(shortID(r.ID)),
				r.Date,
				padRight(shortID(r.PlayerID), 10),
				r.Mood, r.SleepHours, r.SleepQuality, r.Recovery, r.Soreness)
		}
		return nil
	},
}

// printWrite reports a write outcome, flagging degraded (locally cached)
// saves so the user knows the backend did not confirm.
func printWrite(res club.WriteResult, what string) {
	if res.Degraded {
		color.Yellow("⚠ Saved %s locally (server unavailable)", what)
	} else {
		color.Green("✓ Saved %s", what)
	}
	fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(res.ID)))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	wellnessSubmitCmd.Flags().StringVar(&wellnessPlayer, "player", "", "player document id")
	wellnessSubmitCmd.Flags().IntVar(&wellnessMood, "mood", 0, "mood (1-5)")
	wellnessSubmitCmd.Flags().IntVar(&wellnessSleepHours, "sleep-hours", 0, "sleep hours rating (1-5)")
	wellnessSubmitCmd.Flags().IntVar(&wellnessSleepQuality, "sleep-quality", 0, "sleep quality (1-5)")
	wellnessSubmitCmd.Flags().IntVar(&wellnessRecovery, "recovery", 0, "recovery level (1-5)")
	wellnessSubmitCmd.Flags().IntVar(&wellnessSoreness, "soreness", 0, "muscle soreness (1-5)")
	wellnessSubmitCmd.Flags().StringVar(&wellnessSorenessType, "soreness-type", "", "general or especifico (required when soreness >= 3)")
	wellnessSubmitCmd.Flags().StringVar(&wellnessSorenessZone, "soreness-zone", "", "body zone (required for especifico)")
	wellnessSubmitCmd.Flags().StringVar(&wellnessComments, "comments", "", "free-text comments")
	_ = wellnessSubmitCmd.MarkFlagRequired("player")

	wellnessTodayCmd.Flags().StringVar(&wellnessPlayer, "player", "", "player document id")
	_ = wellnessTodayCmd.MarkFlagRequired("player")

	wellnessListCmd.Flags().StringVar(&wellnessPlayer, "player", "", "filter by player document id")
	wellnessListCmd.Flags().IntVarP(&wellnessLimit, "limit", "n", 20, "max number of results")

	wellnessCmd.AddCommand(wellnessSubmitCmd, wellnessTodayCmd, wellnessListCmd)
	rootCmd.AddCommand(wellnessCmd)
}
