// ABOUTME: CLI commands for planning training sessions.
// ABOUTME: Sessions mirror into the calendar like matches do.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hvilches/clubtrack/internal/models"
)

var (
	sessionDate       string
	sessionTime       string
	sessionMicrocycle int
	sessionNumber     int
	sessionTasks      []string
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Plan training sessions",
	Long: `Plan training sessions in one of three collections:

  sesion-campo       field sessions
  sesion-gimnasio    gym sessions
  sesion-individual  individual work

Creating or moving a session keeps the shared calendar in step.

Examples:
  clubtrack session add sesion-campo --date 2024-05-02 --microcycle 3 \
      --number 1 --task "Rondo 4v2" --task "Finalización"
  clubtrack session list sesion-campo
  clubtrack session delete sesion-campo abc123`,
}

var sessionListCmd = &cobra.Command{
	Use:     "list <collection>",
	Aliases: []string{"ls"},
	Short:   "List sessions in a collection",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := svc.ListSessions(cmd.Context(), session, args[0])
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, ts := range sessions {
			fmt.Printf("%s %s %s microciclo %d, sesión %d (%d tareas)\n",
				faint.Sprint(shortID(ts.ID)),
				ts.Date,
				padRight(ts.Time, 5),
				ts.Microcycle,
				ts.Number,
				len(ts.Assignments))
		}
		return nil
	},
}

var sessionAddCmd = &cobra.Command{
	Use:     "add <collection>",
	Aliases: []string{"a"},
	Short:   "Plan a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts := &models.TrainingSession{
			Date:       sessionDate,
			Time:       sessionTime,
			Microcycle: sessionMicrocycle,
			Number:     sessionNumber,
		}
		for _, spec := range sessionTasks {
			ts.Assignments = append(ts.Assignments, parseAssignment(spec))
		}

		res, err := svc.CreateSession(cmd.Context(), session, args[0], ts)
		if err != nil {
			return fmt.Errorf("failed to plan session: %w", err)
		}

		printWrite(res, fmt.Sprintf("sesión %d", sessionNumber))
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <collection> <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := svc.DeleteSession(cmd.Context(), session, args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		printWrite(res, "session deletion")
		return nil
	},
}

// parseAssignment turns "name[:reps[:duration[:rest]]]" into an Assignment.
func parseAssignment(spec string) models.Assignment {
	parts := strings.SplitN(spec, ":", 4)
	a := models.Assignment{Task: parts[0]}
	if len(parts) > 1 {
		a.Repetitions = parts[1]
	}
	if len(parts) > 2 {
		a.Duration = parts[2]
	}
	if len(parts) > 3 {
		a.Rest = parts[3]
	}
	return a
}

func init() {
	sessionAddCmd.Flags().StringVar(&sessionDate, "date", "", "session date (YYYY-MM-DD)")
	sessionAddCmd.Flags().StringVar(&sessionTime, "time", "", "start time (HH:MM)")
	sessionAddCmd.Flags().IntVar(&sessionMicrocycle, "microcycle", 0, "microcycle number")
	sessionAddCmd.Flags().IntVar(&sessionNumber, "number", 0, "session number within the microcycle")
	sessionAddCmd.Flags().StringArrayVar(&sessionTasks, "task", nil, "task as name[:reps[:duration[:rest]]], repeatable")
	_ = sessionAddCmd.MarkFlagRequired("date")

	sessionCmd.AddCommand(sessionListCmd, sessionAddCmd, sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}
