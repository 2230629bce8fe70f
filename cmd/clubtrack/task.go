// ABOUTME: CLI commands for the task and gym-exercise catalogs.
// ABOUTME: --kind selects between campo tasks and gimnasio exercises.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hvilches/clubtrack/internal/models"
)

var (
	taskKind           string
	taskClassification string
	taskObjective      string
	taskLink           string
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"t"},
	Short:   "Manage the exercise catalog",
	Long: `Manage the reusable exercise catalog that training sessions draw from.

There are two catalogs: field tasks (--kind campo, the default) and gym
exercises (--kind gimnasio). Classifications are free-form; the
"classifications" subcommand lists the values already in use for
autocomplete.

Examples:
  clubtrack task add "Rondo 4v2" --classification posesion
  clubtrack task add "Sentadilla" --kind gimnasio
  clubtrack task list --kind gimnasio
  clubtrack task classifications`,
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := svc.ListTasks(cmd.Context(), session, taskKind)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No catalog entries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range tasks {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(shortID(t.ID)),
				padRight(t.Name, 28),
				faint.Sprint(t.Classification))
		}
		return nil
	},
}

var taskAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a"},
	Short:   "Add a catalog entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := &models.Task{
			Name:           args[0],
			Classification: taskClassification,
			Objective:      taskObjective,
			Link:           taskLink,
			Kind:           taskKind,
		}

		res, err := svc.CreateTask(cmd.Context(), session, t)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		printWrite(res, args[0])
		return nil
	},
}

var taskClassificationsCmd = &cobra.Command{
	Use:   "classifications",
	Short: "List classifications in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := svc.Classifications(cmd.Context(), session, taskKind)
		if err != nil {
			return fmt.Errorf("failed to list classifications: %w", err)
		}

		if len(values) == 0 {
			fmt.Println("No classifications in use yet.")
			return nil
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a catalog entry",
	Long: `Delete a catalog entry. Sessions that already reference it keep
their copied task data.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := svc.DeleteTask(cmd.Context(), session, taskKind, args[0])
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		printWrite(res, "catalog deletion")
		return nil
	},
}

func init() {
	taskCmd.PersistentFlags().StringVarP(&taskKind, "kind", "k", "", "campo (default) or gimnasio")
	taskAddCmd.Flags().StringVar(&taskClassification, "classification", "", "free-form classification")
	taskAddCmd.Flags().StringVar(&taskObjective, "objective", "", "training objective")
	taskAddCmd.Flags().StringVar(&taskLink, "link", "", "reference link")

	taskCmd.AddCommand(taskListCmd, taskAddCmd, taskClassificationsCmd, taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}
