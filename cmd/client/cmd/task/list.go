package task

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
	"taskkeeper/internal/domain/session"
	"taskkeeper/internal/domain/task"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Показать задачи",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := ui.ValidateFormat(listFormat, ui.FormatText, ui.FormatTable, ui.FormatJSON, ui.FormatYAML); err != nil {
			return &session.ValidationError{Field: "output", Message: err.Error()}
		}

		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := types.Timeout(cmd, app)
		defer cancel()

		tasks, err := app.ListTasks(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch listFormat {
		case ui.FormatJSON, ui.FormatYAML:
			return ui.Structured(out, listFormat, tasks)
		case ui.FormatTable:
			return printTable(cmd, tasks)
		}

		if len(tasks) == 0 {
			fmt.Fprintln(out, "Задач нет")
			return nil
		}
		for _, t := range tasks {
			fmt.Fprintf(out, "[%s] %s  %s\n", t.State, t.Title, t.ID)
		}
		return nil
	},
}

func printTable(cmd *cobra.Command, tasks []task.Task) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATE\tDESCRIPTION")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Title, t.State, t.Description)
	}
	return w.Flush()
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "output", "o", ui.FormatText, "формат вывода: text, table, json, yaml")
}
