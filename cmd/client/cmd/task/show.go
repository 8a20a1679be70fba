package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
	"taskkeeper/internal/domain/session"
)

var showFormat string

var ShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Показать задачу",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ui.ValidateFormat(showFormat, ui.FormatText, ui.FormatJSON, ui.FormatYAML); err != nil {
			return &session.ValidationError{Field: "output", Message: err.Error()}
		}

		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := types.Timeout(cmd, app)
		defer cancel()

		t, err := app.GetTask(ctx, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showFormat != ui.FormatText {
			return ui.Structured(out, showFormat, t)
		}

		fmt.Fprintf(out, "ID:        %s\n", t.ID)
		fmt.Fprintf(out, "Заголовок: %s\n", t.Title)
		fmt.Fprintf(out, "Состояние: %s\n", t.State)
		if t.Description != "" {
			fmt.Fprintf(out, "Описание:  %s\n", t.Description)
		}
		return nil
	},
}

func init() {
	ShowCmd.Flags().StringVarP(&showFormat, "output", "o", ui.FormatText, "формат вывода: text, json, yaml")
}
