package task

import (
	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
	"taskkeeper/internal/domain/session"
)

var (
	updateTitle       string
	updateDescription string
	updateState       string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Изменить задачу",
	Long: `Меняет заголовок, описание или состояние задачи. Поля, не указанные
флагами, остаются прежними.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("state") {
			return &session.ValidationError{Message: "nothing to update, use --title, --description or --state"}
		}

		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := types.Timeout(cmd, app)
		defer cancel()

		current, err := app.GetTask(ctx, args[0])
		if err != nil {
			return err
		}

		title, description, state := current.Title, current.Description, current.State
		if flags.Changed("title") {
			title = updateTitle
		}
		if flags.Changed("description") {
			description = updateDescription
		}
		if flags.Changed("state") {
			state = updateState
		}

		updated, err := app.UpdateTask(ctx, current.ID, title, description, state)
		if err != nil {
			return err
		}

		ui.Success(cmd.OutOrStdout(), "Задача %s обновлена: [%s] %s", updated.ID, updated.State, updated.Title)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "новый заголовок")
	UpdateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "новое описание")
	UpdateCmd.Flags().StringVarP(&updateState, "state", "s", "", "новое состояние")
}
