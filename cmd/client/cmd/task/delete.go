package task

import (
	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Удалить задачу из хранилища",
	Long: `Удаляет объект задачи из хранилища (DELETE /objects/{id}). Восстановить
его нельзя.

Список задач пользователя меняется только локально; запись пользователя
в хранилище обновится при следующем taskkeeper sync.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := types.Timeout(cmd, app)
		defer cancel()

		if err := app.DeleteTask(ctx, args[0]); err != nil {
			return err
		}

		ui.Success(cmd.OutOrStdout(), "Задача %s удалена", args[0])
		return nil
	},
}
