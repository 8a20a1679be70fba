package auth

import (
	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти",
	Long:  `Удаляет локальную сессию. Запись пользователя в хранилище не меняется.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(); err != nil {
			return err
		}

		ui.Success(cmd.OutOrStdout(), "Сессия завершена")
		return nil
	},
}
