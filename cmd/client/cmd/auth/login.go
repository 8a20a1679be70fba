// cmd/client/cmd/auth/login.go
package auth

import (
	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
)

var loginID string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти под существующим пользователем",
	Long: `Проверяет пароль пользователя с указанным id и сохраняет его запись
как текущую сессию.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		prompt := ui.NewPrompter(cmd)

		id := loginID
		if id == "" {
			if id, err = prompt.Line("ID пользователя", ""); err != nil {
				return err
			}
		}

		password, err := prompt.Password("Пароль")
		if err != nil {
			return err
		}

		ctx, cancel := types.Timeout(cmd, app)
		defer cancel()

		sess, err := app.Login(ctx, id, password)
		if err != nil {
			return err
		}

		ui.Success(cmd.OutOrStdout(), "Вход выполнен: %s (%d задач)", sess.Name, len(sess.Data.Tasks))
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVar(&loginID, "id", "", "id пользователя")
}
