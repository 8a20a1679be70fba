package auth

import (
	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
	"taskkeeper/internal/domain/session"
)

var changePasswordID string

var ChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Сменить пароль",
	Long: `Меняет пароль пользователя. По умолчанию - текущего, другой можно
указать через --id. Остальные атрибуты пользователя сохраняются.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		id := changePasswordID
		if id == "" {
			sess, err := app.CurrentSession()
			if err != nil {
				return err
			}
			id = sess.ID
		}

		prompt := ui.NewPrompter(cmd)
		req := session.ChangePasswordRequest{ID: id}
		if req.OldPassword, err = prompt.Password("Текущий пароль"); err != nil {
			return err
		}
		if req.NewPassword, err = prompt.Password("Новый пароль"); err != nil {
			return err
		}
		if req.ConfirmPassword, err = prompt.Password("Повторите новый пароль"); err != nil {
			return err
		}

		ctx, cancel := types.Timeout(cmd, app)
		defer cancel()

		if err := app.ChangePassword(ctx, req); err != nil {
			return err
		}

		ui.Success(cmd.OutOrStdout(), "Пароль изменён")
		return nil
	},
}

func init() {
	ChangePasswordCmd.Flags().StringVar(&changePasswordID, "id", "", "id пользователя (по умолчанию текущий)")
}
