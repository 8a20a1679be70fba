// cmd/client/cmd/auth/register.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
	"taskkeeper/internal/domain/session"
)

var (
	registerName    string
	registerEmail   string
	registerAddress string
	registerFields  map[string]string
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать нового пользователя",
	Long: `Создаёт запись пользователя в хранилище и сразу входит под ней.

Хранилище назначает пользователю id - он понадобится для входа
с другого устройства: taskkeeper auth login --id <id>`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		prompt := ui.NewPrompter(cmd)

		name := registerName
		if name == "" {
			if name, err = prompt.Line("Имя", ""); err != nil {
				return err
			}
		}

		password, err := prompt.Password("Пароль")
		if err != nil {
			return err
		}
		passwordConfirm, err := prompt.Password("Повторите пароль")
		if err != nil {
			return err
		}
		if password != passwordConfirm {
			return &session.ValidationError{Field: "password", Message: "passwords do not match"}
		}

		var extra map[string]any
		if len(registerFields) > 0 {
			extra = make(map[string]any, len(registerFields))
			for k, v := range registerFields {
				extra[k] = v
			}
		}

		ctx, cancel := types.Timeout(cmd, app)
		defer cancel()

		sess, err := app.Register(ctx, session.RegisterRequest{
			Name:     name,
			Email:    registerEmail,
			Password: password,
			Address:  registerAddress,
			Extra:    extra,
		})
		if err != nil {
			if sess.ID != "" {
				ui.Warn(cmd.ErrOrStderr(), "Пользователь создан, но сессия не сохранена. ID для входа: %s", sess.ID)
			}
			return err
		}

		out := cmd.OutOrStdout()
		ui.Success(out, "Пользователь %s зарегистрирован", sess.Name)
		fmt.Fprintf(out, "ID: %s\n", sess.ID)
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVarP(&registerName, "name", "n", "", "имя пользователя")
	RegisterCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "email")
	RegisterCmd.Flags().StringVarP(&registerAddress, "address", "a", "", "адрес")
	RegisterCmd.Flags().StringToStringVar(&registerFields, "field", nil, "дополнительные атрибуты key=value")
}
