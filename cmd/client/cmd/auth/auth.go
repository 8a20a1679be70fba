package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для всех операций с пользователем
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление пользователем",
	Long:  `Регистрация, вход, выход, смена пароля и просмотр профиля.`,
}

func init() {
	AuthCmd.AddCommand(RegisterCmd)
	AuthCmd.AddCommand(LoginCmd)
	AuthCmd.AddCommand(LogoutCmd)
	AuthCmd.AddCommand(ChangePasswordCmd)
	AuthCmd.AddCommand(ProfileCmd)
}
