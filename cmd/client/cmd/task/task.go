package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd - родительская команда для работы с задачами текущего пользователя
var TaskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks"},
	Short:   "Управление задачами",
	Long: `Просмотр, создание, изменение и удаление задач текущего пользователя.

Для всех команд нужен вход: taskkeeper auth login`,
}

func init() {
	TaskCmd.AddCommand(ListCmd)
	TaskCmd.AddCommand(ShowCmd)
	TaskCmd.AddCommand(CreateCmd)
	TaskCmd.AddCommand(UpdateCmd)
	TaskCmd.AddCommand(DeleteCmd)
}
