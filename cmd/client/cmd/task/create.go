package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
	"taskkeeper/internal/domain/task"
)

var (
	createTitle       string
	createDescription string
	createState       string
)

var CreateCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"add"},
	Short:   "Создать задачу",
	Long: `Создаёт задачу в хранилище и добавляет её id в список задач пользователя.

Если второй шаг не удался, задача остаётся в хранилище, а операция
записывается в журнал. Её можно завершить командой taskkeeper sync.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		title := createTitle
		if title == "" {
			if title, err = ui.NewPrompter(cmd).Line("Заголовок", ""); err != nil {
				return err
			}
		}

		ctx, cancel := types.Timeout(cmd, app)
		defer cancel()

		created, err := app.CreateTask(ctx, title, createDescription, createState)
		if err != nil {
			var attachErr *task.AttachError
			if errors.As(err, &attachErr) {
				ui.Warn(cmd.ErrOrStderr(), "Задача %s создана, но не добавлена в список", attachErr.TaskID)
			}
			return err
		}

		out := cmd.OutOrStdout()
		ui.Success(out, "Задача создана")
		fmt.Fprintf(out, "ID: %s\n", created.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "заголовок задачи")
	CreateCmd.Flags().StringVarP(&createDescription, "description", "d", "", "описание")
	CreateCmd.Flags().StringVarP(&createState, "state", "s", task.StatePending, "состояние: pending, in-progress, done")
}
