package sync

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
	"taskkeeper/internal/app/client"
)

var showPending bool

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Сверить список задач с хранилищем",
	Long: `Перечитывает запись пользователя и приводит список задач в порядок:

  - убирает id задач, которых больше нет в хранилище;
  - добавляет задачи, созданные ранее, но не попавшие в список
    из-за сбоя (они записаны в локальном журнале).

Флаг --pending только показывает журнал, ничего не меняя.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if showPending {
			return printPending(cmd, app)
		}

		ctx, cancel := types.Timeout(cmd, app)
		defer cancel()

		report, err := app.Reconcile(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !report.Updated && len(report.Discarded) == 0 {
			ui.Success(out, "Список задач актуален")
			return nil
		}

		if len(report.Dropped) > 0 {
			fmt.Fprintf(out, "Удалены ссылки на отсутствующие задачи: %s\n", strings.Join(report.Dropped, ", "))
		}
		if len(report.Reattached) > 0 {
			fmt.Fprintf(out, "Восстановлены задачи: %s\n", strings.Join(report.Reattached, ", "))
		}
		if len(report.Discarded) > 0 {
			fmt.Fprintf(out, "Отброшены операции для удалённых задач: %s\n", strings.Join(report.Discarded, ", "))
		}
		ui.Success(out, "Синхронизация завершена")
		return nil
	},
}

func printPending(cmd *cobra.Command, app *client.App) error {
	intents, err := app.PendingIntents()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(intents) == 0 {
		fmt.Fprintln(out, "Незавершённых операций нет")
		return nil
	}
	for _, in := range intents {
		fmt.Fprintf(out, "%s  %s  task=%s\n", in.CreatedAt.Local().Format("2006-01-02 15:04:05"), in.Kind, in.TaskID)
	}
	return nil
}

func init() {
	SyncCmd.Flags().BoolVar(&showPending, "pending", false, "показать незавершённые операции")
}
