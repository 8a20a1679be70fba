package status

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/internal/app/client"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние клиента",
	Long:  `Показывает адрес хранилища, его доступность, текущего пользователя и состояние журнала.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		ok := color.New(color.FgGreen).SprintFunc()
		bad := color.New(color.FgRed).SprintFunc()

		fmt.Fprintf(out, "Хранилище:   %s\n", app.Config().APIURL)

		ctx, cancel := types.Timeout(cmd, app)
		defer cancel()
		if err := app.CheckConnection(ctx); err != nil {
			fmt.Fprintf(out, "Соединение:  %s (%s)\n", bad("недоступно"), client.UserMessage(err))
		} else {
			fmt.Fprintf(out, "Соединение:  %s\n", ok("доступно"))
		}

		if app.Persistent() {
			fmt.Fprintf(out, "Данные:      %s\n", app.Config().DataPath)
		} else {
			fmt.Fprintf(out, "Данные:      %s\n", bad("в памяти"))
		}

		sess, err := app.CurrentSession()
		if err != nil {
			fmt.Fprintf(out, "Пользователь: %s\n", bad("вход не выполнен"))
			return nil
		}
		fmt.Fprintf(out, "Пользователь: %s (%s), задач: %d\n", sess.Name, sess.ID, len(sess.Data.Tasks))

		intents, err := app.PendingIntents()
		if err != nil {
			return err
		}
		if len(intents) > 0 {
			fmt.Fprintf(out, "Журнал:      %s\n", bad(fmt.Sprintf("%d незавершённых операций, выполните taskkeeper sync", len(intents))))
		} else {
			fmt.Fprintf(out, "Журнал:      %s\n", ok("пуст"))
		}
		return nil
	},
}
