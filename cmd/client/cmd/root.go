// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"taskkeeper/cmd/client/cmd/auth"
	"taskkeeper/cmd/client/cmd/status"
	syncCmd "taskkeeper/cmd/client/cmd/sync"
	"taskkeeper/cmd/client/cmd/task"
	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
	"taskkeeper/internal/app/client"
	"taskkeeper/internal/app/client/config"
	serverConfig "taskkeeper/internal/app/server/config"
	"taskkeeper/internal/exitcode"
	"taskkeeper/internal/utils/logger"
)

var (
	cfgFile string
	debug   bool
	apiURL  string
)

var rootCmd = &cobra.Command{
	Use:   "taskkeeper",
	Short: "taskkeeper - учёт задач поверх хранилища объектов",
	Long: `taskkeeper хранит пользователей и их задачи как объекты коллекции
/objects (по умолчанию https://api.restful-api.dev/objects).

Сессия текущего пользователя кэшируется локально, поэтому после
"taskkeeper auth login" команды работы с задачами не требуют пароля.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: shutdownApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run выполняет команду и возвращает код завершения
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		ui.Error(errOut, client.UserMessage(err))
	}
	return exitcode.FromError(err)
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return &exitcode.ConfigFailure{Err: err}
	}

	// Переопределяем настройки из флагов командной строки
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	log := newLogger(cfg, cmd.ErrOrStderr())

	app, err := client.New(cfg, log)
	if err != nil {
		return &exitcode.ConfigFailure{Err: err}
	}
	if !app.Persistent() {
		ui.Warn(cmd.ErrOrStderr(), "локальное хранилище недоступно, сессия не сохранится после выхода")
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func shutdownApp(cmd *cobra.Command, _ []string) error {
	if app, err := types.App(cmd); err == nil {
		app.Shutdown()
	}
	return nil
}

// newLogger пишет в stderr: без --debug только предупреждения и ошибки
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if debug {
		return logger.NewWithWriter(cfg.Env, w)
	}
	return logger.NewWithLevel(serverConfig.EnvProd, "warn", w)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.taskkeeper/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный вывод")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "URL коллекции объектов")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(task.TaskCmd)
	rootCmd.AddCommand(syncCmd.SyncCmd)
	rootCmd.AddCommand(status.StatusCmd)
}
