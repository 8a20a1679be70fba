package auth

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"taskkeeper/cmd/client/cmd/types"
	"taskkeeper/cmd/client/cmd/ui"
	"taskkeeper/internal/domain/session"
)

var (
	profileFormat  string
	profileRefresh bool
)

// profileView - сессия без хэша пароля
type profileView struct {
	ID      string         `json:"id" yaml:"id"`
	Name    string         `json:"name" yaml:"name"`
	Email   string         `json:"email,omitempty" yaml:"email,omitempty"`
	Address string         `json:"address,omitempty" yaml:"address,omitempty"`
	Tasks   []string       `json:"tasks" yaml:"tasks"`
	Extra   map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

func newProfileView(s session.Session) profileView {
	return profileView{
		ID:      s.ID,
		Name:    s.Name,
		Email:   s.Data.Email,
		Address: s.Data.Address,
		Tasks:   s.Data.Tasks,
		Extra:   s.Data.Extra,
	}
}

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := ui.ValidateFormat(profileFormat, ui.FormatText, ui.FormatJSON, ui.FormatYAML); err != nil {
			return &session.ValidationError{Field: "output", Message: err.Error()}
		}

		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		var sess session.Session
		if profileRefresh {
			ctx, cancel := types.Timeout(cmd, app)
			defer cancel()
			sess, err = app.RefreshSession(ctx)
		} else {
			sess, err = app.CurrentSession()
		}
		if err != nil {
			return err
		}

		view := newProfileView(sess)
		out := cmd.OutOrStdout()
		if profileFormat != ui.FormatText {
			return ui.Structured(out, profileFormat, view)
		}

		fmt.Fprintf(out, "ID:     %s\n", view.ID)
		fmt.Fprintf(out, "Имя:    %s\n", view.Name)
		fmt.Fprintf(out, "Email:  %s\n", view.Email)
		fmt.Fprintf(out, "Адрес:  %s\n", view.Address)
		fmt.Fprintf(out, "Задачи: %d\n", len(view.Tasks))

		keys := make([]string, 0, len(view.Extra))
		for k := range view.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %v\n", k, view.Extra[k])
		}
		return nil
	},
}

func init() {
	ProfileCmd.Flags().StringVarP(&profileFormat, "output", "o", ui.FormatText, "формат вывода: text, json, yaml")
	ProfileCmd.Flags().BoolVar(&profileRefresh, "refresh", false, "перечитать запись из хранилища")
}
