package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Prompter читает ответы пользователя. Один экземпляр на команду, так как
// буферизованный reader нельзя пересоздавать без потери данных.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func NewPrompter(cmd *cobra.Command) *Prompter {
	in := cmd.InOrStdin()
	return &Prompter{
		in:     in,
		out:    cmd.ErrOrStderr(),
		reader: bufio.NewReader(in),
	}
}

// Line запрашивает строку; пустой ответ даёт def
func (p *Prompter) Line(prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Password запрашивает пароль без эха, если ввод - терминал
func (p *Prompter) Password(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		return string(password), nil
	}

	return p.readLine()
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("ошибка чтения ввода: %w", err)
		}
		if line == "" {
			return "", errors.New("ввод прерван")
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
