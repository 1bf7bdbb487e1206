package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"bookshelf/internal/app/server"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newUserCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Управление пользователями",
	}
	cmd.AddCommand(newUserAddCmd(e))
	return cmd
}

func newUserAddCmd(e *env) *cobra.Command {
	var username, email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Зарегистрировать пользователя без веб формы",
		Example: `  bookshelf user add --username reader --email reader@example.com
  echo "secret" | bookshelf user add --username reader --email reader@example.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd.OutOrStdout(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			app, err := server.New(cmd.Context(), e.cfg, e.log)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			id, err := app.Users().Register(cmd.Context(), username, email, password)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %s created with id %d\n", email, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Имя пользователя")
	cmd.Flags().StringVar(&email, "email", "", "Email для входа")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// readPassword спрашивает пароль без эха, если stdin - терминал, иначе читает первую строку
func readPassword(out io.Writer, in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, "Пароль: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("empty password")
	}
	return password, nil
}
