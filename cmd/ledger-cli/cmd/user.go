package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(loginCmd())
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <password>",
		Short: "register a new user with an initial account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out map[string]any
			if err := callAPI("POST", "/register", "", map[string]string{
				"username": args[0],
				"password": args[1],
			}, &out); err != nil {
				return err
			}

			return printJson(cmd, out)
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "login and persist the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Token string `json:"token"`
			}
			if err := callAPI("POST", "/login", "", map[string]string{
				"username": args[0],
				"password": args[1],
			}, &out); err != nil {
				return err
			}

			if err := saveToken(out.Token); err != nil {
				return err
			}

			cmd.Println("login ok")
			return nil
		},
	}
}
