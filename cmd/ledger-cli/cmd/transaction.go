package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(txCmd())
	rootCmd.AddCommand(accountCmd())
}

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx <account_id> <amount>",
		Short: "apply a deposit or withdrawal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := loadToken()
			if err != nil {
				return err
			}

			kind, err := cmd.Flags().GetString("type")
			if err != nil {
				return err
			}

			var out map[string]any
			if err := callAPI("POST", "/transaction", token, map[string]any{
				"accountId":       args[0],
				"amount":          json.Number(args[1]),
				"transactionType": kind,
			}, &out); err != nil {
				return err
			}

			return printJson(cmd, out)
		},
	}

	cmd.Flags().StringP("type", "t", "deposit", "transaction type: deposit or withdrawal")
	return cmd
}

func accountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account <account_id>",
		Short: "show account state and recent transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := loadToken()
			if err != nil {
				return err
			}

			var account map[string]any
			if err := callAPI("GET", "/accounts/"+args[0], token, nil, &account); err != nil {
				return err
			}

			var transactions map[string]any
			if err := callAPI("GET", "/accounts/"+args[0]+"/transactions", token, nil, &transactions); err != nil {
				return err
			}

			return printJson(cmd, map[string]any{
				"account":      account,
				"transactions": transactions["transactions"],
			})
		},
	}
}
