package main

import (
	"fmt"
	"time"

	"github.com/linskybing/ticketboard/internal/api/middleware"
	"github.com/linskybing/ticketboard/internal/config"
	"github.com/spf13/cobra"
)

var (
	tokenUsername string
	tokenTTL      time.Duration
)

// tokenCmd mints a token signed with JWT_SECRET for local development.
var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Print a signed development token for a user id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig()
		middleware.Init()

		name := tokenUsername
		if name == "" {
			name = args[0]
		}
		token, err := middleware.GenerateToken(args[0], name, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "display name carried in the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
