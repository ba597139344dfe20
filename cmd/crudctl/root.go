package main

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Function string
	Profile  string
	Region   string
}

// NewRootCommand creates the root command for crudctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "crudctl",
		Short:         "Trigger the users functions",
		Long:          "Invoke the deployed users functions with synthetic API Gateway events, or run the repository smoke sequence locally.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Function, "function", "", "function name or ARN (defaults to <Name>LambdaFunction)")
	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", "", "shared AWS config profile")
	cmd.PersistentFlags().StringVar(&opts.Region, "region", "", "AWS region")

	cmd.AddCommand(NewCreateTableCommand(opts))
	cmd.AddCommand(NewGetAllCommand(opts))
	cmd.AddCommand(NewGetIDCommand(opts))
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewSmokeCommand())

	return cmd
}
