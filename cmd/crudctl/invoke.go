package main

import (
	"github.com/spf13/cobra"

	"serverless-crud/trigger"
)

func NewCreateTableCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create-table",
		Short: "Invoke the create table function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, opts, trigger.CreateTableFunction, trigger.CreateTable())
		},
	}
}

func NewGetAllCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-all",
		Short: "Invoke the list users function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, opts, trigger.GetAllItemsFunction, trigger.GetAllItems())
		},
	}
}

func NewGetIDCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-id [id]",
		Short: "Invoke the get user function",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, opts, trigger.GetByIDFunction, trigger.GetByID(arg(args, 0)))
		},
	}
}

func NewCreateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Invoke the create user function",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, opts, trigger.CreateItemFunction, trigger.CreateItem(arg(args, 0)))
		},
	}
}

func NewUpdateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update [id] [name]",
		Short: "Invoke the update user function",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, opts, trigger.UpdateItemFunction, trigger.UpdateItem(arg(args, 0), arg(args, 1)))
		},
	}
}

func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Invoke the delete user function",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, opts, trigger.DeleteItemFunction, trigger.DeleteItem(arg(args, 0)))
		},
	}
}

func invoke(cmd *cobra.Command, opts *RootOptions, function string, payload trigger.Payload) error {
	if opts.Function != "" {
		function = opts.Function
	}

	client, err := trigger.NewClient(cmd.Context(), opts.Region, opts.Profile, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	_, err = client.Invoke(cmd.Context(), function, payload)
	return err
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
