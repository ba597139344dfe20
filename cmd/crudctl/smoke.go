package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"serverless-crud/config"
	"serverless-crud/config/setup"
	"serverless-crud/database"
	"serverless-crud/trigger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewSmokeCommand runs the full users lifecycle against the configured
// database without going through Lambda.
func NewSmokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Run list, create, get, update, get, delete, list against the configured database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			cfg := config.AppConfig
			logger := setup.NewLogger(cfg, cmd.ErrOrStderr())

			factory := setup.InitDatabase(cfg, logger)
			defer setup.Shutdown(factory, logger)

			repo, err := database.NewUserRepository(factory, cfg.TableName)
			if err != nil {
				return err
			}

			return runSmoke(cmd.Context(), repo, cmd.OutOrStdout())
		},
	}
}

func runSmoke(ctx context.Context, repo database.Repository, w io.Writer) error {
	fail := color.New(color.FgRed)
	ok := color.New(color.FgGreen)

	if err := smoke(ctx, repo, w); err != nil {
		fail.Fprintf(w, "Error when running the queries: %v\n", err)
		return err
	}

	ok.Fprintln(w, "Smoke run completed")
	return nil
}

func smoke(ctx context.Context, repo database.Repository, w io.Writer) error {
	if err := repo.Init(ctx); err != nil {
		return err
	}
	if err := repo.CreateTable(ctx); err != nil {
		return err
	}

	step := func(msg string) { fmt.Fprintln(w, msg) }

	step("Getting all users...")
	users, err := repo.GetAllItems(ctx)
	if err != nil {
		return err
	}
	show(w, "All users", users)

	step("Creating user...")
	id, err := repo.Create(ctx, trigger.DefaultCreateName)
	if err != nil {
		return err
	}
	show(w, "User created", id)

	step("Getting user by id...")
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %d not found after create", id)
	}
	show(w, "User", user)

	step("Updating user...")
	user.Name = trigger.DefaultUpdatedName
	if err := repo.Update(ctx, *user); err != nil {
		return err
	}

	step("Getting updated user...")
	updated, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	show(w, "Updated user", updated)

	step("Deleting user...")
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}

	step("Getting all users...")
	users, err = repo.GetAllItems(ctx)
	if err != nil {
		return err
	}
	show(w, "All users", users)

	return nil
}

func show(w io.Writer, label string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", label, v)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, raw)
}
