package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear every stored table and reload the fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.ensureEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			if err := env.data.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Storage reset to fixtures")
			return nil
		},
	}
}

func newSeedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset storage, then initialize it from the fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.ensureEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			if err := env.data.Reset(cmd.Context()); err != nil {
				return err
			}
			if err := env.data.Initialize(cmd.Context()); err != nil {
				return err
			}
			projects, err := env.data.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d projects\n", len(projects))
			return nil
		},
	}
}

type statusReport struct {
	Backend     string     `json:"backend"`
	Env         string     `json:"env"`
	Projects    int        `json:"projects"`
	Events      int        `json:"events"`
	LastSavedAt *time.Time `json:"lastSavedAt"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the storage backend and what it holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.ensureEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			projects, err := env.data.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			report := statusReport{
				Backend:  env.cfg.Storage.Backend,
				Env:      env.cfg.App.Env,
				Projects: len(projects),
				Events:   len(env.events.Events(cmd.Context())),
			}
			if saved, ok := env.data.LastSavedAt(cmd.Context()); ok {
				report.LastSavedAt = &saved
			}

			if ctx.wantsJSON(cmd) {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Backend:    %s\n", report.Backend)
			fmt.Fprintf(out, "Env:        %s\n", report.Env)
			fmt.Fprintf(out, "Projects:   %d\n", report.Projects)
			fmt.Fprintf(out, "Events:     %d\n", report.Events)
			saved := "never"
			if report.LastSavedAt != nil {
				saved = report.LastSavedAt.Local().Format(stampLayout)
			}
			fmt.Fprintf(out, "Last saved: %s\n", saved)
			return nil
		},
	}
}
