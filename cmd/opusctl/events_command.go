package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/opusclip-demo/internal/analytics"
)

func newEventsCommand(ctx *commandContext) *cobra.Command {
	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect the analytics event log",
	}

	eventsCmd.AddCommand(newEventsListCommand(ctx))
	eventsCmd.AddCommand(newEventsClearCommand(ctx))

	return eventsCmd
}

func newEventsListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "dump"},
		Short:   "Show logged events, oldest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0")
			}
			env, err := ctx.ensureEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			events := tail(env.events.Events(cmd.Context()), limit)
			if ctx.wantsJSON(cmd) {
				return writeJSON(cmd, events)
			}
			rows := make([][]string, 0, len(events))
			for _, e := range events {
				rows = append(rows, []string{
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					string(e.Type),
					payloadSummary(e.Payload),
				})
			}
			writeTable(cmd, []string{"Time", "Type", "Payload"}, rows, nil)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Only show the newest n events (0 shows all)")
	return cmd
}

func newEventsClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every logged event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.ensureEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			env.events.Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Event log cleared")
			return nil
		},
	}
}

func tail(events []analytics.Event, limit int) []analytics.Event {
	if limit <= 0 || limit >= len(events) {
		return events
	}
	return events[len(events)-limit:]
}

func payloadSummary(payload map[string]any) string {
	if len(payload) == 0 {
		return ""
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "?"
	}
	const maxLen = 60
	if len(raw) > maxLen {
		return string(raw[:maxLen-3]) + "..."
	}
	return string(raw)
}
