package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/opusclip-demo/api/validators"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
)

const stampLayout = "2006-01-02 15:04"

func newProjectsCommand(ctx *commandContext) *cobra.Command {
	projectsCmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "List and manage projects",
	}

	projectsCmd.AddCommand(newProjectsListCommand(ctx))
	projectsCmd.AddCommand(newProjectsCreateCommand(ctx))
	projectsCmd.AddCommand(newProjectsDeleteCommand(ctx))
	projectsCmd.AddCommand(newProjectsClipsCommand(ctx))

	return projectsCmd
}

func newProjectsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects, most recently updated first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.ensureEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			projects, err := env.data.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			if ctx.wantsJSON(cmd) {
				return writeJSON(cmd, projects)
			}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					p.ID,
					p.Title,
					formatDuration(p.Duration),
					strconv.Itoa(p.Points),
					p.UpdatedAt.Local().Format(stampLayout),
				})
			}
			writeTable(cmd,
				[]string{"ID", "Title", "Duration", "Points", "Updated"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			)
			return nil
		},
	}
}

func newProjectsCreateCommand(ctx *commandContext) *cobra.Command {
	var input models.CreateProjectInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project with its default clips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Title = validators.SanitizeString(input.Title, 200)
			if err := validators.ValidateStruct(input); err != nil {
				return err
			}
			env, err := ctx.ensureEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			project, err := env.data.CreateProject(cmd.Context(), input)
			if err != nil {
				return err
			}
			if ctx.wantsJSON(cmd) {
				return writeJSON(cmd, project)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", project.ID, project.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "Project title")
	cmd.Flags().StringVar(&input.Description, "description", "", "Project description")
	cmd.Flags().StringVar(&input.VideoSrc, "video", "", "Source video URL")
	cmd.Flags().Float64Var(&input.Duration, "duration", 0, "Source duration in seconds")

	return cmd
}

func newProjectsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <project-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a project with its clips, captions and timeline",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			env, err := ctx.ensureEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			if err := env.data.DeleteProject(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}
}

func newProjectsClipsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clips <project-id>",
		Short: "List the clips of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.ensureEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			clips, err := env.data.ListClips(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			if ctx.wantsJSON(cmd) {
				return writeJSON(cmd, clips)
			}
			rows := make([][]string, 0, len(clips))
			for _, c := range clips {
				rows = append(rows, []string{
					c.ID,
					c.Title,
					formatDuration(c.Start),
					formatDuration(c.End),
					formatDuration(c.End-c.Start),
				})
			}
			writeTable(cmd,
				[]string{"ID", "Title", "Start", "End", "Length"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
			)
			return nil
		},
	}
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
