package commands

import (
	"github.com/spf13/cobra"

	"github.com/alvesdmateus/paasctl/internal/platform"
	"github.com/alvesdmateus/paasctl/internal/render"
)

var (
	projectDisplayName string
	projectType        string
	projectRuntime     string
	projectPort        int
	projectListLimit   int
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <unique-name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		name := args[0]
		displayName := projectDisplayName
		if displayName == "" {
			displayName = name
		}

		project, err := s.client.CreateProject(cmd.Context(), platform.CreateProjectRequest{
			Name:        name,
			DisplayName: displayName,
			Type:        projectType,
			Settings: platform.ProjectSettings{
				Runtime: projectRuntime,
				Port:    projectPort,
			},
		})
		if err != nil {
			return err
		}

		s.logger.Info().Str("project_id", project.ID).Msg("Project created")
		return render.Projects(cmd.OutOrStdout(), s.format, []platform.Project{*project})
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		projects, err := s.client.ListProjects(cmd.Context(), projectListLimit)
		if err != nil {
			return err
		}

		return render.Projects(cmd.OutOrStdout(), s.format, projects)
	},
}

func init() {
	projectCreateCmd.Flags().StringVar(&projectDisplayName, "display-name", "", "human-readable project name (defaults to the unique name)")
	projectCreateCmd.Flags().StringVar(&projectType, "type", "web", "project type")
	projectCreateCmd.Flags().StringVar(&projectRuntime, "runtime", "node22", "runtime identifier")
	projectCreateCmd.Flags().IntVar(&projectPort, "port", 8080, "port the application listens on")
	projectListCmd.Flags().IntVar(&projectListLimit, "limit", 0, "maximum number of projects to return")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
}
