package commands

import (
	"github.com/spf13/cobra"

	"github.com/alvesdmateus/paasctl/internal/platform"
	"github.com/alvesdmateus/paasctl/internal/render"
)

var (
	deploymentListLimit int
	logsBuild           bool
	logsSince           string
)

var deploymentCmd = &cobra.Command{
	Use:   "deployment",
	Short: "Inspect deployments",
}

var deploymentListCmd = &cobra.Command{
	Use:   "list <project> <environment>",
	Short: "List deployments of an environment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		deployments, err := s.client.ListDeployments(cmd.Context(), args[0], args[1], deploymentListLimit)
		if err != nil {
			return err
		}

		return render.Deployments(cmd.OutOrStdout(), s.format, deployments)
	},
}

var logsCmd = &cobra.Command{
	Use:   "logs <deployment-id>",
	Short: "Fetch deployment logs",
	Long: `Fetch the runtime logs of a deployment, windowed by --since, or the
build logs with --build. Log payloads are printed verbatim.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		var text string
		if logsBuild {
			text, err = s.client.GetBuildLogs(cmd.Context(), args[0])
		} else {
			text, err = s.client.GetRuntimeLogs(cmd.Context(), args[0], logsSince)
		}
		if err != nil {
			return err
		}

		cmd.Println(text)
		return nil
	},
}

var rollbackCmd = &cobra.Command{
	Use:   "rollback <project> <environment> <deployment-id>",
	Short: "Roll an environment back to an earlier deployment",
	Long: `Point an environment back at an earlier deployment. The environment
object is fetched and written back with the target deployment id attached;
whether the platform honors the pin is best-effort.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		project, env, deployment := args[0], args[1], args[2]
		existing, err := s.client.GetEnvironment(cmd.Context(), project, env)
		if err != nil {
			return err
		}

		payload := platform.BuildRollbackPayload(existing, deployment)
		if err := s.client.UpdateEnvironment(cmd.Context(), project, env, payload); err != nil {
			return err
		}

		cmd.Printf("Rollback of %s to deployment %s requested.\n", env, deployment)
		return nil
	},
}

func init() {
	deploymentListCmd.Flags().IntVar(&deploymentListLimit, "limit", 0, "maximum number of deployments to return")
	logsCmd.Flags().BoolVar(&logsBuild, "build", false, "fetch build logs instead of runtime logs")
	logsCmd.Flags().StringVar(&logsSince, "since", "1h", "runtime log window, e.g. 30m or 24h")

	deploymentCmd.AddCommand(deploymentListCmd)
}
