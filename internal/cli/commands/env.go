package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alvesdmateus/paasctl/internal/platform"
	"github.com/alvesdmateus/paasctl/internal/render"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Manage environments and their variables",
}

var envListCmd = &cobra.Command{
	Use:   "list <project>",
	Short: "List the environments of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		envs, err := s.client.ListEnvironments(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return render.Environments(cmd.OutOrStdout(), s.format, envs)
	},
}

var envSetCmd = &cobra.Command{
	Use:   "set <project> <environment> KEY=VALUE...",
	Short: "Set environment variables",
	Long: `Set one or more environment variables on an environment. The platform
has no partial updates, so the environment object is fetched, its runEnvs
mapping is overlaid with the given pairs (new values win), and the whole
object is written back. Concurrent updates are last-write-wins.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := parsePairs(args[2:])
		if err != nil {
			return err
		}

		s, err := newSession()
		if err != nil {
			return err
		}

		project, env := args[0], args[1]
		existing, err := s.client.GetEnvironment(cmd.Context(), project, env)
		if err != nil {
			return err
		}

		payload := platform.BuildEnvironmentUpdate(existing, pairs)
		if err := s.client.UpdateEnvironment(cmd.Context(), project, env, payload); err != nil {
			return err
		}

		cmd.Printf("Updated %d variable(s) on %s.\n", len(pairs), env)
		return nil
	},
}

// parsePairs parses KEY=VALUE arguments; an empty value is allowed, a missing
// "=" is not
func parsePairs(args []string) (map[string]string, error) {
	pairs := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid variable %q (expected KEY=VALUE)", arg)
		}
		pairs[key] = value
	}
	return pairs, nil
}

func init() {
	envCmd.AddCommand(envListCmd)
	envCmd.AddCommand(envSetCmd)
}
