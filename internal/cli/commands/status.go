package commands

import (
	"github.com/spf13/cobra"

	"github.com/alvesdmateus/paasctl/internal/render"
)

var statusCmd = &cobra.Command{
	Use:   "status <project> <environment>",
	Short: "Show the current status of an environment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		body, err := s.client.GetEnvironmentStatus(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		return render.Raw(cmd.OutOrStdout(), s.format, body)
	},
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics <project> <environment>",
	Short: "Show usage analytics for an environment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		body, err := s.client.GetAnalytics(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		return render.Raw(cmd.OutOrStdout(), s.format, body)
	},
}

var wakeCmd = &cobra.Command{
	Use:   "wake <project> <environment>",
	Short: "Wake a sleeping environment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		if err := s.client.WakeEnvironment(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		cmd.Println("Wake requested.")
		return nil
	},
}
