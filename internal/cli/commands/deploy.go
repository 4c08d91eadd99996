package commands

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"

	"github.com/alvesdmateus/paasctl/internal/platform"
	"github.com/alvesdmateus/paasctl/internal/render"
)

var (
	deployBranch string
	deployImage  string
)

var deployCmd = &cobra.Command{
	Use:   "deploy <project> <environment>",
	Short: "Trigger a deployment from a branch or image",
	Long: `Trigger a deployment of an environment. Pass --branch to deploy a git
branch or --image to deploy a prebuilt image reference. With neither flag the
branch of the git repository in the working directory is used.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if deployBranch != "" && deployImage != "" {
			return errors.New("--branch and --image are mutually exclusive")
		}

		s, err := newSession()
		if err != nil {
			return err
		}

		req := platform.CreateDeploymentRequest{Branch: deployBranch, Image: deployImage}
		if req.Branch == "" && req.Image == "" {
			branch, err := currentBranch()
			if err != nil {
				return fmt.Errorf("detect branch (pass --branch or --image explicitly): %w", err)
			}
			req.Branch = branch
			s.logger.Info().Str("branch", branch).Msg("Using branch of the current repository")
		}

		deployment, err := s.client.CreateDeployment(cmd.Context(), args[0], args[1], req)
		if err != nil {
			return err
		}

		s.logger.Info().Str("deployment_id", deployment.ID).Msg("Deployment created")
		return render.Deployments(cmd.OutOrStdout(), s.format, []platform.Deployment{*deployment})
	},
}

// currentBranch resolves the checked-out branch of the repository containing
// the working directory
func currentBranch() (string, error) {
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", err
	}
	if !head.Name().IsBranch() {
		return "", errors.New("HEAD is detached")
	}
	return head.Name().Short(), nil
}

func init() {
	deployCmd.Flags().StringVar(&deployBranch, "branch", "", "git branch to deploy")
	deployCmd.Flags().StringVar(&deployImage, "image", "", "image reference to deploy")
}
