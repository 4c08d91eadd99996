package commands

import (
	"github.com/spf13/cobra"

	"github.com/alvesdmateus/paasctl/internal/collector"
)

var uploadText bool

var uploadCmd = &cobra.Command{
	Use:   "upload <project> <environment> <path>",
	Short: "Upload a file or directory to an environment",
	Long: `Upload a file, or a directory tree, to an environment. Contents are
base64-encoded so binary files survive the trip; pass --text to send plain
UTF-8 instead. Version-control metadata, dependency caches, build output and
editor directories are skipped. A batch may hold at most 100 files.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		mode := collector.ModeBinary
		if uploadText {
			mode = collector.ModeText
		}

		entries, err := collector.Collect(args[2], mode)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			cmd.Println("Nothing to upload after filtering.")
			return nil
		}

		if err := s.client.UploadFiles(cmd.Context(), args[0], args[1], entries, !uploadText); err != nil {
			return err
		}

		cmd.Printf("Uploaded %d file(s).\n", len(entries))
		return nil
	},
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadText, "text", false, "upload as plain UTF-8 text instead of base64")
}
