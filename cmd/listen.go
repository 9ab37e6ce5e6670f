package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listenCmd = &cobra.Command{
	Use:   "listen <lesson-id>",
	Short: "Synthesize and fetch the audio for a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closer, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = closer() }()

		clip, err := a.LessonAudio(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%.1fs, %d bytes)\n", clip.FilePath, clip.Duration, clip.FileSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
}
