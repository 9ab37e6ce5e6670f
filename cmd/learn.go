package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/shiksha/internal/catalog"
)

var learnCmd = &cobra.Command{
	Use:   "learn <lesson-id>",
	Short: "Study a lesson and record its completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closer, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = closer() }()

		now := time.Now()
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			if _, err := a.Onboard(name, now); err != nil {
				return err
			}
		}
		if lang, _ := cmd.Flags().GetString("language"); lang != "" {
			if _, err := a.SelectLanguage(catalog.LanguageCode(lang), now); err != nil {
				return err
			}
		}

		lesson, err := a.Catalog().LessonByID(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("\n  %s\n", lesson.Content.Text)
		if lesson.Content.Pronunciation != "" {
			fmt.Printf("  pronounced: %s\n", lesson.Content.Pronunciation)
		}
		if lesson.Content.Translation != "" {
			fmt.Printf("  meaning:    %s\n", lesson.Content.Translation)
		}
		fmt.Println()

		score, _ := cmd.Flags().GetInt("score")
		timeSpent, _ := cmd.Flags().GetInt("time")
		if timeSpent == 0 {
			timeSpent = lesson.EstimatedTime * 60
		}
		rec, err := a.CompleteLesson(lesson.ID, score, timeSpent, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Completed %s with score %d.\n", rec.LessonID, rec.Score)
		return nil
	},
}

func init() {
	learnCmd.Flags().String("name", "", "Onboard with this display name before learning")
	learnCmd.Flags().String("language", "", "Switch to this language before learning (e.g. hi-IN)")
	learnCmd.Flags().Int("score", 100, "Self-assessed score for the lesson (0-100)")
	learnCmd.Flags().Int("time", 0, "Seconds spent on the lesson (defaults to its estimated time)")
}
