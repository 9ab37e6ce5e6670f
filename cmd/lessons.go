package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/shiksha/internal/catalog"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List lessons available to you",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closer, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = closer() }()

		all, _ := cmd.Flags().GetBool("all")
		lessonType, _ := cmd.Flags().GetString("type")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		var lessons []catalog.Lesson
		if all {
			u, err := a.Profile().User()
			if err != nil {
				return err
			}
			lessons = a.Catalog().LessonsByLanguage(u.SelectedLanguage)
		} else {
			lessons, err = a.AvailableLessons()
			if err != nil {
				return err
			}
		}

		for _, l := range lessons {
			if lessonType != "" && string(l.Type) != lessonType {
				continue
			}
			if difficulty != "" && string(l.Difficulty) != difficulty {
				continue
			}
			fmt.Printf("%-14s %-9s %-12s %-7s %s\n",
				l.ID, l.Type, l.Difficulty, formatDuration(l.EstimatedTime), l.Content.Text)
		}
		return nil
	},
}

func init() {
	lessonsCmd.Flags().Bool("all", false, "Include lessons whose prerequisites are not yet met")
	lessonsCmd.Flags().String("type", "", "Filter by lesson type (alphabet, number, word, sentence, story)")
	lessonsCmd.Flags().String("difficulty", "", "Filter by difficulty (beginner, intermediate, advanced)")
}
