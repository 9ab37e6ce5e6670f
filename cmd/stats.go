package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closer, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = closer() }()

		u, err := a.Profile().User()
		if err != nil {
			return err
		}
		ins, err := a.Insights(time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("%s, learning %s\n\n", u.Name, u.SelectedLanguage)
		fmt.Printf("Lessons completed:  %d\n", ins.TotalLessonsCompleted)
		fmt.Printf("Average score:      %d%%\n", ins.AverageScore)
		fmt.Printf("Time spent:         %s\n", formatTime(ins.TotalTimeSpent))
		fmt.Printf("Streak:             %d day(s)\n", ins.LearningStreak)
		if len(ins.Strengths) > 0 {
			fmt.Printf("Strengths:          %s\n", strings.Join(ins.Strengths, ", "))
		}
		if len(ins.Weaknesses) > 0 {
			fmt.Printf("Needs work:         %s\n", strings.Join(ins.Weaknesses, ", "))
		}
		if len(ins.RecommendedLessons) > 0 {
			fmt.Printf("Up next:            %s\n", strings.Join(ins.RecommendedLessons, ", "))
		}
		if ins.EstimatedCompletionTime > 0 {
			fmt.Printf("Est. completion:    %d day(s)\n", ins.EstimatedCompletionTime)
		}
		return nil
	},
}
