package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <quiz-id>",
	Short: "Take a quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closer, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = closer() }()

		quiz, err := a.StartQuiz(args[0], time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("\n%s: %d questions, pass at %d%%\n", quiz.Title, len(quiz.Questions), quiz.PassingScore)
		reader := bufio.NewReader(os.Stdin)

		for i, q := range quiz.Questions {
			fmt.Printf("\n%d/%d  %s\n", i+1, len(quiz.Questions), q.Question)
			for n, opt := range q.Options {
				fmt.Printf("  %d) %s\n", n+1, opt.Text)
			}

			started := time.Now()
			choice := readChoice(reader, len(q.Options))
			if choice == 0 {
				a.AbandonQuiz()
				fmt.Println("\nQuiz abandoned.")
				return nil
			}
			elapsed := int(time.Since(started).Seconds())
			if err := a.Session().Answer(q.ID, q.Options[choice-1].ID, elapsed); err != nil {
				return err
			}
			a.Session().Next()
		}

		attempt, err := a.FinishQuiz(time.Now())
		if err != nil {
			return err
		}

		verdict := "failed"
		if attempt.Passed {
			verdict = "passed"
		}
		fmt.Printf("\n%s Score: %d%% (%s, took %s)\n", scoreText(attempt.Score), attempt.Score, verdict, formatTime(attempt.TimeTaken))
		for _, ans := range attempt.Answers {
			mark := "✗"
			if ans.IsCorrect {
				mark = "✓"
			}
			fmt.Printf("  %s %s\n", mark, ans.QuestionID)
		}
		return nil
	},
}

// readChoice reads a 1-based option number, or 0 when the user quits.
func readChoice(reader *bufio.Reader, options int) int {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0
		}
		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			return 0
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= options {
			return n
		}
		fmt.Printf("Enter 1-%d, or q to quit.\n", options)
	}
}
