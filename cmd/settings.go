package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/shiksha/internal/catalog"
	"github.com/abhisek/shiksha/internal/profile"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change your preferences",
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

		var patch profile.PreferencesPatch
		changed := false
		if cmd.Flags().Changed("daily-goal") {
			v, _ := cmd.Flags().GetInt("daily-goal")
			patch.DailyGoal = &v
			changed = true
		}
		if cmd.Flags().Changed("difficulty") {
			v, _ := cmd.Flags().GetString("difficulty")
			d := catalog.Difficulty(v)
			patch.Difficulty = &d
			changed = true
		}
		if cmd.Flags().Changed("theme") {
			v, _ := cmd.Flags().GetString("theme")
			theme := profile.Theme(v)
			patch.Theme = &theme
			changed = true
		}
		if cmd.Flags().Changed("audio") {
			v, _ := cmd.Flags().GetBool("audio")
			patch.AudioEnabled = &v
			changed = true
		}
		if cmd.Flags().Changed("autoplay") {
			v, _ := cmd.Flags().GetBool("autoplay")
			patch.AutoPlay = &v
			changed = true
		}
		if cmd.Flags().Changed("notifications") {
			v, _ := cmd.Flags().GetBool("notifications")
			patch.Notifications = &v
			changed = true
		}

		if changed {
			a.Profile().UpdatePreferences(patch)
			u, _ = a.Profile().User()
		}

		p := u.Preferences
		fmt.Printf("Daily goal:     %d min\n", p.DailyGoal)
		fmt.Printf("Difficulty:     %s\n", p.Difficulty)
		fmt.Printf("Theme:          %s\n", p.Theme)
		fmt.Printf("Audio:          %t\n", p.AudioEnabled)
		fmt.Printf("Autoplay:       %t\n", p.AutoPlay)
		fmt.Printf("Notifications:  %t\n", p.Notifications)
		return nil
	},
}

func init() {
	settingsCmd.Flags().Int("daily-goal", 0, "Daily learning goal in minutes")
	settingsCmd.Flags().String("difficulty", "", "Preferred difficulty (beginner, intermediate, advanced)")
	settingsCmd.Flags().String("theme", "", "UI theme (light, dark)")
	settingsCmd.Flags().Bool("audio", true, "Enable lesson audio")
	settingsCmd.Flags().Bool("autoplay", true, "Autoplay lesson audio")
	settingsCmd.Flags().Bool("notifications", true, "Enable reminders")
}
