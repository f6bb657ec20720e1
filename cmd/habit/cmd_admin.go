// Administrative commands: fill, reset, setup-user, welcome.
package main

import (
	"fmt"
	"strings"
	"time"

	"habitcli/cmd/habit/ui"
	"habitcli/internal/fill"
	"habitcli/internal/logging"
	"habitcli/internal/types"

	"github.com/spf13/cobra"
)

var fillSeedFlag int64

// fillCmd populates fake data for testing and demos.
var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Populate fake data for testing/demo",
	RunE:  runFill,
}

// resetCmd wipes everything.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the entire system (remove all habits/logs)",
	RunE:  runReset,
}

// setupUserCmd sets the username shown by the welcome screen.
var setupUserCmd = &cobra.Command{
	Use:   "setup-user",
	Short: "Set up your user profile",
	RunE:  runSetupUser,
}

// welcomeCmd shows the welcome screen explicitly (also the root default).
var welcomeCmd = &cobra.Command{
	Use:   "welcome",
	Short: "Show the welcome message",
	RunE:  runWelcome,
}

func init() {
	fillCmd.Flags().Int64Var(&fillSeedFlag, "seed", 0, "RNG seed (0 = time-based)")
}

func runFill(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}

	seed := fillSeedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := fill.New(seed).Apply(a.tracker, now()); err != nil {
		return a.fail(err)
	}
	a.recordAudit(logging.AuditFill, "", fmt.Sprintf("seed=%d", seed))
	a.save()

	fmt.Println(a.styles.Success.Render("✓ Fake data added successfully!"))
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}

	a.tracker.Reset()
	a.recordAudit(logging.AuditReset, "", "")
	a.save()

	fmt.Println(a.styles.Warning.Render("System has been reset. All habits and logs removed."))
	return nil
}

func runSetupUser(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}

	username, err := ui.PromptUsername(a.styles)
	if err != nil {
		return a.fail(err)
	}
	if username == "" {
		fmt.Println(a.styles.Muted.Render("Setup cancelled."))
		return nil
	}

	if err := a.store.SaveUser(types.UserProfile{Username: username}); err != nil {
		return a.fail(err)
	}
	fmt.Println(a.styles.Success.Render(
		fmt.Sprintf("✓ Username '%s' has been set successfully!", username)))
	return nil
}

func runWelcome(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}

	if a.user.Username == "" {
		fmt.Println(a.styles.Info.Render("Welcome to Habit Tracker! Run 'habit setup-user' to begin."))
		return nil
	}

	fmt.Println(a.styles.Success.Render(
		fmt.Sprintf("Welcome back, %s, to HCLI - Your Personal Habit Tracker!", a.user.Username)))
	fmt.Println(a.styles.Warning.Render("Stay consistent and track your progress effortlessly."))
	fmt.Println()
	fmt.Println(a.styles.Bold.Render("Useful commands:"))
	for _, line := range []string{
		"add <habit> <daily/weekly>  Add a new habit",
		"check <habit>               Mark a habit as completed",
		"list                        Show all habits",
		"streaks                     View your habit streaks",
		"summary                     View analytics and performance",
		"reminder                    Get reminders for pending habits",
		"dashboard                   Show a graphical analysis of habits",
		"delete <habit>              Remove a habit",
		"details <habit>             Show detailed info about a habit",
		"fill                        Populate fake data for testing",
		"reset                       Reset all habits and logs",
	} {
		fmt.Printf("  %s\n", a.styles.Body.Render(line))
	}

	fmt.Println()
	fmt.Println(a.styles.Muted.Render(strings.Repeat("─", 60)))
	fmt.Println(a.styles.Info.Render("Habit Tracking Summary:"))
	printSummary(a)

	fmt.Println()
	fmt.Println(a.styles.Info.Render("Pending Habit Reminders:"))
	printReminder(a)
	return nil
}
