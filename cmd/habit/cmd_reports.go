// Analytics commands: streaks, summary, reminder, dashboard.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"habitcli/cmd/habit/ui"

	"github.com/spf13/cobra"
)

// streaksCmd shows current streaks per habit.
var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "View your habit streaks",
	Long: `Shows the consecutive run ending at each habit's most recent
check-in. A missed interval resets the count to the most recent run.`,
	RunE: runStreaks,
}

// summaryCmd shows the aggregate analytics view.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "View analytics and performance",
	RunE:  runSummary,
}

// reminderCmd lists habits that are overdue.
var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Get reminders for pending habits",
	RunE:  runReminder,
}

// dashboardCmd renders the check-in bar chart.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show a graphical analysis of habits",
	RunE:  runDashboard,
}

func runStreaks(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}

	doc := a.tracker.Document()
	if len(doc.Habits) == 0 {
		fmt.Println(a.styles.Muted.Render("No habits tracked yet."))
		return nil
	}

	table := ui.NewTable("Habit Streaks", []string{"Habit", "Current streak (days/weeks)"})
	for _, name := range doc.Names() {
		table.AddRow(name, strconv.Itoa(a.tracker.Streak(name)))
	}
	fmt.Print(table.View(a.styles))

	if name, best := a.tracker.BestStreak(); best > 0 {
		fmt.Println(a.styles.Success.Render(
			fmt.Sprintf("Best current streak: '%s' with %d", name, best)))
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}
	printSummary(a)
	return nil
}

// printSummary renders the summary sections; shared with the welcome screen.
func printSummary(a *app) {
	report := a.tracker.Summary(now())

	fmt.Printf("%s %d\n", a.styles.Warning.Render("Total habits:"), report.TotalHabits)
	fmt.Printf("%s %d\n", a.styles.Success.Render("Total check-ins:"), report.TotalCheckIns)

	if len(report.DailyHabits) > 0 {
		fmt.Printf("%s %s\n", a.styles.Info.Render("Daily habits:"), strings.Join(report.DailyHabits, ", "))
	}

	if len(report.Pending) > 0 {
		fmt.Println(a.styles.Error.Render("Pending Habits:"))
		for _, p := range report.Pending {
			fmt.Printf("- %s (%s)\n", p.Name, p.Periodicity)
		}
	} else {
		fmt.Println(a.styles.Success.Render("No pending habits."))
	}

	if len(report.Struggling) > 0 {
		fmt.Println(a.styles.Warning.Render("Habits you struggled with the most last month:"))
		for _, s := range report.Struggling {
			fmt.Printf("- %s (%d check-ins in 30 days)\n", s.Name, s.Count)
		}
	}
}

func runReminder(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}
	printReminder(a)
	return nil
}

// printReminder renders the pending list; shared with the welcome screen.
func printReminder(a *app) {
	pending := a.tracker.Pending(now())
	if len(pending) == 0 {
		fmt.Println(a.styles.Success.Render("All habits are up to date!"))
		return
	}

	fmt.Println(a.styles.Error.Render("You have pending habits to complete!"))
	for _, p := range pending {
		fmt.Printf("- %s (%s)\n", p.Name, p.Periodicity)
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}

	doc := a.tracker.Document()
	if len(doc.Habits) == 0 {
		fmt.Println(a.styles.Warning.Render("No habit logs to display on dashboard."))
		return nil
	}

	chart := ui.NewBarChart("Habit Progress Overview")
	for _, name := range doc.Names() {
		chart.AddBar(name, len(doc.Logs[name]))
	}
	fmt.Print(chart.View(a.styles))
	fmt.Println(a.styles.Muted.Render("Bars show total check-ins per habit."))
	return nil
}
