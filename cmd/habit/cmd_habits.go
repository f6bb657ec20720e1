// Habit lifecycle commands: add, check, delete, list, details.
package main

import (
	"fmt"
	"os"

	"habitcli/cmd/habit/ui"
	"habitcli/internal/logging"
	"habitcli/internal/types"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkDateFlag  string
	deleteDateFlag string
)

// addCmd registers a new habit.
var addCmd = &cobra.Command{
	Use:   "add <name> <daily|weekly>",
	Short: "Add a new habit with a given periodicity",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

// checkCmd records a completion.
var checkCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Mark a habit as completed",
	Long: `Records a check-in for the habit. Defaults to now; use --date to
back-fill a specific day. Repeated check-ins on the same day all count.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// deleteCmd removes a habit, or just its check-ins on one date.
var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a habit, or its check-ins on a given date",
	Long: `Without --date, removes the habit and its entire log.
With --date YYYY-MM-DD, removes every check-in on that calendar date and
keeps the habit.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

// listCmd shows all tracked habits.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all tracked habits",
	RunE:  runList,
}

// detailsCmd shows one habit in depth.
var detailsCmd = &cobra.Command{
	Use:   "details <name>",
	Short: "Show detailed info about a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetails,
}

func init() {
	checkCmd.Flags().StringVar(&checkDateFlag, "date", "", "Check-in date (YYYY-MM-DD, defaults to today)")
	deleteCmd.Flags().StringVar(&deleteDateFlag, "date", "", "Only remove check-ins on this date (YYYY-MM-DD)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}
	name, periodicity := args[0], types.Periodicity(args[1])

	if err := a.tracker.Add(name, periodicity, now()); err != nil {
		return a.fail(err)
	}
	a.recordAudit(logging.AuditHabitAdd, name, string(periodicity))
	a.save()

	fmt.Println(a.styles.Success.Render(fmt.Sprintf("✓ Habit '%s' (%s) added successfully!", name, periodicity)))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}
	name := args[0]

	at := now()
	if checkDateFlag != "" {
		day, err := types.ParseDate(checkDateFlag)
		if err != nil {
			return a.fail(fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", checkDateFlag))
		}
		at = day
	}

	if err := a.tracker.Check(name, at); err != nil {
		return a.fail(err)
	}
	a.recordAudit(logging.AuditHabitCheck, name, types.FormatTime(at))
	a.save()

	habit := a.tracker.Document().Habits[name]
	fmt.Println(a.styles.Success.Render(
		fmt.Sprintf("✓ Checked off '%s' (%s) on %s", name, habit.Periodicity, types.FormatTime(at))))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}
	name := args[0]

	if deleteDateFlag == "" {
		if err := a.tracker.Delete(name); err != nil {
			return a.fail(err)
		}
		a.recordAudit(logging.AuditHabitDelete, name, "")
		a.save()
		fmt.Println(a.styles.Warning.Render(fmt.Sprintf("Habit '%s' deleted entirely.", name)))
		return nil
	}

	day, err := types.ParseDate(deleteDateFlag)
	if err != nil {
		return a.fail(fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", deleteDateFlag))
	}
	removed, err := a.tracker.DeleteOn(name, day)
	if err != nil {
		return a.fail(err)
	}
	a.recordAudit(logging.AuditCheckInDelete, name, fmt.Sprintf("%s x%d", deleteDateFlag, removed))
	a.save()

	fmt.Println(a.styles.Warning.Render(
		fmt.Sprintf("Removed %d checks dated %s for '%s'.", removed, deleteDateFlag, name)))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}

	doc := a.tracker.Document()
	if len(doc.Habits) == 0 {
		fmt.Println(a.styles.Muted.Render("No habits tracked yet. Try: habit add Workout daily"))
		return nil
	}

	table := ui.NewTable("Tracked Habits", []string{"Name", "Periodicity", "Created At"})
	for _, name := range doc.Names() {
		habit := doc.Habits[name]
		table.AddRow(name, string(habit.Periodicity), habit.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Print(table.View(a.styles))
	return nil
}

func runDetails(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return reportErr(err)
	}

	d, err := a.tracker.Details(args[0])
	if err != nil {
		return a.fail(err)
	}

	lastChecked := "Never"
	if !d.LastCheckIn.IsZero() {
		lastChecked = types.FormatTime(d.LastCheckIn)
	}

	fmt.Println(a.styles.Title.Render(fmt.Sprintf("Habit: %s", d.Name)))
	fmt.Printf("%s %s\n", a.styles.Bold.Render("Periodicity:"), d.Periodicity)
	fmt.Printf("%s %s\n", a.styles.Bold.Render("Created:"), d.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("%s %d\n", a.styles.Bold.Render("Check-ins:"), d.CheckIns)
	fmt.Printf("%s %s\n", a.styles.Bold.Render("Last checked-in:"), lastChecked)
	fmt.Printf("%s %d\n", a.styles.Bold.Render("Current streak:"), d.Streak)

	logger.Debug("details rendered", zap.String("habit", d.Name), zap.Int("streak", d.Streak))
	return nil
}

// fail reports an engine error in the user's terminal and passes it up for
// the exit code.
func (a *app) fail(err error) error {
	fmt.Println(a.styles.Error.Render(fmt.Sprintf("✗ %v", err)))
	return err
}

// reportErr covers failures before the app (and its styles) exist.
func reportErr(err error) error {
	fmt.Fprintf(os.Stderr, "✗ %v\n", err)
	return err
}
