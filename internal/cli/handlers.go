package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"gitlab.com/pennywise/pennywise/internal/models"
	"gitlab.com/pennywise/pennywise/internal/stats"
)

func (a *App) handleLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	email := fs.String("email", "", "email address")
	name := fs.String("name", "", "display name (defaults to the email local part)")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return fmt.Errorf("email is required")
	}

	pw := *password
	if pw == "" {
		fmt.Fprint(a.stdout, "Password: ")
		var err error
		pw, err = readPassword(a.stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(a.stdout)
	}

	user, err := a.sessions.Login(ctx, *email, pw, *name)
	if err != nil {
		return err
	}
	a.expenses.Load(ctx, user.ID)

	fmt.Fprintf(a.stdout, "Logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *App) handleLogout(ctx context.Context) error {
	if a.sessions.Restore(ctx) == nil {
		fmt.Fprintln(a.stdout, "Not logged in.")
		return nil
	}
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "Logged out. This user's local expense data was removed.")
	return nil
}

func (a *App) handleWhoami(ctx context.Context) error {
	user := a.sessions.Restore(ctx)
	if user == nil {
		fmt.Fprintln(a.stdout, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.stdout, "%s <%s> (id %s)\n", user.Name, user.Email, user.ID)
	return nil
}

func (a *App) handleAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	category := fs.String("category", models.CategoryOther, "expense category")
	dateStr := fs.String("date", "", "expense date, YYYY-MM-DD (default today)")
	desc := fs.String("desc", "", "free-text description")
	payment := fs.String("payment", "", "payment method")
	tags := fs.String("tags", "", "comma-separated tags")
	if err := fs.Parse(args); err != nil {
		return err
	}

	entry, err := ParseEntry(strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}

	date := models.DateOf(a.now())
	if *dateStr != "" {
		date, err = models.ParseDate(*dateStr)
		if err != nil {
			return err
		}
	}

	user, err := a.activeUser(ctx)
	if err != nil {
		return err
	}

	draft := models.Draft{
		Title:         entry.Title,
		Amount:        entry.Amount,
		Category:      *category,
		Date:          date,
		Description:   *desc,
		PaymentMethod: *payment,
		Tags:          splitTags(*tags),
	}
	expense, err := models.NewExpense(draft, user.ID, a.now())
	if err != nil {
		return err
	}

	if err := a.expenses.Add(ctx, expense, user.ID); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Added %q $%s %s on %s (id %s)\n",
		expense.Title, expense.Amount.StringFixed(2), expense.Category, expense.Date, expense.ID)
	return nil
}

func (a *App) handleList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	limit := fs.Int("limit", 0, "show at most n expenses (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.activeUser(ctx)
	if err != nil {
		return err
	}

	now := a.now()
	summary := stats.Compute(a.expenses.List(), user.ID, now)
	if len(summary.SortedList) == 0 {
		fmt.Fprintln(a.stdout, "No expenses yet.")
		return nil
	}

	list := summary.SortedList
	if *limit > 0 && *limit < len(list) {
		list = list[:*limit]
	}

	for _, e := range list {
		line := fmt.Sprintf("%s  %s  $%s  %-8s  %s",
			e.ID, e.Date, e.Amount.StringFixed(2), e.Category, e.Title)
		if !e.CreatedAt.IsZero() {
			line += fmt.Sprintf("  (%s)", relativeTime(e.CreatedAt, now))
		}
		fmt.Fprintln(a.stdout, line)
	}
	fmt.Fprintf(a.stdout, "%d expense(s), total $%s\n", len(summary.SortedList), summary.Total.StringFixed(2))
	return nil
}

func (a *App) handleDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pennywise delete <id>")
	}
	id := args[0]

	user, err := a.activeUser(ctx)
	if err != nil {
		return err
	}

	if err := a.expenses.Delete(ctx, id, user.ID); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Deleted %s\n", id)
	return nil
}

func (a *App) handleClear(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.activeUser(ctx)
	if err != nil {
		return err
	}

	if !*yes {
		ok, err := a.confirm(fmt.Sprintf("Delete all expenses for %s? [y/N]: ", user.Email))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.stdout, "Aborted.")
			return nil
		}
	}

	if err := a.expenses.Clear(ctx, user.ID); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "All expenses deleted.")
	return nil
}

func (a *App) handleSummary(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	watch := fs.Bool("watch", false, "keep the summary on screen, refreshing the clock periodically")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.activeUser(ctx)
	if err != nil {
		return err
	}

	a.renderSummary(user)
	if !*watch {
		return nil
	}
	return a.watchSummary(ctx, user)
}

func (a *App) renderSummary(user *models.User) {
	now := a.now()
	summary := stats.Compute(a.expenses.List(), user.ID, now)

	fmt.Fprintf(a.stdout, "Summary for %s at %s\n", user.Email, now.Format("2006-01-02 15:04"))
	fmt.Fprintf(a.stdout, "  Total spent:       $%s\n", summary.Total.StringFixed(2))
	fmt.Fprintf(a.stdout, "  This month:        $%s\n", summary.MonthlyTotal.StringFixed(2))
	fmt.Fprintf(a.stdout, "  Categories used:   %d\n", summary.CategoryCount)
	fmt.Fprintf(a.stdout, "  Expenses (7 days): %d\n", summary.WeeklyCount)
	fmt.Fprintf(a.stdout, "  Average / expense: $%s\n", summary.AveragePerExpense.StringFixed(2))
}

func (a *App) handleExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	out := fs.String("o", "", "output file (default expenses_<date>.csv)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.activeUser(ctx)
	if err != nil {
		return err
	}

	summary := stats.Compute(a.expenses.List(), user.ID, a.now())
	data, err := GenerateExpensesCSV(summary.SortedList)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = fmt.Sprintf("expenses_%s.csv", a.now().Format("2006-01-02"))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(a.stdout, "Exported %d expense(s) to %s\n", len(summary.SortedList), path)
	return nil
}

func (a *App) handleChart(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	out := fs.String("o", "", "output file (default chart_<month>.png)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.activeUser(ctx)
	if err != nil {
		return err
	}

	totals := stats.CategoryTotals(a.expenses.List(), user.ID)
	data, err := RenderCategoryChart(totals, a.now().Format("January 2006"))
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = fmt.Sprintf("chart_%s.png", a.now().Format("2006-01"))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(a.stdout, "Wrote category chart to %s\n", path)
	return nil
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
