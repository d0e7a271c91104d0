package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/services"
	"dashboard/internal/utils"

	"github.com/spf13/cobra"
)

// listing is a page rendered for the terminal.
type listing struct {
	result    any
	headers   []string
	rows      [][]string
	total     int
	pages     int
	current   int
	summaries map[string]float64
}

func toListing[T any](res query.Result[T], headers []string, row func(T) []string) listing {
	rows := make([][]string, 0, len(res.Items))
	for _, it := range res.Items {
		rows = append(rows, row(it))
	}
	return listing{
		result:    res,
		headers:   headers,
		rows:      rows,
		total:     res.TotalItems,
		pages:     res.TotalPages,
		current:   res.CurrentPage,
		summaries: res.Summaries,
	}
}

type lister func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error)

var listers = map[string]lister{
	"courses": func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error) {
		res, err := reg.Courses("cli").List(ctx, c, page, size)
		return toListing(res, []string{"ID", "STATUS", "START", "TEACHER", "STUDENTS", "NAME"}, func(x models.Course) []string {
			return []string{x.ID, x.Status, x.StartDate, x.Teacher.Name, fmt.Sprintf("%d/%d", x.TotalStudents, x.MaxStudents), x.Name}
		}), err
	},
	"fyp": func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error) {
		res, err := reg.FYP("cli").List(ctx, c, page, size)
		return toListing(res, []string{"ID", "STATUS", "START", "PRICE", "PAID", "TITLE"}, func(x models.FinalYearProject) []string {
			return []string{x.ID, x.Status, x.StartDate, utils.FormatUSD(x.Price), utils.FormatUSD(x.AmountPaid), x.Title}
		}), err
	},
	"contracts": func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error) {
		res, err := reg.Contracts("cli").List(ctx, c, page, size)
		return toListing(res, []string{"ID", "STATUS", "START", "END", "MONTHLY", "COMPANY", "SUPERVISOR"}, func(x models.Contract) []string {
			return []string{x.ID, x.Status, x.StartDate, utils.Fallback(x.EndDate, "-"), utils.FormatUSD(x.MonthlyRate), x.Company.Name, x.Supervisor.Name}
		}), err
	},
	"projects": func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error) {
		res, err := reg.Projects("cli").List(ctx, c, page, size)
		return toListing(res, []string{"ID", "PRIORITY", "STATUS", "START", "BUDGET", "TITLE"}, func(x models.Project) []string {
			return []string{x.ID, x.Priority, x.Status, x.StartDate, utils.FormatUSD(x.Budget), x.Title}
		}), err
	},
	"invoices": func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error) {
		res, err := reg.Invoices("cli").List(ctx, c, page, size)
		return toListing(res, []string{"ID", "DATE", "TYPE", "CATEGORY", "STATUS", "AMOUNT", "DESCRIPTION"}, func(x models.Invoice) []string {
			return []string{x.ID, x.Date, x.Type, x.Category, utils.Fallback(x.Status, "-"), utils.FormatUSD(x.Amount), x.Description}
		}), err
	},
	"expenses": func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error) {
		res, err := reg.Expenses("cli").List(ctx, c, page, size)
		return toListing(res, []string{"ID", "DATE", "CATEGORY", "STATUS", "AMOUNT", "DESCRIPTION"}, func(x models.CompanyExpense) []string {
			return []string{x.ID, x.Date, x.Category, x.Status, utils.FormatUSD(x.Amount), x.Description}
		}), err
	},
	"income": func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error) {
		res, err := reg.Income("cli").List(ctx, c, page, size)
		return toListing(res, []string{"ID", "DATE", "SHIFT", "CATEGORY", "AMOUNT", "DESCRIPTION"}, func(x models.Income) []string {
			return []string{x.ID, x.Date, x.ShiftID, x.Category, utils.FormatUSD(x.Amount), x.Description}
		}), err
	},
	"tasks": func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error) {
		res, err := reg.Personal("cli").ListTasks(ctx, c, page, size)
		return toListing(res, []string{"ID", "USER", "DUE", "PRIORITY", "STATUS", "DONE", "TITLE"}, func(x models.UserTask) []string {
			return []string{x.ID, x.UserID, x.DueDate, x.Priority, x.Status, fmt.Sprintf("%d%%", x.CompletionPercentage), x.Title}
		}), err
	},
	"internal-tasks": func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error) {
		res, err := reg.Personal("cli").ListInternalTasks(ctx, c, page, size)
		return toListing(res, []string{"ID", "USER", "ASSIGNED", "TYPE", "STATUS", "BONUS", "TITLE"}, func(x models.InternalTask) []string {
			return []string{x.ID, x.UserID, x.AssignedDate, x.Type, x.Status, utils.FormatUSD(x.BonusAmount), x.Title}
		}), err
	},
	"notifications": func(ctx context.Context, reg services.Registry, c query.Criteria, page, size int) (listing, error) {
		res, err := reg.Notifications("cli").List(ctx, c, page, size)
		return toListing(res, []string{"ID", "DATE", "TYPE", "READ", "TITLE"}, func(x models.AdminNotification) []string {
			return []string{x.ID, x.Date, x.Type, fmt.Sprint(x.Read), x.Title}
		}), err
	},
}

func domainNames() []string {
	names := make([]string, 0, len(listers))
	for k := range listers {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// buildCriteria merges the shorthand flags with repeated -f key=value filters.
func buildCriteria(search, status string, filters []string) (query.Criteria, error) {
	c := query.Criteria{}
	for _, f := range filters {
		k, v, ok := utils.SplitKeyValue(f)
		if !ok {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", f)
		}
		c[k] = v
	}
	if search != "" {
		c["search"] = search
	}
	if status != "" {
		c["status"] = status
	}
	return c, nil
}

var listCmd = &cobra.Command{
	Use:       "list <domain>",
	Short:     "List one collection with filters, sorting, summaries and paging",
	GroupID:   "query",
	Args:      cobra.ExactArgs(1),
	ValidArgs: domainNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, ok := listers[strings.ToLower(args[0])]
		if !ok {
			return fmt.Errorf("unknown domain %q (known: %s)", args[0], strings.Join(domainNames(), ", "))
		}

		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		filters, _ := cmd.Flags().GetStringArray("filter")
		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("page-size")

		criteria, err := buildCriteria(search, status, filters)
		if err != nil {
			return err
		}
		for _, k := range []string{"startDate", "endDate"} {
			if v := criteria.Get(k); v != "" && !utils.IsISODate(v) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s=%q is not YYYY-MM-DD and will compare as plain text\n", k, v)
			}
		}

		out, err := run(cmd.Context(), dash.Registry, criteria, page, size)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), out.result)
		}
		printListing(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	listCmd.Flags().String("search", "", "case-insensitive text search")
	listCmd.Flags().StringP("status", "s", "", "filter by status")
	listCmd.Flags().StringArrayP("filter", "f", nil, "extra filter as key=value (repeatable), e.g. -f startDate=2024-01-01")
	listCmd.Flags().Int("page", 1, "page number, 1-indexed")
	listCmd.Flags().Int("page-size", query.DefaultPageSize, "records per page")
}
