package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/service"
)

const defaultSampleCount = 1000

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrAborted        = errors.New("aborted")
)

type Services struct {
	Maintenance service.Maintenance
	Auth        service.Auth
}

// CLI dispatches sentinelctl subcommands.
type CLI struct {
	svc Services
	in  io.Reader
	out io.Writer
}

func New(svc Services, in io.Reader, out io.Writer) *CLI {
	return &CLI{svc: svc, in: in, out: out}
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()
		return ErrUnknownCommand
	}

	switch args[0] {
	case "clear-logs":
		return c.clearLogs(ctx, args[1:])
	case "populate-sample-data":
		return c.populate(ctx, args[1:])
	case "performance":
		return c.performance(ctx, args[1:])
	case "create-user":
		return c.createUser(ctx, args[1:])
	case "help", "-h", "--help":
		c.usage()
		return nil
	}

	c.usage()
	return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
}

func (c *CLI) usage() {
	fmt.Fprintln(c.out, `Usage: sentinelctl <command> [flags]

Commands:
  clear-logs [--yes]                                  delete all log entries and anomalies
  populate-sample-data [--clear] [--count N]          insert synthetic logs from the last 24h
  performance --analyze                               time the dashboard aggregation queries
  create-user --username U --password P [--admin]     create an operator account`)
}

func (c *CLI) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

func (c *CLI) clearLogs(ctx context.Context, args []string) error {
	fs := c.flagSet("clear-logs")
	yes := fs.Bool("yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logs, anomalies, err := c.svc.Maintenance.Counts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Found %d log entries and %d anomalies\n", logs, anomalies)

	if logs == 0 && anomalies == 0 {
		fmt.Fprintln(c.out, "Nothing to delete")
		return nil
	}

	if !*yes && !c.confirm("This will delete ALL log entries and anomalies. Continue? [y/N]: ") {
		fmt.Fprintln(c.out, "Operation cancelled")
		return ErrAborted
	}

	deletedLogs, deletedAnomalies, err := c.svc.Maintenance.ClearLogs(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Deleted %d anomalies\nDeleted %d log entries\nUsers were preserved\n", deletedAnomalies, deletedLogs)
	return nil
}

func (c *CLI) confirm(prompt string) bool {
	fmt.Fprint(c.out, prompt)
	answer, _ := bufio.NewReader(c.in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func (c *CLI) populate(ctx context.Context, args []string) error {
	fs := c.flagSet("populate-sample-data")
	clearFirst := fs.Bool("clear", false, "clear existing logs first")
	count := fs.Int("count", defaultSampleCount, "number of logs to create")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count < 0 {
		return fmt.Errorf("count must not be negative")
	}

	if *clearFirst {
		logs, anomalies, err := c.svc.Maintenance.ClearLogs(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Cleared %d log entries and %d anomalies\n", logs, anomalies)
	}

	created, err := c.svc.Maintenance.PopulateSampleData(ctx, *count)
	fmt.Fprintf(c.out, "Created %d sample log entries\n", created)
	return err
}

func (c *CLI) performance(ctx context.Context, args []string) error {
	fs := c.flagSet("performance")
	analyze := fs.Bool("analyze", false, "time each aggregation query")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*analyze {
		fmt.Fprintln(c.out, "Nothing to do, pass --analyze")
		return nil
	}

	timings := c.svc.Maintenance.AnalyzePerformance(ctx)
	printTimings(c.out, timings)

	for _, t := range timings {
		if t.Err != "" {
			return fmt.Errorf("query %s failed: %s", t.Name, t.Err)
		}
	}
	return nil
}

func printTimings(out io.Writer, timings []domain.QueryTiming) {
	fmt.Fprintln(out, "Performance analysis:")
	for _, t := range timings {
		if t.Err != "" {
			fmt.Fprintf(out, "  %-28s FAILED: %s\n", t.Name, t.Err)
			continue
		}
		fmt.Fprintf(out, "  %-28s %8.2f ms\n", t.Name, float64(t.Duration.Microseconds())/1000)
	}
}

func (c *CLI) createUser(ctx context.Context, args []string) error {
	fs := c.flagSet("create-user")
	username := fs.String("username", "", "login name")
	password := fs.String("password", "", "password, at least 8 characters")
	email := fs.String("email", "", "email address")
	admin := fs.Bool("admin", false, "grant admin rights")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("--username and --password are required")
	}

	id, err := c.svc.Auth.CreateUser(ctx, domain.NewUser{
		Username: *username,
		Password: *password,
		Email:    *email,
		IsAdmin:  *admin,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created user %q with id %d\n", *username, id)
	return nil
}
