package main

import (
	"bufio"
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"spenderbender/internal/config"
	applog "spenderbender/internal/log"
	"spenderbender/internal/models"
	"spenderbender/internal/storage"
	"spenderbender/internal/viewmodel"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

func main() {
	// .env is optional; the environment alone is enough.
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("spenderbender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dbPath := fs.String("db", cfg.DatabasePath(), "Path to database file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: spenderbender [-db <db_path>] <command> [flags]")
		fmt.Fprintln(stderr, "Commands:")
		fmt.Fprintln(stderr, "  record  Record a new expense")
		fmt.Fprintln(stderr, "  list    List every recorded expense")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := cfg.LogConfig()
	logCfg.Output = stderr
	applog.SetDefault(applog.New(logCfg))

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	if cmd != "record" && cmd != "list" {
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}

	db, err := storage.NewDB(*dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if cmd == "record" {
		return runRecord(db, cmdArgs, stdin, stdout, stderr)
	}
	return runList(db, cmdArgs, stdout, stderr)
}

func runRecord(db *storage.DB, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Expense name (prompted if omitted)")
	amount := fs.String("amount", "", "Amount spent (prompted if omitted)")
	date := fs.String("date", "", "Date incurred as YYYY-MM-DD (default today)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	vm := viewmodel.NewTransactionViewModel(db)
	p := newPrompter(stdin, stdout)

	if *name == "" {
		line, err := p.readLine("Name: ")
		if err != nil {
			return fmt.Errorf("failed to read name: %w", err)
		}
		*name = line
	}
	if err := vm.SetName(*name); err != nil {
		return fmt.Errorf("name: %w", err)
	}

	if *amount == "" {
		line, err := p.readLine("Amount: ")
		if err != nil {
			return fmt.Errorf("failed to read amount: %w", err)
		}
		*amount = line
	}
	if err := vm.SetAmountText(*amount); err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	if *date != "" {
		d, err := models.ParseDate(*date)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		if err := vm.SetIncurred(d); err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	if !vm.ValidateFields() {
		return fmt.Errorf("expense not recorded: %w", vm.Validate())
	}

	saved, err := vm.AddExpense()
	if err != nil {
		return fmt.Errorf("failed to record expense: %w", err)
	}

	fmt.Fprintf(stdout, "Expense %q recorded with ID %d\n", saved.Name, saved.ID)
	return nil
}

func runList(db *storage.DB, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list := viewmodel.NewExpenseListViewModel(db)
	if err := list.Load(); err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}

	if list.Len() == 0 {
		fmt.Fprintln(stdout, "No expenses recorded.")
		return nil
	}

	expenses := list.Expenses()
	slices.SortFunc(expenses, func(a, b models.Expense) int {
		return cmp.Compare(a.ID, b.ID)
	})

	maxName := nameWidth(stdout)
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tINCURRED\tNAME\tAMOUNT")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			e.ID, e.Incurred, truncate(e.Name, maxName), decimal.NewFromFloat(e.Amount).StringFixed(2))
	}
	fmt.Fprintf(tw, "\t\tTOTAL\t%s\n", list.Total().StringFixed(2))
	return tw.Flush()
}

// nameWidth returns how many runes of a name fit on the terminal, or 0 for
// no limit when stdout is not a terminal.
func nameWidth(stdout io.Writer) int {
	f, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	// id, date and amount columns plus padding
	const fixed = 40
	return max(width-fixed, 10)
}

func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

// prompter reads answers from stdin, with line editing when it is a terminal.
type prompter struct {
	file   *os.File
	reader *bufio.Reader
	out    io.Writer
}

func newPrompter(stdin io.Reader, stdout io.Writer) *prompter {
	p := &prompter{reader: bufio.NewReader(stdin), out: stdout}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.file = f
	}
	return p
}

func (p *prompter) readLine(prompt string) (string, error) {
	if p.file != nil {
		fd := int(p.file.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return "", err
		}
		defer term.Restore(fd, state)

		t := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{p.file, p.out}, prompt)
		line, err := t.ReadLine()
		return strings.TrimSpace(line), err
	}

	// Fallback for non-terminal (e.g. tests, pipes)
	fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	fmt.Fprintln(p.out)
	return strings.TrimSpace(line), nil
}
