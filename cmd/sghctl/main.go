// Command sghctl is a terminal client for the Smart Global Hub API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"smart-global-hub/internal/dto"
	"smart-global-hub/pkg/client"
	"smart-global-hub/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const usage = `usage: sghctl [-api URL] [-session FILE] <command> [flags]

commands:
  login        -email -password
  logout
  whoami
  agents       [-page -limit -search]
  suppliers    [-page -limit -search]
  select       <agent|supplier> <id>   (empty id clears)
  transactions [-page -limit -status -currency -from -to]
  quote        -amount -buy -sell [-commission]
  pay          <agent|supplier> -amount -currency [-tx id,id] [-direct]
  balance      <agent|supplier> [id]
  earnings     [-days]
`

type app struct {
	client *client.Client
	out    *tabwriter.Writer
	logger *zap.Logger
}

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api", envOr("SGH_API_URL", "http://localhost:8080"), "API base URL")
	sessionPath := flag.String("session", "", "session file (default: user config dir)")
	verbose := flag.Bool("v", false, "log requests")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	log, err := logger.New(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	path := *sessionPath
	if path == "" {
		if path, err = client.DefaultSessionPath(); err != nil {
			log.Fatal("Failed to resolve session path", zap.Error(err))
		}
	}
	session, err := client.LoadSession(path)
	if err != nil {
		log.Fatal("Failed to load session", zap.Error(err))
	}

	a := &app{
		client: client.New(*apiURL, session,
			client.WithLogger(log),
			client.WithUnauthorizedHandler(func() {
				fmt.Fprintln(os.Stderr, "session expired, run `sghctl login` again")
			}),
		),
		out:    tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0),
		logger: log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	_ = a.out.Flush()
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx, args)
	case "logout":
		if err := a.client.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "logged out")
		return nil
	case "whoami":
		return a.whoami(ctx)
	case "agents":
		return a.counterparties(ctx, client.Agent, args)
	case "suppliers":
		return a.counterparties(ctx, client.Supplier, args)
	case "select":
		return a.selectCounterparty(args)
	case "transactions":
		return a.transactions(ctx, args)
	case "quote":
		return a.quote(ctx, args)
	case "pay":
		return a.pay(ctx, args)
	case "balance":
		return a.balance(ctx, args)
	case "earnings":
		return a.earnings(ctx, args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", os.Getenv("SGH_EMAIL"), "account email")
	password := fs.String("password", os.Getenv("SGH_PASSWORD"), "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("login requires -email and -password")
	}

	user, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "logged in as %s (%s)\n", user.Email, user.Role)
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	if !a.client.Session().Authenticated() {
		return errors.New("not logged in")
	}
	user, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "id\t%s\nname\t%s\nemail\t%s\nrole\t%s\ntenant\t%s\n", user.ID, user.Name, user.Email, user.Role, user.TenantID)
	return nil
}

func (a *app) counterparties(ctx context.Context, party client.Party, args []string) error {
	fs := flag.NewFlagSet(string(party), flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", dto.DefaultLimit, "page size")
	search := fs.String("search", "", "name filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := a.client.ListCounterparties(ctx, party, *page, *limit, *search)
	if err != nil {
		return err
	}

	selected := a.client.Session().Selection(string(party))
	fmt.Fprintln(a.out, "\tID\tNAME\tPHONE\tEMAIL")
	for _, c := range p.Data {
		mark := ""
		if c.ID == selected {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s\t%s\t%s\t%s\t%s\n", mark, c.ID, c.Name, c.Phone, c.Email)
	}
	a.footer(p.Meta)
	return nil
}

func (a *app) selectCounterparty(args []string) error {
	if len(args) == 0 {
		return errors.New("select requires agent or supplier")
	}
	party, err := parseParty(args[0])
	if err != nil {
		return err
	}
	id := ""
	if len(args) > 1 {
		id = args[1]
	}

	session := a.client.Session()
	session.Select(string(party), id)
	if err := session.Save(); err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintf(a.out, "%s selection cleared\n", party)
	} else {
		fmt.Fprintf(a.out, "%s %s selected\n", party, id)
	}
	return nil
}

func (a *app) transactions(ctx context.Context, args []string) error {
	session := a.client.Session()

	fs := flag.NewFlagSet("transactions", flag.ContinueOnError)
	q := client.TransactionQuery{}
	fs.IntVar(&q.Page, "page", 1, "page number")
	fs.IntVar(&q.Limit, "limit", dto.DefaultLimit, "page size")
	fs.StringVar(&q.Status, "status", "", "pending, partial or paid")
	fs.StringVar(&q.Currency, "currency", "", "quote currency")
	fs.StringVar(&q.From, "from", "", "created from (YYYY-MM-DD)")
	fs.StringVar(&q.To, "to", "", "created to, inclusive (YYYY-MM-DD)")
	fs.StringVar(&q.AgentID, "agent", session.Selection(string(client.Agent)), "agent id")
	fs.StringVar(&q.SupplierID, "supplier", session.Selection(string(client.Supplier)), "supplier id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, overview, err := a.client.ListTransactions(ctx, q)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "ID\tPAIR\tBASE\tSELL\tBUY\tEARNINGS\tAGENT\tSUPPLIER")
	for _, t := range p.Data {
		fmt.Fprintf(a.out, "%s\t%s/%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.BaseCurrency, t.QuoteCurrency, t.BaseAmount, t.QuoteAmountSell, t.QuoteAmountBuy,
			t.TotalEarnings, t.AgentStatus, t.SupplierStatus)
	}
	a.footer(p.Meta)

	if len(overview) > 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "CURRENCY\tCOUNT\tEARNINGS\tAGENT OWES\tWE OWE")
		for _, o := range overview {
			fmt.Fprintf(a.out, "%s\t%d\t%s\t%s\t%s\n", o.QuoteCurrency, o.Count, o.TotalEarnings, o.AgentOutstanding, o.SupplierOutstanding)
		}
	}
	return nil
}

func (a *app) quote(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	amount := fs.String("amount", "", "base amount")
	buy := fs.String("buy", "", "buy rate")
	sell := fs.String("sell", "", "sell rate")
	commission := fs.String("commission", "0", "commission percent")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := dto.QuoteRequest{}
	for _, f := range []struct {
		name, raw string
		dst       *decimal.Decimal
	}{
		{"amount", *amount, &req.BaseAmount},
		{"buy", *buy, &req.BuyRate},
		{"sell", *sell, &req.SellRate},
		{"commission", *commission, &req.CommissionRate},
	} {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return fmt.Errorf("invalid -%s %q", f.name, f.raw)
		}
		*f.dst = d
	}

	q, err := a.client.Quote(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "agent pays\t%s\nsupplier gets\t%s\ncommission\t%s\nprofit\t%s\ntotal earnings\t%s\n",
		q.AgentDue, q.SupplierDue, q.Commission, q.Profit, q.TotalEarnings)
	return nil
}

func (a *app) pay(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("pay requires agent or supplier")
	}
	party, err := parseParty(args[0])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("pay", flag.ContinueOnError)
	id := fs.String("id", a.client.Session().Selection(string(party)), "counterparty id")
	amount := fs.String("amount", "", "payment amount")
	currency := fs.String("currency", "", "payment currency")
	txs := fs.String("tx", "", "comma separated transaction ids")
	direct := fs.Bool("direct", false, "credit the balance only")
	reference := fs.String("ref", "", "payment reference")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("no %s selected, pass -id", party)
	}

	value, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("invalid -amount %q", *amount)
	}

	req := dto.PaymentRequest{
		CounterpartyID: *id,
		Currency:       strings.ToUpper(*currency),
		Amount:         value,
		Reference:      *reference,
	}
	if *txs != "" {
		req.TransactionIDs = strings.Split(*txs, ",")
	}

	p, err := a.client.RecordPayment(ctx, party, req, *direct)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "payment\t%s\napplied\t%s %s\ncredited\t%s %s\n", p.ID, p.AppliedAmount, p.Currency, p.CreditedAmount, p.Currency)
	for _, al := range p.Allocations {
		fmt.Fprintf(a.out, "  %s\t%s\n", al.TransactionID, al.Amount)
	}
	return nil
}

func (a *app) balance(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("balance requires agent or supplier")
	}
	party, err := parseParty(args[0])
	if err != nil {
		return err
	}
	id := a.client.Session().Selection(string(party))
	if len(args) > 1 {
		id = args[1]
	}
	if id == "" {
		return fmt.Errorf("no %s selected", party)
	}

	balances, err := a.client.Balances(ctx, party, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "CURRENCY\tCREDIT")
	for _, b := range balances {
		fmt.Fprintf(a.out, "%s\t%s\n", b.Currency, b.Amount)
	}
	return nil
}

func (a *app) earnings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("earnings", flag.ContinueOnError)
	days := fs.Int("days", 30, "window in days")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rows, err := a.client.EarningsStatistics(ctx, *days)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "DAY\tCURRENCY\tCOUNT\tPROFIT\tCOMMISSION\tTOTAL")
	for _, r := range rows {
		fmt.Fprintf(a.out, "%s\t%s\t%d\t%s\t%s\t%s\n", r.Day, r.QuoteCurrency, r.Transactions, r.Profit, r.Commission, r.TotalEarnings)
	}
	return nil
}

func (a *app) footer(m dto.Meta) {
	fmt.Fprintf(a.out, "page %d of %d, %d total\n", m.CurrentPage, m.TotalPages, m.TotalItems)
}

func parseParty(raw string) (client.Party, error) {
	switch client.Party(strings.ToLower(raw)) {
	case client.Agent:
		return client.Agent, nil
	case client.Supplier:
		return client.Supplier, nil
	}
	return "", fmt.Errorf("expected agent or supplier, got %q", raw)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
