package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/sbilibin2017/gw-stock-service/internal/facades"
	"github.com/sbilibin2017/gw-stock-service/internal/models"
	pb "github.com/sbilibin2017/gw-stock-service/pkg/stock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the client
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const usage = `usage: client [-addr host:port] [-timeout d] <command> [flags]

commands:
  list   [-name caller]            list every recorded transaction
  create -symbol S -cost C         record a purchase
  version                          print build info`

// transactionsClient is the subset of the gRPC facade used by the CLI.
type transactionsClient interface {
	CreateTransaction(ctx context.Context, symbol string, purchaseCost float64) (string, error)
	ListTransactions(ctx context.Context, name string) ([]models.Transaction, error)
}

// options are the parsed command line.
type options struct {
	addr    string
	timeout time.Duration
	command string

	name   string
	symbol string
	cost   float64
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		log.Fatalf("invalid arguments: %v", err)
	}

	if opts.command == "version" {
		printBuildInfo(os.Stdout)
		return
	}

	conn, err := grpc.NewClient(opts.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to connect to %s: %v", opts.addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	if err := run(ctx, facades.NewTransactionsGRPCFacade(pb.NewStockServiceClient(conn)), opts, os.Stdout); err != nil {
		log.Fatalf("%s failed: %v", opts.command, err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseArgs parses global flags, the subcommand and its flags.
func parseArgs(args []string, errOut io.Writer) (options, error) {
	opts := options{}

	global := flag.NewFlagSet("client", flag.ContinueOnError)
	global.SetOutput(errOut)
	global.StringVar(&opts.addr, "addr", "localhost:50051", "StockService address")
	global.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Call timeout")
	if err := global.Parse(args); err != nil {
		return opts, err
	}

	rest := global.Args()
	if len(rest) == 0 {
		return opts, errors.New("missing command")
	}
	opts.command = rest[0]

	sub := flag.NewFlagSet(opts.command, flag.ContinueOnError)
	sub.SetOutput(errOut)

	switch opts.command {
	case "list":
		sub.StringVar(&opts.name, "name", "Tonic", "Caller name sent with the request")
	case "create":
		sub.StringVar(&opts.symbol, "symbol", "", "Ticker symbol")
		sub.Float64Var(&opts.cost, "cost", 0, "Purchase cost")
	case "version":
	default:
		return opts, fmt.Errorf("unknown command %q", opts.command)
	}

	if err := sub.Parse(rest[1:]); err != nil {
		return opts, err
	}
	if opts.command == "create" && opts.symbol == "" {
		return opts, errors.New("create requires -symbol")
	}
	return opts, nil
}

// run executes the command and writes its JSON result to out.
func run(ctx context.Context, client transactionsClient, opts options, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	switch opts.command {
	case "list":
		txns, err := client.ListTransactions(ctx, opts.name)
		if err != nil {
			return err
		}
		if txns == nil {
			txns = []models.Transaction{}
		}
		return enc.Encode(map[string]any{"transactions": txns})
	case "create":
		id, err := client.CreateTransaction(ctx, opts.symbol, opts.cost)
		if err != nil {
			return err
		}
		return enc.Encode(map[string]string{"id": id})
	default:
		return fmt.Errorf("unknown command %q", opts.command)
	}
}
