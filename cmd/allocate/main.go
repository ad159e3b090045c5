// Command allocate answers one allocation request against an inventory
// snapshot file and prints the JSON reply.
//
//	allocate -snapshot shop.json -subject fulfillment.buckets.determine < request.json
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dukerupert/consign/internal"
	"github.com/dukerupert/consign/internal/delivery"
	"github.com/dukerupert/consign/internal/domain"
	"github.com/dukerupert/consign/internal/handler"
	"github.com/dukerupert/consign/internal/memory"
)

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("allocate", flag.ContinueOnError)
	snapshotPath := fs.String("snapshot", os.Getenv("SNAPSHOT_PATH"), "inventory snapshot file")
	subject := fs.String("subject", handler.SubjectDetermineBuckets, "request subject")
	requestPath := fs.String("request", "-", "request body file, - for stdin")
	at := fs.String("at", "", "evaluate availability at this RFC 3339 time instead of now")
	logLevel := fs.String("log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *snapshotPath == "" {
		return fmt.Errorf("-snapshot is required")
	}

	logger := internal.NewLogger(os.Stderr, "dev", *logLevel)

	store, err := memory.LoadSnapshotFile(*snapshotPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	clock := domain.SystemClock
	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			return fmt.Errorf("invalid -at: %w", err)
		}
		clock = domain.FixedClock(t)
	}

	body, err := readRequest(*requestPath, stdin)
	if err != nil {
		return err
	}

	splitter := delivery.NewSplitter(store, store, store,
		delivery.WithClock(clock),
		delivery.WithLogger(logger),
	)
	reply := handler.NewAllocationHandler(splitter, logger, nil, 0).
		Serve(context.Background(), *subject, body)

	var out bytes.Buffer
	if err := json.Indent(&out, reply, "", "  "); err != nil {
		return fmt.Errorf("failed to format reply: %w", err)
	}
	out.WriteByte('\n')
	if _, err := stdout.Write(out.Bytes()); err != nil {
		return err
	}

	var env handler.ErrorEnvelope
	if json.Unmarshal(reply, &env) == nil && env.Error.Code != "" {
		return fmt.Errorf("request failed: %s", env.Error.Code)
	}
	return nil
}

func readRequest(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request: %w", err)
	}
	return data, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
