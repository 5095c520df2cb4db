// The cassandracrud command connects to a Cassandra cluster, discovers a
// keyspace's schema, and exposes small inspection and demo utilities on top
// of the CRUD client.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	crud "github.com/cervantes79/cassandracrud"
	"github.com/cervantes79/cassandracrud/internal/config"
	"github.com/cervantes79/cassandracrud/internal/logging"
)

var (
	configPath  string
	hosts       string
	port        int
	keyspace    string
	username    string
	password    string
	consistency string
	timeout     time.Duration
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "cassandracrud",
	Short: "Schema-aware CRUD utilities for Cassandra keyspaces",
	Long: `cassandracrud discovers every table in a keyspace through system-schema
metadata and exposes generic CRUD helpers on top of the discovered schema.`,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Dump the discovered schema for a keyspace",
	RunE:  runSchema,
}

var demoCmd = &cobra.Command{
	Use:   "demo [table]",
	Short: "Run a create/read/update/delete round trip against a table",
	Long: `Runs a full CRUD round trip against the given table (default "users"),
which must have columns id, name, and email with id as partition key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemo,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file (overrides connection flags)")
	flags.StringVar(&hosts, "hosts", "127.0.0.1", "Comma-separated cluster contact points")
	flags.IntVar(&port, "port", 9042, "CQL native transport port")
	flags.StringVarP(&keyspace, "keyspace", "k", "", "Keyspace to discover")
	flags.StringVar(&username, "username", "", "Username for plain-text auth")
	flags.StringVar(&password, "password", "", "Password for plain-text auth")
	flags.StringVar(&consistency, "consistency", "", "Consistency level (default local_quorum)")
	flags.DurationVar(&timeout, "timeout", 15*time.Second, "Per-request timeout")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// connect resolves flags/config into a connected client.
func connect(ctx context.Context) (*crud.Client, error) {
	connHosts := strings.Split(hosts, ",")
	connPort := port
	connKeyspace := keyspace
	connUser, connPass := username, password
	connConsistency := consistency
	connTimeout := timeout

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		connHosts = cfg.Hosts
		connPort = cfg.Port
		connKeyspace = cfg.Keyspace
		connUser, connPass = cfg.Username, cfg.Password
		connConsistency = cfg.Consistency
		connTimeout = cfg.Timeout
	}

	if connKeyspace == "" {
		return nil, fmt.Errorf("keyspace is required (set --keyspace or use a config file)")
	}

	level, err := config.ParseConsistency(connConsistency)
	if err != nil {
		return nil, err
	}

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	opts := []crud.Option{
		crud.WithPort(connPort),
		crud.WithConsistency(level),
		crud.WithTimeout(connTimeout),
		crud.WithLogger(logging.NewSlog(logger)),
	}
	if connUser != "" && connPass != "" {
		opts = append(opts, crud.WithCredentials(connUser, connPass))
	}

	return crud.Connect(ctx, connHosts, connKeyspace, opts...)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	client, err := connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	cat := client.Catalog()
	fmt.Printf("Keyspace: %s (%d tables)\n", cat.Keyspace(), cat.Len())

	for _, table := range cat.Tables() {
		desc, _ := cat.Lookup(table)
		fmt.Printf("\n%s (record type %s)\n", desc.Name, desc.RecordType)
		if len(desc.PartitionKeys) > 0 {
			fmt.Printf("  partition key: %s\n", strings.Join(desc.PartitionKeys, ", "))
		}

		names := make([]string, 0, len(desc.Columns))
		for name := range desc.Columns {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-24s %s\n", name, desc.Columns[name])
		}
	}

	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	table := "users"
	if len(args) == 1 {
		table = args[0]
	}

	client, err := connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Printf("insert into %s\n", table)
	if err := client.Create(ctx, table, crud.Record{"id": 1, "name": "John Doe", "email": "john@example.com"}); err != nil {
		return err
	}

	fmt.Printf("bulk insert into %s\n", table)
	err = client.Create(ctx, table, []crud.Record{
		{"id": 2, "name": "Jane Doe", "email": "jane@example.com"},
		{"id": 3, "name": "Jim Doe", "email": "jim@example.com"},
	})
	if err != nil {
		return err
	}

	records, err := client.Read(ctx, table, crud.Record{"id": []int{1, 2, 3}}, nil)
	if err != nil {
		return err
	}
	for _, rec := range records {
		fmt.Printf("  %v\n", rec)
	}

	fmt.Println("update id=1")
	if err := client.Update(ctx, table, crud.Record{"email": "johndoe@example.com"}, crud.Record{"id": 1}); err != nil {
		return err
	}

	fmt.Println("delete id=2")
	if err := client.Delete(ctx, table, crud.Record{"id": 2}); err != nil {
		return err
	}

	rows, err := client.ExecRaw(ctx, "SELECT * FROM "+table+" WHERE id = ?", 1)
	if err != nil {
		return err
	}
	fmt.Printf("raw query returned %d row(s)\n", rows.Len())

	return nil
}
