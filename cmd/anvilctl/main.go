// anvilctl is a thin command-line front end over the anvil library: parse
// a file, print its canonical formatting, or report its errors. It is
// explicitly outside spec.md's core scope (§1) but gives the library a
// runnable shape, the way the teacher codebase pairs its core packages
// with small cobra-based commands.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/badkraft/anvil/internal/audit"
	"github.com/badkraft/anvil/internal/config"
	"github.com/badkraft/anvil/internal/module"
	"github.com/badkraft/anvil/internal/parser"
)

func main() {
	root := &cobra.Command{
		Use:   "anvilctl",
		Short: "Parse and inspect Anvil configuration sources",
	}
	root.AddCommand(parseCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseCommand() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a .aml/.asl file and print the resulting module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), args[0], summary)
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "print an error-code summary instead of the full error list")
	return cmd
}

func runParse(ctx context.Context, path string, summary bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", parser.CodeIoError, err)
		return err
	}

	result := parser.ParseWithBudget(string(data), dialectHint(path), config.GetErrorBudget())
	recordAttempt(ctx, path, result)

	if len(result.Errors) > 0 {
		if summary {
			for _, c := range result.Errors.Summary() {
				fmt.Fprintf(os.Stderr, "%s: %d\n", c.Code, c.Count)
			}
		} else {
			for _, e := range result.Errors {
				fmt.Fprintln(os.Stderr, e.Error())
			}
		}
		return fmt.Errorf("parse failed with %d error(s)", len(result.Errors))
	}

	m, err := module.Build(module.DeriveNamespace(path), path, result)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	fmt.Println(m.AsFormattedString())
	return nil
}

func dialectHint(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".aml":
		return "aml"
	case ".asl":
		return "asl"
	default:
		return ""
	}
}

// recordAttempt best-effort-logs a parse attempt to the audit sink when
// ANVIL_AUDIT_ENABLED is set and ANVIL_AUDIT_MODE is not "mock" (in mock
// mode nothing is recorded). A sink failure never fails the CLI command —
// auditing is observational, not load-bearing (spec.md §1 non-goals).
func recordAttempt(ctx context.Context, path string, result *parser.Result) {
	cfg := config.GetAuditConfig()
	if !cfg.Enabled || cfg.Mock {
		return
	}
	db, err := sqlx.Connect("postgres", cfg.ConnectionString)
	if err != nil {
		log.Printf("anvil: audit sink unavailable, skipping: %v", err)
		return
	}
	defer db.Close()

	sink := audit.NewSink(db)
	if _, err := sink.RecordParse(ctx, module.DeriveNamespace(path), path, result); err != nil {
		log.Printf("anvil: failed to record parse attempt: %v", err)
	}
}
