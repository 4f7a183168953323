// Package cli implements the registryctl commands.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/shareregistry/backoffice/internal/auth"
	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// Backend opens the services a command needs. Each opener returns a
// release func.
type Backend struct {
	Transfers func(ctx context.Context) (map[string]crud.Transfer, func(), error)
	Users     func(ctx context.Context) (auth.Repository, func(), error)
	Jobs      func(ctx context.Context) (*JobsCLI, error)
	Migrator  func(ctx context.Context) (Migrator, func(), error)
}

// Migrator applies or reverts the schema.
type Migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Version() (uint, bool, error)
}

// NewRootCommand builds the registryctl command tree.
func NewRootCommand(backend Backend) *cobra.Command {
	root := &cobra.Command{
		Use:           "registryctl",
		Short:         "Share registry back-office operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		migrateCommand(backend),
		modulesCommand(backend),
		importCommand(backend),
		exportCommand(backend),
		hashPasswordCommand(),
		createUserCommand(backend),
		renderCommand(backend),
		queueStatsCommand(backend),
	)
	return root
}

func withTransfers(cmd *cobra.Command, backend Backend, fn func(*TransferCLI) error) error {
	transfers, release, err := backend.Transfers(cmd.Context())
	if err != nil {
		return err
	}
	defer release()
	tc, err := NewTransferCLI(transfers)
	if err != nil {
		return err
	}
	return fn(tc)
}

func migrateCommand(backend Backend) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or revert the database schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, release, err := backend.Migrator(cmd.Context())
			if err != nil {
				return err
			}
			defer release()
			run := m.Up
			if len(args) == 1 && args[0] == "down" {
				run = m.Down
			}
			if err := run(cmd.Context()); err != nil {
				return err
			}
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			if dirty {
				return fmt.Errorf("schema version %d is dirty", version)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema version", version)
			return nil
		},
	}
}

func modulesCommand(backend Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List module slugs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withTransfers(cmd, backend, func(tc *TransferCLI) error {
				tc.Modules(cmd.OutOrStdout())
				return nil
			})
		},
	}
}

func importCommand(backend Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "import <module> <file.xlsx>",
		Short: "Import a workbook into a module",
		Long: `Import reads the first sheet of the workbook, skips the header row and
creates one record per row. Failed rows are written to a report in the
storage directory.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTransfers(cmd, backend, func(tc *TransferCLI) error {
				_, err := tc.Import(cmd.Context(), args[0], args[1], cmd.OutOrStdout())
				return err
			})
		},
	}
}

func exportCommand(backend Backend) *cobra.Command {
	var scope int64
	cmd := &cobra.Command{
		Use:   "export <module> <file.xlsx>",
		Short: "Export module records to a workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTransfers(cmd, backend, func(tc *TransferCLI) error {
				_, err := tc.Export(cmd.Context(), args[0], scope, args[1], cmd.OutOrStdout())
				return err
			})
		},
	}
	cmd.Flags().Int64Var(&scope, "scope", 0, "parent id for scoped modules")
	return cmd
}

func hashPasswordCommand() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for seeding users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), cost)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return err
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}

func createUserCommand(backend Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "create-user <email> <password>",
		Short: "Create an active back-office user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, release, err := backend.Users(cmd.Context())
			if err != nil {
				return err
			}
			defer release()
			return NewUsersCLI(repo).CreateUser(cmd.Context(), args[0], args[1], cmd.OutOrStdout())
		},
	}
}

func renderCommand(backend Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "render <kind> <id>",
		Short: "Queue a document render",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("id must be a positive integer")
			}
			jc, err := backend.Jobs(cmd.Context())
			if err != nil {
				return err
			}
			defer jc.Close()
			return jc.Render(cmd.Context(), args[0], id, cmd.OutOrStdout())
		},
	}
}

func queueStatsCommand(backend Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "queue-stats",
		Short: "Show job queue counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jc, err := backend.Jobs(cmd.Context())
			if err != nil {
				return err
			}
			defer jc.Close()
			return jc.Stats(cmd.OutOrStdout())
		},
	}
}
