package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Astemirdum/library-circulation/library/config"
	"github.com/Astemirdum/library-circulation/library/internal/domain"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/library/internal/service"
	"github.com/Astemirdum/library-circulation/library/migrations"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type env struct {
	cfg    config.Config
	log    *zap.Logger
	db     *sqlx.DB
	policy domain.Policy
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "libraryctl",
		Short:         "Maintenance tasks for the library circulation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				return errors.Wrap(err, "load .env")
			}
			e.cfg = config.NewConfig()
			e.log = logger.NewLogger(e.cfg.Log, "libraryctl")
			policy, err := e.cfg.Policy.Domain()
			if err != nil {
				return err
			}
			e.policy = policy
			// opening the pool applies pending migrations
			e.db, err = postgres.NewPostgresDB(cmd.Context(), &e.cfg.Database, migrations.MigrationFiles)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.db != nil {
				_ = e.db.Close()
			}
		},
	}
	root.AddCommand(newMigrateCmd(e), newOverdueCmd(e), newWaiveCmd(e))
	return root
}

func (e *env) service() (*service.Service, func(), error) {
	repo, err := repository.NewRepository(e.db, e.log)
	if err != nil {
		return nil, nil, err
	}
	if !e.cfg.Kafka.Enabled() {
		return service.NewService(repo, nil, e.policy, e.log), func() {}, nil
	}
	producer, err := kafka.NewProducer(e.cfg.Kafka)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kafka producer")
	}
	pub := kafka.NewPublisher(producer, kafka.EventsTopic, circuit_breaker.New(10, 10*time.Second, 0.5, 1))
	return service.NewService(repo, pub, e.policy, e.log), func() { _ = producer.Close() }, nil
}

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e.log.Info("migrations applied", zap.String("db", e.cfg.Database.NameDB))
			return nil
		},
	}
}

func newOverdueCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List active loans past their due date with the fine accrued so far",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := e.service()
			if err != nil {
				return err
			}
			defer closeFn()

			loans, err := svc.ListOverdueLoans(cmd.Context())
			if err != nil {
				return err
			}
			now := time.Now().UTC()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LOAN\tSTUDENT\tCOPY\tDUE\tDAYS\tFINE")
			for _, l := range loans {
				fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%d\t%s\n",
					l.ID, l.StudentID, l.BookCopyID, l.DueDate.Format(time.DateOnly),
					domain.DaysOverdue(l.DueDate, now),
					domain.CalculateFine(l, now, e.policy.DailyFineRate).StringFixed(2))
			}
			return w.Flush()
		},
	}
}

func newWaiveCmd(e *env) *cobra.Command {
	var (
		loanID  int64
		staffID int64
		reason  string
	)
	cmd := &cobra.Command{
		Use:   "waive",
		Short: "Waive all pending fines of a loan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := e.service()
			if err != nil {
				return err
			}
			defer closeFn()

			var by *int64
			if staffID > 0 {
				by = &staffID
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			n, err := svc.WaiveFine(ctx, loanID, by, reason)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "waived %d fine(s) on loan %d\n", n, loanID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&loanID, "loan", 0, "loan id")
	cmd.Flags().Int64Var(&staffID, "staff", 0, "staff user id recorded as waiver")
	cmd.Flags().StringVar(&reason, "reason", "", "reason for waiving")
	_ = cmd.MarkFlagRequired("loan")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}
