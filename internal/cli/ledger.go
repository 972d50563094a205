package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/gofundme/internal/database/repository"
	"github.com/jask/gofundme/internal/donation"
	"github.com/jask/gofundme/internal/testdata"
)

var ledgerLimit int

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "List donations recorded by the ledger strategy",
	Args:  cobra.NoArgs,
	RunE:  runLedger,
}

func init() {
	ledgerCmd.Flags().IntVarP(&ledgerLimit, "limit", "n", 20, "number of donations to show")
	rootCmd.AddCommand(ledgerCmd)
}

func runLedger(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if ledgerLimit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	db, err := openLedger(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewDonationRepo(db)
	ctx := cmd.Context()
	rows, err := repo.ListRecent(ctx, ledgerLimit)
	if err != nil {
		return fmt.Errorf("list donations: %w", err)
	}
	count, sum, err := repo.Total(ctx)
	if err != nil {
		return fmt.Errorf("total donations: %w", err)
	}

	out := cmd.OutOrStdout()
	currency := cfg.UI.CurrencySymbol
	if len(rows) == 0 {
		fmt.Fprintln(out, "No donations recorded.")
		return nil
	}
	for _, d := range rows {
		rec := donation.Record{ID: d.ID, DonorName: d.DonorName, Caption: d.Caption, Amount: int(d.Amount), CreatedAt: d.CreatedAt}
		fmt.Fprintf(out, "%s  %s\n", rec.CreatedAt.Local().Format(time.DateTime), rec.Headline(currency))
		if rec.Caption != "" {
			fmt.Fprintf(out, "    %s\n", rec.Caption)
		}
	}
	fmt.Fprintf(out, "%d donations, %s total\n", count, donation.FormatAmount(currency, int(sum)))
	return nil
}

var seedCount int

var ledgerSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample donations into the ledger",
	Args:  cobra.NoArgs,
	RunE:  runLedgerSeed,
}

func init() {
	ledgerSeedCmd.Flags().IntVar(&seedCount, "count", 20, "number of sample donations")
	ledgerCmd.AddCommand(ledgerSeedCmd)
}

func runLedgerSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if seedCount <= 0 {
		return fmt.Errorf("--count must be positive")
	}
	db, err := openLedger(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := testdata.SeedDonations(cmd.Context(), db, rng, seedCount, cfg.Donation.Min, cfg.Donation.Max); err != nil {
		return fmt.Errorf("seed donations: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d donations into %s\n", seedCount, cfg.Database.Path)
	return nil
}
