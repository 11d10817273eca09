package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/antonvlasov/swoop/internal/platform/tui"
	"github.com/antonvlasov/swoop/internal/storage"
)

var (
	flagTop   int
	flagPlain bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse run records for a profile",
	Long: `Open the run-records browser for the active profile. Tab switches
between best and most recent runs.

With --plain the records are printed as text instead.

Examples:
  swoop records
  swoop records --plain --top 25
  swoop records --profile alice`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagTop, "top", 10, "Number of runs to show with --plain")
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print records as text instead of the browser")
}

func runRecords(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printRecords(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunRecords(store, flagProfile, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running records browser: %v\n", err)
		os.Exit(1)
	}
}

func printRecords(store *storage.Store) {
	rec, err := store.LoadRecord(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving record: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.TopRuns(flagProfile, flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Records - %s\n", flagProfile)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'swoop play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-10s  %s\n", "Rank", "Score", "Streak", "Phase", "Continues", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-10s  %s\n", "----", "-----", "------", "-----", "---------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-8s  %-10d  %s\n",
			i+1, entry.Score, entry.BestStreak, entry.Phase, entry.ContinuesUsed, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best score: %d   Best streak: %d\n", rec.BestScore, rec.BestStreak)
}
