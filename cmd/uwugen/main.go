package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oisee/uwu-tables/pkg/dispatch"
	"github.com/oisee/uwu-tables/pkg/result"
	"github.com/oisee/uwu-tables/pkg/search"
	"github.com/oisee/uwu-tables/pkg/translate"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "uwugen",
		Short: "Generate dispatch and translation tables for the UwU-Uno loader",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output on stderr")

	logger := func(cmd *cobra.Command) *slog.Logger {
		return newLogger(cmd.ErrOrStderr(), verbose)
	}

	rootCmd.AddCommand(
		newJumpTableCmd(logger),
		newTranslationsCmd(logger),
		newPreviewCmd(),
		newVerifyCmd(),
	)
	return rootCmd
}

// newLogger returns a text logger: debug level when verbose, warnings otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newJumpTableCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var numWorkers int
	var distinct bool
	var sortBy string
	var output string
	var asm bool
	var tableAddr uint16

	cmd := &cobra.Command{
		Use:   "jumptable",
		Short: "Search for a collision-free 3-bit hash of the STK500 opcodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := search.Config{
				NumWorkers: numWorkers,
				Logger:     logger(cmd),
			}
			table, err := search.Run(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			var cs []result.Candidate
			switch sortBy {
			case "sweep":
				cs = table.Candidates()
			case "cost":
				cs = table.ByCost()
			default:
				return fmt.Errorf("unknown sort order: %s", sortBy)
			}

			out := cmd.OutOrStdout()
			groups := search.GroupLayouts(cs)
			if distinct {
				for i, g := range groups {
					printLayout(out, i+1, g)
				}
			} else {
				for _, c := range cs {
					printCandidate(out, c)
				}
			}
			fmt.Fprintf(out, "\n%d valid configurations, %d distinct layouts\n", len(cs), len(groups))

			if asm && len(cs) > 0 {
				cheapest := cs
				if sortBy != "cost" {
					cheapest = append([]result.Candidate(nil), cs...)
					result.SortByCost(cheapest)
				}
				fmt.Fprintln(out)
				if err := printAssembly(out, cheapest[0], tableAddr); err != nil {
					return err
				}
			}

			if output != "" {
				if err := writeCandidates(output, cs); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Written to %s\n", output)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of workers (0 = NumCPU)")
	cmd.Flags().BoolVar(&distinct, "distinct", false, "Print one entry per distinct jump table layout")
	cmd.Flags().StringVar(&sortBy, "sort", "sweep", "Candidate order: sweep or cost")
	cmd.Flags().StringVar(&output, "output", "", "Output JSON file path")
	cmd.Flags().BoolVar(&asm, "asm", false, "Print AVR code for the cheapest candidate")
	cmd.Flags().Uint16Var(&tableAddr, "table-addr", 0, "Word address of the rjmp table for --asm")
	return cmd
}

func newTranslationsCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var rulesPath string
	var output string
	var list bool

	cmd := &cobra.Command{
		Use:   "translations",
		Short: "Encode the word translation tables as assembler data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger(cmd)
			rules, err := loadRules(rulesPath)
			if err != nil {
				return err
			}
			tables, err := translate.Build(rules)
			if err != nil {
				return err
			}
			log.Debug("tables built",
				"rules", len(tables.Keywords), "edits", len(tables.Edits), "letters", tables.LetterCount)

			if list {
				printKeywords(cmd.ErrOrStderr(), tables)
			}

			if output == "" {
				_, err = tables.WriteTo(cmd.OutOrStdout())
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			if _, err := tables.WriteTo(f); err != nil {
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Rule file, one \"before after\" pair per line (default: built-in rules)")
	cmd.Flags().StringVar(&output, "output", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&list, "list", false, "List keyword entries on stderr")
	return cmd
}

func newPreviewCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "preview [text]",
		Short: "Translate text the way the loader firmware would",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRules(rulesPath)
			if err != nil {
				return err
			}
			tables, err := translate.Build(rules)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(b)
			}
			fmt.Fprint(cmd.OutOrStdout(), tables.TranslateText(text))
			if len(args) > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Rule file (default: built-in rules)")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [candidates.json]",
		Short: "Re-evaluate every candidate in an exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			cs, err := result.ReadJSON(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Verifying %d candidates...\n", len(cs))
			bad := 0
			for i, c := range cs {
				if err := verifyCandidate(c); err != nil {
					bad++
					fmt.Fprintf(out, "  [%d] %s: %v\n", i+1, c.Params, err)
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d candidates failed verification", bad, len(cs))
			}
			fmt.Fprintln(out, "All candidates verified.")
			return nil
		},
	}
}

// verifyCandidate re-runs the evaluation and compares it with the stored table.
func verifyCandidate(c result.Candidate) error {
	if !c.Params.Valid() {
		return errors.New("parameters outside the search space")
	}
	got, ok := search.EvaluateCandidate(c.Params, dispatch.DefaultOpcodes())
	if !ok {
		return errors.New("configuration has an unmergeable collision")
	}
	for slot := range got.Table {
		want, have := got.Table[slot], c.Table[slot]
		if (want == nil) != (have == nil) || (want != nil && *want != *have) {
			return fmt.Errorf("slot %d differs", slot)
		}
	}
	return search.ExhaustiveCheck(c.Params, 0)
}

func loadRules(path string) ([]translate.Rule, error) {
	if path == "" {
		return translate.DefaultRules(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return translate.ParseRules(f)
}

func writeCandidates(path string, cs []result.Candidate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := result.WriteJSON(f, cs); err != nil {
		return err
	}
	return f.Close()
}
