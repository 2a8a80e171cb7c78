package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"examparse/internal/config"
	"examparse/internal/dedupe"
	"examparse/internal/exam"
	"examparse/internal/pipeline"
	"examparse/internal/report"
	"examparse/internal/storage"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "examparse",
		Short: "Exam-question extraction engine for CLF-C02 style dumps",
	}
	dbPath     string
	outputPath string
	reportPath string
	threshold  float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the local SQLite database (optional)")

	parseCmd.Flags().StringVarP(&outputPath, "output", "o", "questions.json", "Path for the extracted question set")
	parseCmd.Flags().StringVar(&reportPath, "report", "reflection_report.json", "Path for the reflection report")
	checkCmd.Flags().Float64Var(&threshold, "threshold", 0, "Similarity ratio above which two questions count as duplicates")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(checkCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

var parseCmd = &cobra.Command{
	Use:   "parse [input.txt]",
	Short: "Extract validated questions from a plain-text exam dump",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		fmt.Printf("📖 Parsing questions from %s...\n", args[0])

		p := pipeline.New(cfg.ResolveTaxonomy())
		res, err := p.RunFile(args[0])
		if err != nil {
			log.Fatalf("Parse failed: %v", err)
		}

		fmt.Printf("✅ Valid questions: %d\n", len(res.Questions))
		if len(res.Errors) > 0 {
			fmt.Printf("⚠️  Validation errors: %d\n", len(res.Errors))
			for i, e := range res.Errors {
				if i == 10 {
					break
				}
				fmt.Printf("   - %s\n", e.Message)
			}
		}

		doc := exam.NewDocument(cfg.Exam.Name, cfg.Exam.Version, cfg.Exam.Source, res.Questions)
		if err := doc.Save(outputPath); err != nil {
			log.Fatalf("Failed to save questions: %v", err)
		}
		fmt.Printf("💾 Questions saved to %s\n", outputPath)

		tax := cfg.ResolveTaxonomy()
		rep := report.Build(res.Questions, tax.Domains, res.Blocks, len(res.Errors), res.Notes)
		rep.Render(os.Stdout)
		if err := rep.Save(reportPath); err != nil {
			log.Fatalf("Failed to save report: %v", err)
		}
		fmt.Printf("📄 Report saved to %s\n", reportPath)

		if dbPath != "" {
			store, err := storage.NewSQLiteStore(dbPath)
			if err != nil {
				log.Fatalf("Failed to open database: %v", err)
			}
			defer store.Close()

			if err := store.SaveResult(context.Background(), res.Questions, res.Errors, res.Notes); err != nil {
				log.Fatalf("Failed to save to database: %v", err)
			}
			fmt.Printf("🗄️  Results stored in %s\n", dbPath)
		}
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [questions.json]",
	Short: "Rebuild the quality report from a saved question set or database",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		tax := cfg.ResolveTaxonomy()

		var (
			questions []exam.Question
			errCount  int
			notes     []string
		)

		switch {
		case dbPath != "":
			store, err := storage.NewSQLiteStore(dbPath)
			if err != nil {
				log.Fatalf("Failed to open database: %v", err)
			}
			defer store.Close()

			ctx := context.Background()
			questions, err = store.LoadQuestions(ctx)
			if err != nil {
				log.Fatalf("Failed to load questions: %v", err)
			}
			errs, err := store.LoadErrors(ctx)
			if err != nil {
				log.Fatalf("Failed to load errors: %v", err)
			}
			errCount = len(errs)
			notes, err = store.LoadNotes(ctx)
			if err != nil {
				log.Fatalf("Failed to load notes: %v", err)
			}
		case len(args) == 1:
			doc, err := exam.LoadDocument(args[0])
			if err != nil {
				log.Fatalf("Failed to load question set: %v", err)
			}
			questions = doc.Questions
		default:
			log.Fatal("Provide a questions.json or --db path")
		}

		rep := report.Build(questions, tax.Domains, len(questions)+errCount, errCount, notes)
		rep.Render(os.Stdout)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [questions.json]",
	Short: "Audit a question set for near-duplicate question texts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if threshold <= 0 {
			threshold = cfg.Dedupe.Threshold
		}

		doc, err := exam.LoadDocument(args[0])
		if err != nil {
			log.Fatalf("Failed to load question set: %v", err)
		}

		texts := make([]string, len(doc.Questions))
		for i, q := range doc.Questions {
			texts[i] = q.Question
		}

		fmt.Printf("🔍 Checking %d questions for duplicates (threshold %.2f)...\n", len(texts), threshold)
		pairs := dedupe.FindDuplicates(texts, threshold)
		if len(pairs) == 0 {
			fmt.Println("✅ No near-duplicates found.")
			return
		}

		fmt.Printf("⚠️  %d near-duplicate pairs:\n", len(pairs))
		for _, p := range pairs {
			fmt.Printf("   - #%d ~ #%d (ratio %.2f)\n", doc.Questions[p.I].ID, doc.Questions[p.J].ID, p.Ratio)
		}
	},
}
