package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dangerclosesec/orgsim/internal/config"
	"github.com/dangerclosesec/orgsim/internal/generator"
	"github.com/dangerclosesec/orgsim/internal/loader"
	"github.com/dangerclosesec/orgsim/internal/writer"
)

const version = "0.2.0"

var (
	outDir       string
	seed         uint64
	orgCount     int
	minEmployees int
	maxEmployees int
	months       int

	loadDir      string
	dbConnString string
	dbSchema     string
)

func init() {
	generateCmd.Flags().StringVarP(&outDir, "out-dir", "o", "data/raw", "Directory the CSV tables are written to")
	generateCmd.Flags().Uint64Var(&seed, "seed", 42, "Base seed; identical parameters and seed reproduce identical output")
	generateCmd.Flags().IntVar(&orgCount, "orgs", 12, "Number of organizations to generate")
	generateCmd.Flags().IntVar(&minEmployees, "min-employees", 120, "Lower bound on employees per organization")
	generateCmd.Flags().IntVar(&maxEmployees, "max-employees", 800, "Upper bound on employees per organization")
	generateCmd.Flags().IntVar(&months, "months", 12, "Number of trailing invoice months per contract")

	loadCmd.Flags().StringVarP(&loadDir, "dir", "i", "data/raw", "Directory containing the generated CSV tables")
	loadCmd.Flags().StringVarP(&dbConnString, "db", "d", "", "Warehouse connection string")
	loadCmd.Flags().StringVar(&dbSchema, "schema", "raw", "Warehouse schema the tables are created under")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "orgsim",
	Short: "orgsim generates synthetic SaaS organization datasets",
	Long:  `orgsim generates a deterministic, referentially consistent synthetic dataset of organizations, users, SaaS assignments, usage events, contracts, and invoices, and can bulk-load it into a warehouse schema.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the nine CSV tables",
	Long:  `Run a full generation pass and write all nine tables to the output directory. The same seed and parameters always produce byte-identical files.`,
	Run: func(cmd *cobra.Command, args []string) {
		params := config.GenerateParams{
			OutDir:       outDir,
			Seed:         seed,
			Orgs:         orgCount,
			MinEmployees: minEmployees,
			MaxEmployees: maxEmployees,
			Months:       months,
		}

		gen, err := generator.New(params)
		if err != nil {
			log.Fatalf("Invalid parameters: %v", err)
		}

		dataset, err := gen.Run()
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}

		if err := writer.New(outDir).Write(dataset); err != nil {
			log.Fatalf("Failed to write dataset: %v", err)
		}

		fmt.Printf("Wrote %d organizations, %d users, %d assignments, %d logins, %d invoices to %s\n",
			len(dataset.Organizations), len(dataset.Users), len(dataset.Assignments),
			len(dataset.Logins), len(dataset.Invoices), outDir)
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk-load the generated CSV tables into a warehouse schema",
	Long:  `Load every CSV file under the input directory into a Postgres table named after the file stem, inferring column types from content.`,
	Run: func(cmd *cobra.Command, args []string) {
		params := config.LoadParams{
			Dir:        loadDir,
			ConnString: dbConnString,
			Schema:     dbSchema,
		}
		if err := params.Validate(); err != nil {
			log.Fatalf("Invalid parameters: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		ldr, err := loader.New(ctx, dbConnString, dbSchema)
		if err != nil {
			log.Fatalf("Failed to connect to warehouse: %v", err)
		}
		defer ldr.Close()

		if err := ldr.LoadDir(ctx, loadDir); err != nil {
			log.Fatalf("Load failed: %v", err)
		}

		fmt.Println("Load completed successfully")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the orgsim version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("orgsim version %s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
