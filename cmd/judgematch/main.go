package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/judgematch/internal/config"
	"github.com/judgematch/internal/db"
	"github.com/judgematch/internal/etl"
	"github.com/judgematch/internal/match"
	"github.com/judgematch/internal/web"
)

var (
	dbConn *db.Connection
	logger *zap.Logger

	constantsPath string
)

func main() {
	config.LoadEnv()

	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	dbConn, err = db.NewConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	rootCmd := &cobra.Command{
		Use:   "judgematch",
		Short: "FJC judge identity resolution",
		Long:  `Builds a canonical judge table and name-matching index from FJC biographical data, and resolves partial judge names against it`,
	}
	rootCmd.PersistentFlags().StringVar(&constantsPath, "constants", "", "YAML overlay for the static lookup tables")

	rootCmd.AddCommand(createBuildCmd())
	rootCmd.AddCommand(createResolveCmd())
	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createBuildCmd creates the build subcommand running the full batch.
func createBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [service.csv] [career.csv] [demographics.csv]",
		Short: "Run the full pipeline and load the output tables",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			consts, err := config.Load(constantsPath)
			if err != nil {
				log.Fatalf("Failed to load constants: %v", err)
			}

			pipeline := etl.NewPipeline(dbConn.DB, consts, logger)
			result, err := pipeline.Run(args[0], args[1], args[2])
			if err != nil {
				log.Fatalf("Pipeline failed: %v", err)
			}

			fmt.Printf("Built index from %d judges (%d name rows)\n",
				len(result.Judges), len(result.Rows))
		},
	}
}

// createResolveCmd creates the resolve subcommand for one-off lookups
// against the persisted index.
func createResolveCmd() *cobra.Command {
	var year, court, circuit int

	resolveCmd := &cobra.Command{
		Use:   "resolve [name]",
		Short: "Resolve a judge name with optional year/court context",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rows, err := etl.LoadNameRows(dbConn.DB)
			if err != nil {
				log.Fatalf("Failed to load name index: %v", err)
			}

			idx := match.Build(rows)
			name, ok := idx.Resolve(match.Query{
				Name:       args[0],
				Year:       year,
				CourtNum:   court,
				CircuitNum: circuit,
			})
			if !ok {
				fmt.Println("No match")
				os.Exit(1)
			}
			fmt.Println(name)
		},
	}

	resolveCmd.Flags().IntVar(&year, "year", 0, "year context")
	resolveCmd.Flags().IntVar(&court, "court", 0, "court number context")
	resolveCmd.Flags().IntVar(&circuit, "circuit", 0, "circuit number context")
	return resolveCmd
}

// createServeCmd creates the serve subcommand running the resolver API.
func createServeCmd() *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolver API over HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			rows, err := etl.LoadNameRows(dbConn.DB)
			if err != nil {
				log.Fatalf("Failed to load name index: %v", err)
			}

			store := match.NewStore()
			store.Swap(match.Build(rows))

			server := web.NewServer(addr, store, dbConn.DB, logger)
			if err := server.Start(); err != nil {
				log.Fatalf("Server failed: %v", err)
			}
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", config.GetEnv("LISTEN_ADDR", "0.0.0.0:8080"), "listen address")
	return serveCmd
}

// createPingCmd creates a command to test database connectivity
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Database connection successful!")

			var count int
			if err := dbConn.DB.QueryRow("SELECT COUNT(*) FROM dim_judge").Scan(&count); err != nil {
				log.Printf("Error counting dim_judge records: %v", err)
			} else {
				fmt.Printf("Judges loaded: %d\n", count)
			}

			if err := dbConn.DB.QueryRow("SELECT COUNT(*) FROM judge_name_index").Scan(&count); err != nil {
				log.Printf("Error counting judge_name_index records: %v", err)
			} else {
				fmt.Printf("Name index rows: %d\n", count)
			}
		},
	}
}
