// studycli runs the note pipeline on a local file without the server, redis or minio.
//
// Usage:
//
//	studycli extract <file>
//	studycli summarize <file> [--config pipeline.yaml]
//	studycli cards <file> [--max-cards 20] [--config pipeline.yaml]
package main

import (
	"fmt"
	"os"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	configPath string
}

var rootCmd = &cobra.Command{
	Use:   "studycli",
	Short: "Turn lecture documents into summaries and flashcards",
	Long:  "studycli extracts the text of a pdf, docx, odt, rtf or txt file and prints it,\nits sectioned summary or generated flashcards as JSON.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		//stdout carries the JSON result
		logger_i.InitWithWriter(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "", "pipeline yaml file (defaults are used when empty)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(cardsCmd)
}

func loadPipelineConfig() (config.Pipeline, error) {
	cfg, err := config.LoadPipeline(rootFlags.configPath)
	if err != nil {
		return config.Pipeline{}, fmt.Errorf("load pipeline config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
