package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/study"
	"github.com/akolanti/StudyAPI/internal/study/extract"
	"github.com/akolanti/StudyAPI/internal/study/flashcards"
	"github.com/spf13/cobra"
)

var cardsFlags struct {
	maxCards int
}

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the cleaned text of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Print the sectioned bullet summary of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

var cardsCmd = &cobra.Command{
	Use:   "cards <file>",
	Short: "Print flashcards generated from a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runCards,
}

func init() {
	cardsCmd.Flags().IntVar(&cardsFlags.maxCards, "max-cards", 0, "maximum number of cards (0 uses the configured maximum)")
}

type extractOutput struct {
	File string `json:"file"`
	Text string `json:"text"`
}

type summaryOutput struct {
	File    string `json:"file"`
	Summary string `json:"summary"`
}

type cardsOutput struct {
	File  string            `json:"file"`
	Cards []flashcards.Card `json:"cards"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	_, text, err := documentText(cmd, args[0])
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), extractOutput{File: args[0], Text: text})
}

func runSummarize(cmd *cobra.Command, args []string) error {
	pipeline, text, err := documentText(cmd, args[0])
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), summaryOutput{File: args[0], Summary: pipeline.Summary(text)})
}

func runCards(cmd *cobra.Command, args []string) error {
	pipeline, text, err := documentText(cmd, args[0])
	if err != nil {
		return err
	}
	cards := pipeline.Cards(text, cardsFlags.maxCards)
	if cards == nil {
		cards = []flashcards.Card{}
	}
	return writeJSON(cmd.OutOrStdout(), cardsOutput{File: args[0], Cards: cards})
}

func documentText(cmd *cobra.Command, path string) (*study.Pipeline, string, error) {
	if extract.GetDocType(path) == commonModels.ERR {
		return nil, "", fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
	cfg, err := loadPipelineConfig()
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	pipeline := study.NewPipeline(cfg)
	text, err := pipeline.Text(cmd.Context(), commonModels.RawDocument{Name: filepath.Base(path), Data: data})
	if err != nil {
		return nil, "", fmt.Errorf("extract %s: %w", path, err)
	}
	return pipeline, text, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
