package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Pipeline tunes the study-material pipeline.
type Pipeline struct {
	MaxCards          int           `yaml:"max_cards"`
	SummaryPerSection int           `yaml:"summary_per_section"`
	SummaryFallback   int           `yaml:"summary_fallback"`
	MaxTextRunes      int           `yaml:"max_text_runes"`
	PageTimeout       time.Duration `yaml:"page_timeout"`
}

func DefaultPipeline() Pipeline {
	return Pipeline{
		MaxCards:          DefaultMaxCards,
		SummaryPerSection: DefaultSummaryPerSection,
		SummaryFallback:   DefaultSummaryFallback,
		MaxTextRunes:      DefaultMaxTextRunes,
		PageTimeout:       DefaultPageTimeout,
	}
}

// LoadPipeline reads a pipeline yaml file. A missing file or empty path yields the defaults.
func LoadPipeline(path string) (Pipeline, error) {
	if path == "" {
		return DefaultPipeline(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPipeline(), nil
		}
		return Pipeline{}, err
	}
	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pipeline{}, err
	}
	p.applyDefaults()
	return p, nil
}

func (p *Pipeline) applyDefaults() {
	d := DefaultPipeline()
	if p.MaxCards <= 0 || p.MaxCards > DefaultMaxCards {
		p.MaxCards = d.MaxCards
	}
	if p.SummaryPerSection <= 0 {
		p.SummaryPerSection = d.SummaryPerSection
	}
	if p.SummaryFallback <= 0 {
		p.SummaryFallback = d.SummaryFallback
	}
	if p.MaxTextRunes <= 0 {
		p.MaxTextRunes = d.MaxTextRunes
	}
	if p.PageTimeout <= 0 {
		p.PageTimeout = d.PageTimeout
	}
}
