package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump saved progress and play history",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "json" && format != "yaml" {
			return fmt.Errorf("invalid format %q: must be json or yaml", format)
		}

		st, svc, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		p, err := svc.LoadProgress(ctx)
		if err != nil {
			return err
		}
		playCfg, err := svc.LoadPlayConfig(ctx, p)
		if err != nil {
			return err
		}
		practiceCfg, err := svc.LoadPracticeConfig(ctx)
		if err != nil {
			return err
		}
		events, err := st.EventRepo().ListStageClears(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}

		doc := exportDoc{
			ExamBody:       string(svc.ExamBody()),
			ExportedAt:     time.Now().UTC(),
			Progress:       p,
			PlayConfig:     playCfg,
			PracticeConfig: practiceCfg,
		}
		for _, ev := range events {
			doc.History = append(doc.History, newHistoryEntry(ev))
		}
		return writeExport(cmd.OutOrStdout(), doc, format)
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "Output format: json or yaml")
}

type exportDoc struct {
	ExamBody       string                    `json:"examBody" yaml:"examBody"`
	ExportedAt     time.Time                 `json:"exportedAt" yaml:"exportedAt"`
	Progress       progress.RegisterProgress `json:"progress" yaml:"progress"`
	PlayConfig     progress.PlayConfig       `json:"playConfig" yaml:"playConfig"`
	PracticeConfig progress.PracticeConfig   `json:"practiceConfig" yaml:"practiceConfig"`
	History        []historyEntry            `json:"history" yaml:"history"`
}

type historyEntry struct {
	Sequence  int64     `json:"sequence" yaml:"sequence"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Grade     int       `json:"grade" yaml:"grade"`
	Subject   string    `json:"subject" yaml:"subject"`
	Stage     int       `json:"stage" yaml:"stage"`
	Correct   int       `json:"correct" yaml:"correct"`
	Total     int       `json:"total" yaml:"total"`
	Rank      string    `json:"rank" yaml:"rank"`
	Cleared   bool      `json:"cleared" yaml:"cleared"`
	Perfect   bool      `json:"perfect" yaml:"perfect"`
	Coins     int       `json:"coins" yaml:"coins"`
	Unlocked  string    `json:"unlocked,omitempty" yaml:"unlocked,omitempty"`
}

func newHistoryEntry(ev store.StageClearEvent) historyEntry {
	return historyEntry{
		Sequence:  ev.Sequence,
		Timestamp: ev.Timestamp.UTC(),
		Grade:     ev.Grade,
		Subject:   ev.Subject,
		Stage:     ev.Stage,
		Correct:   ev.Correct,
		Total:     ev.Total,
		Rank:      ev.Rank,
		Cleared:   ev.Cleared,
		Perfect:   ev.Perfect,
		Coins:     ev.CoinsEarned,
		Unlocked:  ev.Unlocked,
	}
}

func writeExport(w io.Writer, doc exportDoc, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
