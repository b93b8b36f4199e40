package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

const defaultHistoryLimit = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently loaded and saved images",
	Long: `List the images loaded and saved by past sessions, newest first.

Each save records the edits applied before it.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", defaultHistoryLimit, "maximum number of entries")
	historyCmd.Flags().Bool("json", false, "output as JSON")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func historyService() (driving.HistoryService, error) {
	svc, err := loadServices()
	if err != nil {
		return nil, err
	}
	if svc.History == nil {
		return nil, errors.New("history service not configured")
	}
	return svc.History, nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	svc, err := historyService()
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("getting limit flag: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("getting json flag: %w", err)
	}

	entries, err := svc.List(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if asJSON {
		return outputHistoryJSON(cmd, entries)
	}

	if len(entries) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TIME", "ACTION", "SIZE", "PATH", "EDITS")
	for _, e := range entries {
		edits := e.Pipeline
		if edits == "" {
			edits = "-"
		}
		t.Row(
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			string(e.Action),
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			e.Path,
			edits,
		)
	}
	cmd.Println(t.String())
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	svc, err := historyService()
	if err != nil {
		return err
	}

	if err := svc.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}

// historyJSON is the JSON form of a history entry.
type historyJSON struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
	Path      string `json:"path"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Channels  int    `json:"channels"`
	Pipeline  string `json:"pipeline,omitempty"`
	CreatedAt string `json:"created_at"`
}

func outputHistoryJSON(cmd *cobra.Command, entries []domain.HistoryEntry) error {
	out := make([]historyJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyJSON{
			ID:        e.ID,
			SessionID: e.SessionID,
			Action:    string(e.Action),
			Path:      e.Path,
			Width:     e.Width,
			Height:    e.Height,
			Channels:  e.Channels,
			Pipeline:  e.Pipeline,
			CreatedAt: e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
