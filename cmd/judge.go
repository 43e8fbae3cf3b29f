package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dverney/quizine/internal/store"
	"github.com/spf13/cobra"
)

var judgeCmd = &cobra.Command{
	Use:   "judge",
	Short: "Test the judge connection and inspect judge call events",
}

var judgeTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Check that the configured judge is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := buildJudge(cmd, nil)
		if err != nil {
			return fmt.Errorf("judge not configured: %w", err)
		}

		fmt.Printf("Testing %s...\n", j.Name())
		if !j.TestConnection(cmd.Context()) {
			return fmt.Errorf("%s is not reachable", j.Name())
		}
		fmt.Println("OK")
		return nil
	},
}

var judgeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent judge call events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		provider, _ := cmd.Flags().GetString("provider")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo, err := s.JudgeEvents()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}

		ctx := context.Background()
		events, err := repo.Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No judge events found.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-10s  %-40s  %-5s  %-7s  %s\n",
			"ID", "Timestamp", "Provider", "Question", "Score", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if provider != "" && e.Provider != provider {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			question := e.Question
			if len(question) > 40 {
				question = question[:40]
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-40s  %-5d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Provider,
				question,
				e.Score,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var judgeViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View the full record of a judge call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo, err := s.JudgeEvents()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}

		ctx := context.Background()
		e, err := repo.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		fmt.Printf("ID:        %d\n", e.ID)
		fmt.Printf("UID:       %s\n", e.UID)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Language:  %s\n", e.Language)
		fmt.Printf("Score:     %d\n", e.Score)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println("QUESTION")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(e.Question)

		return nil
	},
}

func init() {
	judgeListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	judgeListCmd.Flags().StringP("provider", "p", "", "Filter by provider (e.g. openai, ollama)")

	judgeCmd.AddCommand(judgeTestCmd)
	judgeCmd.AddCommand(judgeListCmd)
	judgeCmd.AddCommand(judgeViewCmd)
}
