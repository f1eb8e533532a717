package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"nimbus/internal/bot"
	"nimbus/internal/config"
	"nimbus/internal/dates"
	"nimbus/internal/nlp"
	"nimbus/internal/owm"
	"nimbus/internal/tui"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nimbus",
		Short: "Ask free-text weather questions from your terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd.Context(), newBot())
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newAskCmd(), newTUICmd())
	return root
}

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			fmt.Println(newBot().Answer(ctx, question))
			return nil
		},
	}
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive chat shell",
		RunE: func(_ *cobra.Command, _ []string) error {
			p := tea.NewProgram(tui.New(newBot()), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

func newBot() *bot.Bot {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Load()
	resolver := dates.NewResolver()
	extractor := nlp.NewExtractor(nlp.NewProseTagger(), resolver)
	client := owm.New(cfg.APIKey,
		owm.WithBaseURL(cfg.BaseURL),
		owm.WithUnits(cfg.Units),
		owm.WithTimeout(cfg.HTTPTimeout),
	)
	return bot.New(extractor, resolver, client, bot.WithLogger(logger))
}

func runREPL(ctx context.Context, b *bot.Bot) error {
	fmt.Println("Hello! I am a weather bot. Ask me a question about the weather.")
	fmt.Println("For example: 'What is the temperature in London?' or 'Tell me the forecast for New York.'")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		switch strings.ToLower(question) {
		case "exit", "quit":
			return nil
		}

		turnCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		answer := b.Answer(turnCtx, question)
		cancel()
		fmt.Println(answer)
	}
}
