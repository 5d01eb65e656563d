package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/glossa/internal/cli"
	"codeberg.org/snonux/glossa/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()
	wordsFlags := &cli.WordsFlags{}

	// Create commands
	rootCmd := cli.CreateRootCommand(flags)
	askCmd := cli.CreateAskCommand()
	wordsCmd := cli.CreateWordsCommand(wordsFlags)
	rootCmd.AddCommand(askCmd, wordsCmd)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
		cli.NewLogger(viper.GetString("log.level"), viper.GetString("log.format"))
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}
	askCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return processor.NewProcessor(flags).Ask(cmd.Context(), strings.Join(args, " "))
	}
	wordsCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return processor.NewProcessor(flags).ProcessWords(cmd.Context(), wordsFlags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	proc := processor.NewProcessor(flags)
	ctx := cmd.Context()

	// Handle --list-models flag
	if flags.ListModels {
		return proc.ListModels(ctx)
	}

	// Handle batch processing
	if flags.BatchFile != "" {
		if len(args) > 0 {
			return fmt.Errorf("cannot combine --batch with a query argument")
		}
		return proc.ProcessBatch(ctx)
	}

	if len(args) == 0 {
		return cmd.Help()
	}

	// Process single query
	return proc.ProcessQuery(ctx, strings.Join(args, " "))
}
