package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the option file if it is missing",
	Long: `Create the option file with default values if it does not exist yet.
An existing file is loaded and checked but never rewritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the option file path",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the option file whenever it changes",
	Long: `Watch the option file and reload it after every change, logging
the outcome. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(watchCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	s, err := initialize()
	if err != nil {
		return err
	}
	if err := s.Persistence.LastError(); err != nil {
		return err
	}
	cmd.Printf("Option file ready: %s\n", s.Persistence.Path())
	return nil
}

func runPath(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	cmd.Println(s.Persistence.Path())
	return nil
}

func runWatch(cmd *cobra.Command, _ []string) error {
	s, err := initialize()
	if err != nil {
		return err
	}
	if s.Watch == nil {
		return errors.New("watching is not available")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (ctrl+c to stop)\n", s.Persistence.Path())
	return s.Watch(ctx)
}
