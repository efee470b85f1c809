package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cbarrett/taskline"
)

var (
	dataFileFlag string
	cfg          *taskline.Config
	logger       *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "taskline",
	Short: "Track personal tasks from the command line",
	Long: `Taskline is a single-user task tracker. Tasks live in one JSON file
(tasks.json in the working directory by default) which is rewritten on
every change. There is no locking: two taskline invocations running at
the same time against the same file race, and the last one to save wins.`,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFileFlag, "file", "", "Path of the task file (overrides config and TASKLINE_FILE)")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(markInProgressCmd)
	rootCmd.AddCommand(markDoneCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
}

// setup loads configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := taskline.LoadConfig()
	if err != nil {
		return err
	}
	if dataFileFlag != "" {
		c.DataFile = dataFileFlag
	}
	cfg = c

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{Level: level})
	return nil
}
