package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbarrett/taskline"
)

var markInProgressCmd = &cobra.Command{
	Use:   "mark-in-progress <id>",
	Short: "Mark a task as in progress",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		markTask(parseID(args[0]), taskline.StatusInProgress, "in progress")
	},
}

var markDoneCmd = &cobra.Command{
	Use:   "mark-done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		markTask(parseID(args[0]), taskline.StatusDone, "done")
	},
}

func markTask(id int, status taskline.Status, label string) {
	store := openStore()

	err := store.SetStatus(id, status)
	switch {
	case errors.Is(err, taskline.ErrNotFound):
		notFound(id)
	case err != nil:
		fatal("Failed to mark task: %v", err)
	default:
		fmt.Printf("Task %d marked as %s\n", id, label)
	}
}
