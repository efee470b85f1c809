package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbarrett/taskline"
)

var updateCmd = &cobra.Command{
	Use:   "update <id> \"<description>\"",
	Short: "Update a task's description",
	Args:  cobra.ExactArgs(2),
	Run:   updateTask,
}

func updateTask(cmd *cobra.Command, args []string) {
	id := parseID(args[0])
	store := openStore()

	err := store.Update(id, args[1])
	switch {
	case errors.Is(err, taskline.ErrNotFound):
		notFound(id)
	case err != nil:
		fatal("Failed to update task: %v", err)
	default:
		fmt.Printf("Task %d updated successfully\n", id)
	}
}
