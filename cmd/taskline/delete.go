package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbarrett/taskline"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Long:  `Delete a task. Its id is never reassigned to a later task.`,
	Args:  cobra.ExactArgs(1),
	Run:   deleteTask,
}

func deleteTask(cmd *cobra.Command, args []string) {
	id := parseID(args[0])
	store := openStore()

	err := store.Delete(id)
	switch {
	case errors.Is(err, taskline.ErrNotFound):
		notFound(id)
	case err != nil:
		fatal("Failed to delete task: %v", err)
	default:
		fmt.Printf("Task %d deleted successfully\n", id)
	}
}
