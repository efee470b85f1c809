package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbarrett/taskline"
)

var listCmd = &cobra.Command{
	Use:   "list [todo|in-progress|done]",
	Short: "List tasks, optionally filtered by status",
	Args:  cobra.MaximumNArgs(1),
	RunE:  listTasks,
}

func listTasks(cmd *cobra.Command, args []string) error {
	var filter taskline.Status
	if len(args) == 1 {
		f, err := taskline.ParseStatus(args[0])
		if err != nil {
			return err
		}
		filter = f
	}

	store := openStore()

	tasks := store.List(filter)
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	for _, task := range tasks {
		printTask(task)
	}
	return nil
}
