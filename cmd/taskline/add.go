package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add \"<description>\"",
	Short: "Add a new task",
	Long:  `Add a new task with status todo. Prints the id assigned to it.`,
	Args:  cobra.ExactArgs(1),
	Run:   addTask,
}

func addTask(cmd *cobra.Command, args []string) {
	store := openStore()

	task, err := store.Add(args[0])
	if err != nil {
		fatal("Failed to save task: %v", err)
	}

	fmt.Printf("Task added successfully (ID: %d)\n", task.ID)
}
