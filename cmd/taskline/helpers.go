package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cbarrett/taskline"
)

// fatal reports an unexpected failure and exits non-zero. Not-found
// results go through a plain Error: line instead and keep exit code 0.
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// parseID converts a CLI id argument, exiting non-zero on bad input.
func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fatal("Invalid task ID %q: expected an integer", arg)
	}
	return id
}

// openStore builds the store for this invocation and loads it.
func openStore() *taskline.Store {
	path := dataFileFlag
	if path == "" && cfg != nil {
		path = cfg.DataFile
	}
	if path == "" {
		path = taskline.DefaultDataFile
	}

	store := taskline.NewStore(path, logger)
	if err := store.Load(); err != nil {
		fatal("Failed to load tasks: %v", err)
	}
	return store
}

func notFound(id int) {
	fmt.Printf("Error: Task %d not found\n", id)
}

func printTask(t *taskline.Task) {
	fmt.Printf("ID: %d\n", t.ID)
	fmt.Printf("Description: %s\n", t.Description)
	fmt.Printf("Status: %s\n", t.Status)
	fmt.Printf("Created: %s\n", t.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated: %s\n", t.UpdatedAt.Format(time.RFC3339))
	fmt.Println(strings.Repeat("-", 50))
}
