package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cbarrett/taskline"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tasks as json, csv or pdf",
	Run:   exportTasks,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: json, csv or pdf")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")
}

func exportTasks(cmd *cobra.Command, args []string) {
	store := openStore()

	data, err := taskline.NewExporter(store).Export(exportFormat)
	if err != nil {
		fatal("%v", err)
	}

	if exportOut == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			fatal("Failed to write export: %v", err)
		}
		return
	}

	if err := os.WriteFile(exportOut, data, 0644); err != nil {
		fatal("Failed to write %s: %v", exportOut, err)
	}
	fmt.Printf("Exported %d tasks to %s\n", store.Len(), exportOut)
}
