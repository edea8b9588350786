package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voice-summarizer/internal/logger"
)

func main() {
	os.Exit(execute(newRootCommand(), logger.New("error")))
}

// execute runs cmd and maps its outcome to a process exit code
func execute(cmd *cobra.Command, log logger.Logger) int {
	if err := cmd.Execute(); err != nil {
		log.Error(context.Background(), "Processing failed: %v", err)
		return 1
	}
	return 0
}
