package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/bredow/minutes"
	"github.com/bredow/minutes/model"
)

const sampleTranscript = `Good morning everyone, thanks for joining the weekly sync.
Please submit the quarterly report before Friday and review the updated budget.
Sarah will schedule the client call for next week.
We agreed to finalize the roadmap during the planning session.
The deadline for the budget review is the end of the month.
Please send the meeting notes to the whole team afterwards.`

func main() {
	// Optional .env with WORKER_COMMAND / WORKER_SCRIPT overrides
	_ = godotenv.Load()

	config := model.DefaultAnalyzerConfig()
	if command := os.Getenv("WORKER_COMMAND"); command != "" {
		config.WorkerCommand = command
		if script := os.Getenv("WORKER_SCRIPT"); script != "" {
			config.WorkerArgs = []string{script}
		}
	}

	analyzer, err := minutes.NewAnalyzer(config)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}

	record, err := analyzer.Process(context.Background(), sampleTranscript)
	if err != nil {
		log.Fatalf("Failed to process transcript: %v", err)
	}

	fmt.Printf("Record %s (created %s)\n", record.RID, record.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Word count:   %d\n", record.Analysis.WordCount)
	fmt.Printf("Action items: %v\n", record.Analysis.ActionItems)
	fmt.Printf("Keywords:     %v\n", record.Analysis.Keywords)
	fmt.Printf("Summary:      %s\n", record.Summary)
}
