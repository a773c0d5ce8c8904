package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/awash-lottery/backend/internal/config"
	"github.com/awash-lottery/backend/internal/models"
	mongorepo "github.com/awash-lottery/backend/internal/repositories/mongodb"
	"github.com/awash-lottery/backend/pkg/mongodb"
	"github.com/gocarina/gocsv"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
)

// ticketRow is one line of the seed CSV
type ticketRow struct {
	TicketNumber int `csv:"ticket_number"`
}

// Seeds tickets from a CSV file. Usage:
//
//	go run ./cmd/scripts tickets.csv
//
// Numbers already present are skipped; the unique index on ticketNumber
// rejects duplicates within the file as well.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := config.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("MONGODB_DATABASE", "awash-lottery")
	dryRun := config.GetEnvAsBool("DRY_RUN", false)

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)
	if err := mongorepo.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	imported, skipped, err := importTickets(db, csvFilePath, dryRun)
	if err != nil {
		log.Fatalf("Failed to import tickets: %v", err)
	}

	log.Printf("Done: %d tickets imported, %d skipped", imported, skipped)
}

// importTickets reads the CSV and creates one ticket per row
func importTickets(db *mongo.Database, csvFilePath string, dryRun bool) (int, int, error) {
	file, err := os.Open(csvFilePath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	var rows []*ticketRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return 0, 0, fmt.Errorf("failed to parse CSV file: %w", err)
	}

	ctx := context.Background()
	ticketRepo := mongorepo.NewTicketRepository(db)

	imported, skipped := 0, 0
	for _, row := range rows {
		if row.TicketNumber < 1 {
			log.Printf("Skipping invalid ticket number %d", row.TicketNumber)
			skipped++
			continue
		}

		if _, err := ticketRepo.FindByNumber(ctx, row.TicketNumber); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return imported, skipped, fmt.Errorf("failed to check ticket %d: %w", row.TicketNumber, err)
		}

		if dryRun {
			log.Printf("Dry run: would import ticket %d", row.TicketNumber)
			imported++
			continue
		}

		if err := ticketRepo.Create(ctx, &models.Ticket{TicketNumber: row.TicketNumber}); err != nil {
			return imported, skipped, fmt.Errorf("failed to create ticket %d: %w", row.TicketNumber, err)
		}
		imported++
	}

	return imported, skipped, nil
}
