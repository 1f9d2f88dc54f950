package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"ruralplanner/cmd/fx/ai_fx"
	"ruralplanner/internal/infra"
	"ruralplanner/internal/infra/tourapi"
	"ruralplanner/internal/models/db_models"
	"ruralplanner/internal/repositories"
	"ruralplanner/pkg/utils"
)

const pageSize = 100

// Loads real attraction data from the TourAPI into tour_spots and fills the
// embedding column, so /slots has something to search against.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	serviceKey := os.Getenv("TOUR_API_KEY")
	if serviceKey == "" {
		log.Fatal("TOUR_API_KEY is required")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	if err := infra.AutoMigrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	aiClient, err := ai_fx.ProvideAIClient()
	if err != nil {
		log.Fatalf("AI client init failed: %v", err)
	}

	client := tourapi.NewClient(os.Getenv("TOUR_BASE_URL"), serviceKey)
	tourRepo := repositories.NewTourRepository(db)
	ctx := context.Background()

	loaded := 0
	for page := 1; ; page++ {
		spots, totalCount, err := client.FetchAreaList(ctx, page, pageSize)
		if err != nil {
			log.Fatalf("Fetch page %d failed: %v", page, err)
		}
		if len(spots) == 0 {
			break
		}

		if err := upsertPage(ctx, tourRepo, aiClient, spots); err != nil {
			log.Fatalf("Upsert page %d failed: %v", page, err)
		}
		loaded += len(spots)
		log.Printf("Page %d done (%d/%d spots)", page, loaded, totalCount)

		if page*pageSize >= totalCount {
			break
		}
		time.Sleep(300 * time.Millisecond) // be polite to the gateway
	}

	log.Printf("Loaded %d tour spots", loaded)
}

func upsertPage(ctx context.Context, tourRepo repositories.TourRepository, aiClient utils.AIClientInterface, spots []tourapi.Spot) error {
	texts := make([]string, len(spots))
	for i, spot := range spots {
		texts[i] = embeddingText(spot)
	}
	vectors, err := aiClient.GetEmbeddings(ctx, texts)
	if err != nil {
		return err
	}

	for i, spot := range spots {
		if spot.Title == "" || spot.ContentID == "" {
			continue
		}

		row := db_models.TourSpot{}
		existing, err := tourRepo.GetByContentID(ctx, spot.ContentID)
		switch err {
		case nil:
			row = existing
		case utils.ErrTourNotFound:
			// new spot
		default:
			return err
		}

		row.Name = spot.Title
		row.Region = spot.Region
		row.Tags = tagsFor(spot)
		row.Lat = spot.Lat
		row.Lon = spot.Lon
		row.ContentID = spot.ContentID
		row.ImageURL = spot.ImageURL
		row.Embedding = vectors[i]

		if err := tourRepo.Upsert(ctx, &row); err != nil {
			return err
		}
	}
	return nil
}

func embeddingText(spot tourapi.Spot) string {
	parts := []string{spot.Title, spot.Region}
	if spot.CatCode != "" {
		parts = append(parts, spot.CatCode)
	}
	return strings.Join(parts, " ")
}

func tagsFor(spot tourapi.Spot) pq.StringArray {
	if spot.CatCode == "" {
		return pq.StringArray{}
	}
	return pq.StringArray{spot.CatCode}
}
