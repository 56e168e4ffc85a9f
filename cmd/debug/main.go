// Command debug prints an owner's shelf straight from PostgreSQL, bypassing
// the session cache.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/osse101/SmartShelf_Go/internal/config"
	"github.com/osse101/SmartShelf_Go/internal/database"
	"github.com/osse101/SmartShelf_Go/internal/database/postgres"
	"github.com/osse101/SmartShelf_Go/internal/domain"
	"github.com/osse101/SmartShelf_Go/internal/query"
)

type itemDump struct {
	ID                 string  `mapstructure:"id"`
	FoodName           string  `mapstructure:"food_name"`
	CaloriesPerGram    float64 `mapstructure:"calories_per_gram"`
	CurrentWeightGrams float64 `mapstructure:"current_weight_grams"`
	MaxWeightGrams     float64 `mapstructure:"max_weight_grams"`
}

type containerDump struct {
	ID    string     `mapstructure:"id"`
	Name  string     `mapstructure:"name"`
	Items []itemDump `mapstructure:"shelf_items"`
}

func main() {
	owner := flag.String("owner", "", "owner id whose shelf to print")
	flag.Parse()
	if *owner == "" {
		log.Fatal("-owner is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), 2, time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := query.NewClient(query.Instrument(postgres.NewExecutor(pool), config.BackendPostgres))
	rows, err := client.From(domain.CollectionContainers).
		Select().
		Eq(domain.FieldOwnerID, *owner).
		Order(domain.FieldName, query.Ascending).
		Nest(domain.CollectionShelfItems, domain.FieldContainerID,
			domain.FieldID, domain.FieldFoodName, domain.FieldCaloriesPerGram,
			domain.FieldCurrentWeightGrams, domain.FieldMaxWeightGrams).
		Execute(ctx)
	if err != nil {
		log.Fatalf("Failed to query shelf: %v", err)
	}

	containers, err := query.Decode[containerDump](rows)
	if err != nil {
		log.Fatalf("Failed to decode shelf: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	var total float64
	for _, c := range containers {
		fmt.Fprintf(w, "--- %s (%s) ---\n", c.Name, c.ID)
		fmt.Fprintln(w, "ID\tFOOD\tGRAMS\tMAX\tKCAL")
		for _, it := range c.Items {
			kcal := it.CurrentWeightGrams * it.CaloriesPerGram
			total += kcal
			fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%.0f\n", it.ID, it.FoodName, it.CurrentWeightGrams, it.MaxWeightGrams, kcal)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d containers, %.0f kcal remaining\n", len(containers), total)
}
