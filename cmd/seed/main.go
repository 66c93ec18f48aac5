// seed inserts a few dealers, cars, and a dev user into the local
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/weiyuzhang/dealerhub/internal/infrastructure/postgres"
)

const seedEmail = "seed@test.local"

type dealerSpec struct {
	name          string
	businessName  string
	address       string
	city          string
	province      string
	phone         string
	businessHours string
}

type carSpec struct {
	name         string
	basePrice    float64
	defaultColor string
	status       string
	dealer       string // name of the dealer, "" = no dealer linked
}

var dealers = []dealerSpec{
	{"星辰汽车", "上海星辰汽车销售有限公司", "浦东新区世纪大道100号", "上海", "上海", "021-55550001", "周一至周日 9:00-18:00"},
	{"远航名车", "", "天河区体育西路88号", "广州", "广东", "020-55550002", "周一至周六 9:30-18:30"},
	{"北方车城", "北京北方车城贸易有限公司", "", "北京", "", "010-55550003", "周一至周日 8:30-19:00"},
}

var cars = []carSpec{
	{"曜影 Pro", 289800, "曜石黑", "active", "星辰汽车"},
	{"曜影 Max", 329800, "珍珠白", "active", "星辰汽车"},
	{"星河 L6", 215900, "星空蓝", "active", "远航名车"},
	{"星河 L8", 268900, "晨曦银", "active", "北方车城"},
	// No dealer linked — exercises the second 404 on /api/cars/:carId/dealer
	{"光年 S", 399800, "极光绿", "active", ""},
	// Draft model — visible in the catalog by id, never listed publicly
	{"光年 X", 458800, "暮山紫", "draft", ""},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	// Upsert dev user
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email)
		VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		seedEmail,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	// Upsert dealers, remember their ids by name
	dealerIDs := make(map[string]string, len(dealers))
	for _, spec := range dealers {
		var id string
		err := pool.QueryRow(ctx, `
			INSERT INTO dealers (name, business_name, address, city, province, phone, business_hours)
			VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, NULLIF($7, ''))
			ON CONFLICT (name) DO UPDATE SET updated_at = NOW()
			RETURNING id`,
			spec.name, spec.businessName, spec.address, spec.city, spec.province,
			spec.phone, spec.businessHours,
		).Scan(&id)
		if err != nil {
			log.Fatalf("upsert dealer %s: %v", spec.name, err)
		}
		dealerIDs[spec.name] = id
	}

	// Insert cars, skip any that already exist (idempotent re-runs)
	var inserted, skipped int
	for _, spec := range cars {
		var dealerID *string
		if spec.dealer != "" {
			id := dealerIDs[spec.dealer]
			dealerID = &id
		}

		tag, err := pool.Exec(ctx, `
			INSERT INTO cars (name, base_price, default_color, status, dealer_id)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO NOTHING`,
			spec.name, spec.basePrice, spec.defaultColor, spec.status, dealerID,
		)
		if err != nil {
			log.Fatalf("insert car %s: %v", spec.name, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:         %s\n", seedEmail)
	fmt.Printf("  User ID:      %s\n", userID)
	fmt.Printf("  Dealers:      %d\n", len(dealers))
	fmt.Printf("  Cars created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — get a JWT for the seed user:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/api/auth/magic-link \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\"}'\n", seedEmail)
	fmt.Println()
	fmt.Println("    # Copy the token from the server log, then:")
	fmt.Println()
	fmt.Println("    curl -s 'http://localhost:8080/api/auth/verify?token=TOKEN'")
	fmt.Println("    # → {\"token\":\"eyJ...\"}")
	fmt.Println()
	fmt.Println("  Step 2 — call the API:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/api/dealers -H 'Authorization: Bearer JWT'")
}
