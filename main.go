package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ivo0509/Glitchy-Game-Emporium/metrics"
	"github.com/ivo0509/Glitchy-Game-Emporium/notify"
	"github.com/ivo0509/Glitchy-Game-Emporium/report"
	"github.com/ivo0509/Glitchy-Game-Emporium/session"
	"github.com/ivo0509/Glitchy-Game-Emporium/store"
)

// Demo run: seeds the Glitchy Game Emporium and walks one customer session
// through the storefront end to end.
func main() {
	log.Println("✅ Starting Glitchy Game Emporium...")

	// Load environment variables
	_ = godotenv.Load()

	cfg := store.ConfigFromEnv()

	sessionDir := os.Getenv("SESSION_DIR")
	if sessionDir == "" {
		sessionDir = ".emporium"
	}
	sessions, err := session.Open(sessionDir)
	if err != nil {
		log.Fatalf("❌ Failed to open session store: %v", err)
	}
	defer sessions.Close()

	// Read the snapshot once at startup, before any login overwrites it.
	if u, ok, err := sessions.Load(); err != nil {
		log.Printf("❌ Failed to restore session: %v", err)
	} else if ok {
		log.Printf("👋 Restored session for %s (%s)", u.Name, u.ID)
	}

	hub := notify.NewHub(notify.DefaultTTL)
	reg := metrics.NewRegistry()

	s, err := store.Open(cfg,
		store.WithNotifier(hub),
		store.WithMetrics(reg),
		store.WithSessions(sessions),
	)
	if err != nil {
		log.Fatalf("❌ Failed to open store: %v", err)
	}
	if err := s.Seed(); err != nil {
		log.Fatalf("❌ Failed to seed store: %v", err)
	}

	user, err := s.Login("customer1")
	if err != nil {
		log.Fatalf("❌ Login failed: %v", err)
	}
	log.Printf("🎮 Logged in as %s with $%.2f", user.Name, user.Balance)

	if _, err := s.CreateDiscount("SAVE10", "all", 10); err != nil {
		log.Fatalf("❌ Failed to create discount: %v", err)
	}
	if err := s.AddToCart(user.ID, "game1"); err != nil {
		log.Fatalf("❌ Failed to add to cart: %v", err)
	}
	if err := s.ApplyDiscount(user.ID, "save10"); err != nil {
		log.Fatalf("❌ Failed to apply discount: %v", err)
	}

	invoice, err := s.Checkout(user.ID)
	if err != nil {
		log.Fatalf("❌ Checkout failed: %v", err)
	}
	log.Printf("🧾 Invoice %s: subtotal $%.2f, tax $%.2f, total $%.2f",
		invoice.ID, invoice.SubTotal, invoice.Tax, invoice.Total)

	if _, err := s.OrderStock(context.Background(), "seller1", "sup1", "game3", 20); err != nil {
		log.Printf("❌ Stock order failed: %v", err)
	}

	out, err := os.Create("sales.xlsx")
	if err != nil {
		log.Fatalf("❌ Failed to create report file: %v", err)
	}
	defer out.Close()
	if err := report.ExportSalesHistory(s.DB(), "seller1", out); err != nil {
		log.Fatalf("❌ Failed to export sales history: %v", err)
	}
	log.Println("📊 Sales history exported to sales.xlsx")

	for _, n := range hub.Active() {
		log.Printf("🔔 %s", n.Text)
	}
}
