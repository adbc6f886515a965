package store

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ivo0509/Glitchy-Game-Emporium/metrics"
	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// Config carries the business-policy knobs the storefront does not hardcode.
type Config struct {
	TaxRate          float64       // applied at checkout, retained by the platform
	RefundMultiplier float64       // refund = price paid × multiplier
	GiftFeeRate      float64       // service fee as a fraction of the game price
	DailyBonus       float64       // credited on first login of a UTC day
	StarterBalance   float64       // opening balance for new customers
	ResaleMarkup     float64       // relist price factor after buying a listing
	SupplierLeadTime time.Duration // wait before a stock order is delivered
}

func DefaultConfig() Config {
	return Config{
		TaxRate:          0.20,
		RefundMultiplier: 1.0,
		GiftFeeRate:      0.05,
		DailyBonus:       5,
		StarterBalance:   50,
		ResaleMarkup:     1.5,
		SupplierLeadTime: 0,
	}
}

// ConfigFromEnv reads overrides from the environment on top of the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	envFloat("TAX_RATE", &cfg.TaxRate)
	envFloat("REFUND_MULTIPLIER", &cfg.RefundMultiplier)
	envFloat("GIFT_FEE_RATE", &cfg.GiftFeeRate)
	envFloat("DAILY_BONUS", &cfg.DailyBonus)
	envFloat("STARTER_BALANCE", &cfg.StarterBalance)
	envFloat("RESALE_MARKUP", &cfg.ResaleMarkup)
	if v := os.Getenv("SUPPLIER_LEAD_TIME"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SupplierLeadTime = d
		}
	}
	return cfg
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

// Notifier receives fire-and-forget display messages. No delivery guarantee.
type Notifier interface {
	Publish(text string)
}

// SessionStore mirrors the active user record to persistent storage.
type SessionStore interface {
	Save(u models.User) error
	Clear() error
}

// Store is the storefront engine. All domain state lives in an in-memory
// SQLite database; mutations run through GORM transactions, and the commit
// sections that touch stock or balances additionally serialize on mu so
// concurrent callers cannot oversell or double-spend.
type Store struct {
	db  *gorm.DB
	cfg Config

	mu sync.Mutex // guards checkout/refund/stock/trade/gift commits

	notifier Notifier
	metrics  *metrics.Registry
	sessions SessionStore

	currentMu     sync.Mutex
	currentUserID string
}

type Option func(*Store)

func WithNotifier(n Notifier) Option          { return func(s *Store) { s.notifier = n } }
func WithMetrics(r *metrics.Registry) Option  { return func(s *Store) { s.metrics = r } }
func WithSessions(ss SessionStore) Option     { return func(s *Store) { s.sessions = ss } }

// Open creates a fresh engine backed by a private in-memory database.
func Open(cfg Config, opts ...Option) (*Store, error) {
	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database while isolating separate Open calls.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Achievement{},
		&models.WishlistItem{},
		&models.SalesPoint{},
		&models.Employee{},
		&models.Game{},
		&models.Review{},
		&models.Cart{},
		&models.CartItem{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Purchase{},
		&models.Discount{},
		&models.TradeRequest{},
		&models.Gift{},
		&models.SellerListing{},
		&models.Customer{},
		&models.Supplier{},
		&models.StockOrder{},
		&models.ChatMessage{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Store{db: db, cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Config() Config { return s.cfg }

// DB exposes the underlying handle for read-only consumers such as reports.
func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) notify(format string, args ...any) {
	if s.notifier != nil {
		s.notifier.Publish(fmt.Sprintf(format, args...))
	}
}

// newID builds "<prefix>-<uuid>" ids, e.g. "inv-5f0c...".
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
