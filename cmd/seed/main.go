// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev user (user@nextmail.com) already exists.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"invoicing-dashboard/internal/config"
	customerdomain "invoicing-dashboard/internal/customer/domain"
	customerrepo "invoicing-dashboard/internal/customer/repository"
	"invoicing-dashboard/internal/db"
	invoicedomain "invoicing-dashboard/internal/invoice/domain"
	invoicerepo "invoicing-dashboard/internal/invoice/repository"
	"invoicing-dashboard/internal/security"
	userdomain "invoicing-dashboard/internal/user/domain"
	userrepo "invoicing-dashboard/internal/user/repository"
)

const (
	devUserEmail = "user@nextmail.com"
	devUserName  = "User"
	devPassword  = "123456"
)

type seedCustomer struct {
	name  string
	email string
	image string
}

type seedInvoice struct {
	customer    int
	amountCents int64
	status      invoicedomain.Status
	daysAgo     int
}

var seedCustomers = []seedCustomer{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var seedInvoices = []seedInvoice{
	{0, 15795, invoicedomain.StatusPending, 260},
	{1, 20348, invoicedomain.StatusPending, 300},
	{4, 3040, invoicedomain.StatusPaid, 290},
	{3, 44800, invoicedomain.StatusPaid, 220},
	{5, 34577, invoicedomain.StatusPending, 350},
	{2, 54246, invoicedomain.StatusPending, 400},
	{0, 666, invoicedomain.StatusPending, 420},
	{3, 32545, invoicedomain.StatusPaid, 430},
	{4, 1250, invoicedomain.StatusPaid, 440},
	{5, 8546, invoicedomain.StatusPaid, 450},
	{1, 500, invoicedomain.StatusPaid, 460},
	{5, 8945, invoicedomain.StatusPaid, 470},
	{2, 1000, invoicedomain.StatusPaid, 480},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()

	users := userrepo.NewPostgresRepository(conn)
	customers := customerrepo.NewPostgresRepository(conn)
	invoices := invoicerepo.NewPostgresRepository(conn)

	existing, err := users.GetByEmail(ctx, devUserEmail)
	if err != nil {
		log.Fatalf("seed: check dev user: %v", err)
	}
	if existing != nil {
		log.Printf("seed: dev user %s already exists, skipping", devUserEmail)
		return
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	hash, err := hasher.Hash([]byte(devPassword))
	if err != nil {
		log.Fatalf("seed: hash password: %v", err)
	}

	devUser := &userdomain.User{
		ID:           uuid.NewString(),
		Name:         devUserName,
		Email:        devUserEmail,
		PasswordHash: hash,
	}
	if err := devUser.Validate(); err != nil {
		log.Fatalf("seed: dev user: %v", err)
	}
	if err := users.Create(ctx, devUser); err != nil {
		log.Fatalf("seed: create user: %v", err)
	}

	customerIDs := make([]string, len(seedCustomers))
	for i, sc := range seedCustomers {
		cust := &customerdomain.Customer{
			ID:       uuid.NewString(),
			Name:     sc.name,
			Email:    sc.email,
			ImageURL: sc.image,
		}
		if err := cust.Validate(); err != nil {
			log.Fatalf("seed: customer %s: %v", sc.email, err)
		}
		if err := customers.Create(ctx, cust); err != nil {
			log.Fatalf("seed: create customer %s: %v", sc.email, err)
		}
		customerIDs[i] = cust.ID
	}

	now := time.Now().UTC()
	for _, si := range seedInvoices {
		inv := &invoicedomain.Invoice{
			ID:          uuid.NewString(),
			CustomerID:  customerIDs[si.customer],
			AmountCents: si.amountCents,
			Status:      si.status,
			Date:        now.AddDate(0, 0, -si.daysAgo).Format(invoicedomain.DateLayout),
		}
		if err := inv.Validate(); err != nil {
			log.Fatalf("seed: invoice: %v", err)
		}
		if err := invoices.Create(ctx, inv); err != nil {
			log.Fatalf("seed: create invoice: %v", err)
		}
	}

	log.Printf("seed: inserted 1 user, %d customers, %d invoices", len(seedCustomers), len(seedInvoices))
}
