package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"insure-dw.backend/internal/config"
	"insure-dw.backend/internal/infrastructure/datasources"
	"insure-dw.backend/internal/infrastructure/models"
	"insure-dw.backend/internal/infrastructure/repositories"
	"insure-dw.backend/internal/usecases"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a deterministic demo dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		db, err := datasources.Open(cfg)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		if err := datasources.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		return seedDemoData(cmd.Context(), db)
	},
}

// seedDemoData inserts ten users, two quotes each, binds every other
// quote, writes a policy per bound quote and a payment per policy.
// Refuses to run on a non-empty database.
func seedDemoData(ctx context.Context, db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount > 0 {
		return fmt.Errorf("database already holds %d users, refusing to seed", userCount)
	}

	names := []string{
		"Alice Morgan", "Bob Chen", "Carol Diaz", "Dan Okafor", "Eve Lindqvist",
		"Frank Novak", "Grace Iyer", "Hank Svensson", "Iris Kato", "Jack Oduya",
	}
	paymentTypes := []string{"Credit", "Debit", "Prepaid"}
	base := time.Now().Add(-30 * 24 * time.Hour)

	return db.Transaction(func(tx *gorm.DB) error {
		for i, name := range names {
			email := fmt.Sprintf("user%d@example.com", i+1)
			user := models.User{Name: name, Email: &email}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("seed user %q: %w", name, err)
			}

			for q := 0; q < 2; q++ {
				createTime := base.Add(time.Duration(i*48+q*24) * time.Hour)
				quote := models.Quote{
					UserID:     user.ID,
					CreateTime: createTime,
					Bindable:   true,
				}

				// Every other quote is bound an hour after creation and
				// carries a policy with one payment.
				bound := (i+q)%2 == 0
				if bound {
					bindTime := createTime.Add(time.Hour)
					quote.BindTime = &bindTime
				}
				if err := tx.Create(&quote).Error; err != nil {
					return fmt.Errorf("seed quote for user %d: %w", user.ID, err)
				}
				if !bound {
					continue
				}

				policy := models.Policy{UserID: user.ID, QuoteID: quote.ID}
				if err := tx.Create(&policy).Error; err != nil {
					return fmt.Errorf("seed policy for quote %d: %w", quote.ID, err)
				}

				payment := models.PaymentTransaction{
					Time:        quote.BindTime.Add(10 * time.Minute),
					PaymentType: paymentTypes[(i+q)%len(paymentTypes)],
					PolicyID:    policy.ID,
					Success:     i%3 != 0,
				}
				if err := tx.Create(&payment).Error; err != nil {
					return fmt.Errorf("seed payment for policy %d: %w", policy.ID, err)
				}
			}
		}

		featureRepo := repositories.NewFeatureRepository(tx)
		if err := featureRepo.EnsureMetadata(ctx, usecases.DefaultMetadata(time.Now())); err != nil {
			return fmt.Errorf("seed feature metadata: %w", err)
		}

		fmt.Println("seed complete: 10 users, 20 quotes, 10 policies, 10 payments")
		return nil
	})
}
