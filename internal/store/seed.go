package store

import (
	"context"

	"go-storefront/internal/models"
)

// SeedSampleData loads the demo catalog. Create assigns the IDs.
func SeedSampleData(ctx context.Context, products ProductStore) error {
	samples := []models.Product{
		{Name: "Echo Dot", Description: "(2nd Generation) - Black", Price: 92.50, Quantity: 10},
		{Name: "Anker 3ft / 0.9m Nylon Braided", Description: "Tangle-Free Micro USB Cable", Price: 9.99, Quantity: 20},
		{Name: "JVC HAFX8R Headphone", Description: "Riptidz, In-Ear", Price: 69.99, Quantity: 30},
		{Name: "VTech CS6114 DECT 6.0", Description: "Cordless Phone", Price: 32.50, Quantity: 40},
		{Name: "NOKIA OEM BL-5J", Description: "Cell Phone", Price: 895.00, Quantity: 50},
	}
	for i := range samples {
		if err := products.Create(ctx, &samples[i]); err != nil {
			return err
		}
	}
	return nil
}
