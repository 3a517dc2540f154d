package service

import (
	"context"
	"fmt"

	"github.com/rookgm/phoenixbot/internal/models"
)

// sampleOffering is a seed row keyed by category key
type sampleOffering struct {
	category    string
	name        string
	description string
	price       string
}

var sampleCatalog = []sampleOffering{
	{models.CategoryOptimization, "⚡ Basic Windows optimization", "Startup cleanup, power plan tuning and removal of background junk.", "1500 ₽"},
	{models.CategoryOptimization, "🔥 Extended Windows optimization", "Everything from the basic tier plus services, scheduler and latency tuning.", "2500 ₽"},
	{models.CategoryOptimization, "🌐 Network controller tuning", "Adapter settings and driver setup for stable ping in online games.", "1000 ₽"},
	{models.CategoryOptimization, "🧠 CPU overclocking", "Frequency and voltage tuning with stability testing.", "2000 ₽"},
	{models.CategoryOptimization, "🎮 GPU overclocking", "Core and memory overclock with a custom fan curve.", "1800 ₽"},
	{models.CategoryOptimization, "💾 RAM overclocking", "Timings and frequency tuning verified by memory tests.", "1200 ₽"},
	{models.CategoryComponents, "💻 Gaming build selection", "A parts list for your budget and the games you play.", "800 ₽"},
	{models.CategoryComponents, "🔧 Upgrade consultation", "Which part to replace first to get the most out of your PC.", "500 ₽"},
	{models.CategoryDevices, "🖱 Gaming mouse setup", "DPI, polling rate and button mapping.", "400 ₽"},
	{models.CategoryDevices, "⌨️ Mechanical keyboard setup", "Macros, lighting and firmware update.", "350 ₽"},
}

// SeedCatalog fills an empty catalog with sample offerings.
// A catalog that already has offerings is left untouched and 0 is returned.
func (cs *CatalogService) SeedCatalog(ctx context.Context) (int, error) {
	existing, err := cs.repo.ListOfferings(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for _, s := range sampleCatalog {
		category, err := cs.CategoryByKey(s.category)
		if err != nil {
			return created, err
		}
		offering := models.Offering{
			Name:        s.name,
			Description: s.description,
			Price:       s.price,
			Category:    category.Label,
		}
		if _, err := cs.CreateOffering(ctx, offering); err != nil {
			return created, fmt.Errorf("seed %q: %w", s.name, err)
		}
		created++
	}
	return created, nil
}
