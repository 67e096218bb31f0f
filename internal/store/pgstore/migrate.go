package pgstore

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront/internal/model"
	"storefront/internal/store"
)

// legacySentinelCategory marks the stale seed catalog. It appears only in
// catalogs created before the category list was reworked.
const legacySentinelCategory = "Mexican"

// migrateCatalog detects a stale seed catalog and, only when explicitly
// enabled via configuration, wipes and reseeds products and categories in a
// single transaction. Detection alone never deletes anything; it logs what
// it found and how to act on it.
func (s *PGStore) migrateCatalog(reseedEnabled bool) error {
	var stale int64
	err := s.db.Model(&model.Product{}).
		Where("category = ?", legacySentinelCategory).
		Count(&stale).Error
	if err != nil {
		return fmt.Errorf("check catalog version: %w", err)
	}
	if stale == 0 {
		return nil
	}

	if !reseedEnabled {
		s.log.Warn("Legacy seed catalog detected, skipping reseed",
			zap.String("sentinel_category", legacySentinelCategory),
			zap.Int64("stale_products", stale),
			zap.String("hint", "set STORE_RESEED_CATALOG=true to wipe and reseed the catalog"))
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var productCount, categoryCount int64
		if err := tx.Model(&model.Product{}).Count(&productCount).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Category{}).Count(&categoryCount).Error; err != nil {
			return err
		}

		s.log.Warn("Reseeding catalog, deleting existing products and categories",
			zap.Int64("products_deleted", productCount),
			zap.Int64("categories_deleted", categoryCount))

		if err := tx.Where("1 = 1").Delete(&model.Product{}).Error; err != nil {
			return fmt.Errorf("delete products: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&model.Category{}).Error; err != nil {
			return fmt.Errorf("delete categories: %w", err)
		}

		for _, category := range store.PGSeedCategories() {
			c := category
			c.Active = true
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("reseed category %q: %w", c.Name, err)
			}
		}
		for _, product := range store.PGSeedProducts() {
			p := product
			p.Available = true
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("reseed product %q: %w", p.Name, err)
			}
		}

		s.log.Info("Catalog reseed complete",
			zap.Int("products_seeded", len(store.PGSeedProducts())),
			zap.Int("categories_seeded", len(store.PGSeedCategories())))
		return nil
	})
}
