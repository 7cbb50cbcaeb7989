package model

import "gorm.io/gorm"

// Migrate registers the explicit join model and creates the schema. The join
// table must be set up before AutoMigrate so GORM uses ProductCategory
// instead of generating an implicit table.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Product{}, "Categories", &ProductCategory{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&Category{}, "Products", &ProductCategory{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Product{}, &Category{}, &ProductCategory{}, &Inventory{})
}
