package bootstrap

import (
	"log"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"gorm.io/gorm"
)

// SeedAdminUser creates a development admin so the role-gated routes are
// reachable on a fresh database. Production environments manage roles via
// the admin role-update route instead.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@yoga-school.local").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	adminUser := model.User{
		Name:  "Administrator",
		Email: "admin@yoga-school.local",
		Role:  model.RoleAdmin,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully")
	log.Println("   Email: admin@yoga-school.local")

	return nil
}
