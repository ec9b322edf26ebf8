package seed

import (
	"context"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"
	gormlogger "gorm.io/gorm/logger"

	"saira_acad/internal/auth"
	"saira_acad/internal/config"
	"saira_acad/internal/models"
)

func TestDefaultAdminRunsOnce(t *testing.T) {
	db, err := config.OpenDB(config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "seed.db"),
	}, gormlogger.Discard)
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	hasher := auth.NewHasher(bcrypt.MinCost)
	ctx := context.Background()

	created, err := DefaultAdmin(ctx, db, hasher, "admin", "1234567@_a")
	if err != nil || !created {
		t.Fatalf("first run: created=%v err=%v", created, err)
	}
	created, err = DefaultAdmin(ctx, db, hasher, "other", "password123")
	if err != nil || created {
		t.Fatalf("second run: created=%v err=%v", created, err)
	}

	var admins []models.Admin
	if err := db.Find(&admins).Error; err != nil {
		t.Fatalf("list admins: %v", err)
	}
	if len(admins) != 1 || admins[0].Username != "admin" || admins[0].AdminRole != models.AdminRoleSuper {
		t.Fatalf("admins=%+v", admins)
	}
	if ok, err := hasher.Verify(admins[0].Password, "1234567@_a"); err != nil || !ok {
		t.Fatalf("seeded password does not verify: %v", err)
	}
}
