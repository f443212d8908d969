// Provisioning command for elevated accounts. Registration never grants
// admin or super_admin; an operator runs this instead:
//
//	go run ./cmd/provision-admin -email editor@revista.org -role super_admin
//
// With -password set, a missing account is created; otherwise the existing
// account is promoted.
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"journal-portal-api/config"
	"journal-portal-api/models"
	"journal-portal-api/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "account email (required)")
	role := flag.String("role", string(models.RoleSuperAdmin), "role to grant: admin or super_admin")
	password := flag.String("password", "", "create the account with this password if it does not exist")
	name := flag.String("name", "", "display name for a newly created account")
	institution := flag.String("institution", "", "institution for a newly created account")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}
	grant := models.Role(*role)
	if !grant.Valid() || grant == models.RoleVisitor {
		log.Fatalf("invalid role %q: must be admin or super_admin", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	config.InitDB(cfg)

	var user models.User
	err = config.DB.Where("email = ?", *email).First(&user).Error
	switch {
	case err == nil:
		now := time.Now().UTC()
		user.Role = grant
		user.UpdateAt = &now
		if err := config.DB.Save(&user).Error; err != nil {
			log.Fatalf("Failed to promote %s: %v", *email, err)
		}
		log.Printf("Promoted %s to %s", *email, grant)

	case errors.Is(err, gorm.ErrRecordNotFound):
		if *password == "" {
			log.Fatalf("No account for %s; pass -password to create one", *email)
		}
		hashed, err := utils.HashPassword(*password)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		user = models.User{
			UserID:        uuid.NewString(),
			Email:         *email,
			Name:          *name,
			Institution:   *institution,
			Role:          grant,
			Contributions: []string{},
			Password:      hashed,
			CreateAt:      time.Now().UTC(),
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create %s: %v", *email, err)
		}
		log.Printf("Created %s with role %s", *email, grant)

	default:
		log.Fatalf("Failed to look up %s: %v", *email, err)
	}
}
