// seed-company creates or updates a lender-facing company login. Imports
// create companies without credentials; run this to let the company sign in.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... \
//     go run ./cmd/seed-company -company-id 1001 -email ops@acme.example -password 'secret'
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/config"
	"bitbucket.org/coradatalabs/cora_backend/models"
	"bitbucket.org/coradatalabs/cora_backend/utils"
)

func main() {
	companyId := flag.Int64("company-id", 0, "external company id (required)")
	name := flag.String("name", "", "company display name (used when creating)")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "login password (required)")
	flag.Parse()

	if *companyId == 0 || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: seed-company -company-id <id> -password <pw> [-name <name>] [-email <email>]")
		os.Exit(2)
	}
	if *email != "" {
		if err := validator.New().Var(*email, "email"); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -email %q\n", *email)
			os.Exit(2)
		}
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	hashed, err := utils.HashPassword(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}
	hashedStr := string(hashed)

	var existing models.Company
	err = db.Where("company_id = ?", *companyId).Take(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Fprintf(os.Stderr, "failed to lookup company: %v\n", err)
			os.Exit(1)
		}
		company := models.Company{
			CompanyId: *companyId,
			Password:  &hashedStr,
		}
		if *name != "" {
			company.Company = name
		}
		if *email != "" {
			company.Email = email
		}
		if err := db.Create(&company).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create company: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created company: company_id=%d\n", *companyId)
		return
	}

	updates := map[string]any{"company_password": hashedStr}
	if *name != "" {
		updates["company"] = *name
	}
	if *email != "" {
		updates["company_email"] = *email
	}
	if err := db.Model(&models.Company{}).Where("company_id = ?", *companyId).Updates(updates).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to update company: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Updated company: company_id=%d\n", *companyId)
}
