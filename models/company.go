package models

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/coradatalabs/cora_backend/config"
	"bitbucket.org/coradatalabs/cora_backend/utils"
	"gorm.io/gorm"
)

// Company is the tenant root. CompanyId is the external numeric id carried in
// workbook overview sheets; it is the de-duplication key for imports.
type Company struct {
	ID               int       `gorm:"primary_key" json:"id"`
	Company          *string   `gorm:"size:255" json:"company"`
	CompanyId        int64     `gorm:"uniqueIndex;not null" json:"company_id"`
	Industry         *string   `gorm:"size:255" json:"industry"`
	PrimaryNaics     *string   `gorm:"size:255" json:"primary_naics"`
	Website          *string   `gorm:"size:255" json:"website"`
	Email            *string   `gorm:"size:255;column:company_email" json:"company_email"`
	Password         *string   `gorm:"size:128;column:company_password" json:"-"`
	LenderName       *string   `gorm:"size:255" json:"lender_name"`
	LenderIdentifier *string   `gorm:"size:255" json:"lender_identifier"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Company) SetPassword(raw string) error {
	hashed, err := utils.HashPassword(raw)
	if err != nil {
		return err
	}
	c.Password = utils.Ptr(string(hashed))
	return nil
}

func (c *Company) CheckPassword(raw string) bool {
	if c.Password == nil || *c.Password == "" {
		return false
	}
	return utils.ComparePassword(*c.Password, raw) == nil
}

// GetOrCreateCompany resolves a company by its external id, creating it with
// the given defaults when absent. Existing companies are not overwritten.
func GetOrCreateCompany(tx *gorm.DB, companyId int64, defaults Company) (*Company, error) {
	var company Company
	err := tx.Where("company_id = ?", companyId).Take(&company).Error
	if err == nil {
		return &company, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	defaults.CompanyId = companyId
	if err := tx.Create(&defaults).Error; err != nil {
		return nil, err
	}
	return &defaults, nil
}

// FindCompanyByIdentifier resolves a login identifier: numeric external id
// first, then email, then company display name.
func FindCompanyByIdentifier(ctx context.Context, identifier string) (*Company, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, utils.ErrorRecordNotFound
	}
	db := config.GetDB()

	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		var company Company
		if err := db.WithContext(ctx).Where("company_id = ?", id).Take(&company).Error; err == nil {
			return &company, nil
		}
	}

	var company Company
	if err := db.WithContext(ctx).Where("LOWER(company_email) = ?", strings.ToLower(identifier)).Take(&company).Error; err == nil {
		return &company, nil
	}
	if err := db.WithContext(ctx).Where("LOWER(company) = ?", strings.ToLower(identifier)).Take(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &company, nil
}

// AuthenticateCompany checks credentials without revealing which part failed.
func AuthenticateCompany(ctx context.Context, identifier string, password string) (*Company, error) {
	company, err := FindCompanyByIdentifier(ctx, identifier)
	if err != nil {
		return nil, utils.ErrorUnauthorized
	}
	if !company.CheckPassword(password) {
		return nil, utils.ErrorUnauthorized
	}
	return company, nil
}
