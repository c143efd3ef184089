package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Borrower is one lending relationship under a company. De-duplication key
// for imports is (company, primary contact name).
type Borrower struct {
	ID                          int        `gorm:"primary_key" json:"id"`
	CompanyId                   int        `gorm:"index;not null" json:"company_id"`
	Company                     *Company   `gorm:"constraint:OnDelete:CASCADE" json:"company,omitempty"`
	PrimaryContact              *string    `gorm:"size:255" json:"primary_contact"`
	PrimaryContactPhone         *string    `gorm:"size:30" json:"primary_contact_phone"`
	PrimaryContactEmail         *string    `gorm:"size:255" json:"primary_contact_email"`
	UpdateInterval              *string    `gorm:"size:50" json:"update_interval"`
	CurrentUpdate               *time.Time `gorm:"type:date" json:"current_update"`
	PreviousUpdate              *time.Time `gorm:"type:date" json:"previous_update"`
	NextUpdate                  *time.Time `gorm:"type:date" json:"next_update"`
	Lender                      *string    `gorm:"size:255" json:"lender"`
	LenderId                    *string    `gorm:"size:255" json:"lender_id"`
	PrimarySpecificIndividualId *int       `json:"primary_specific_individual_id"`
	Industry                    *string    `gorm:"size:255" json:"industry"`
	PrimaryNaics                *string    `gorm:"size:255" json:"primary_naics"`
	Website                     *string    `gorm:"size:255" json:"website"`
	CreatedAt                   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// SpecificIndividual is a borrower-scoped named individual registered from
// the overview sheet (KYC / underwriting contact).
type SpecificIndividual struct {
	ID                 int       `gorm:"primary_key" json:"id"`
	BorrowerId         int       `gorm:"index;not null" json:"borrower_id"`
	Borrower           *Borrower `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SpecificIndividual *string   `gorm:"size:255" json:"specific_individual"`
	SpecificId         *int64    `json:"specific_id"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// GetOrCreateBorrower resolves a borrower by (company, primary contact),
// creating it with the given defaults when absent.
func GetOrCreateBorrower(tx *gorm.DB, company *Company, primaryContact *string, defaults Borrower) (*Borrower, error) {
	var borrower Borrower
	query := tx.Where("company_id = ?", company.ID)
	if primaryContact != nil {
		query = query.Where("primary_contact = ?", *primaryContact)
	} else {
		query = query.Where("primary_contact IS NULL")
	}
	err := query.Take(&borrower).Error
	if err == nil {
		return &borrower, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	defaults.CompanyId = company.ID
	defaults.PrimaryContact = primaryContact
	if err := tx.Create(&defaults).Error; err != nil {
		return nil, err
	}
	return &defaults, nil
}

// RegisterSpecificIndividual stores a named individual once per borrower and
// links it as the primary individual when none is set yet.
func RegisterSpecificIndividual(tx *gorm.DB, borrower *Borrower, name *string, specificId *int64) (*SpecificIndividual, error) {
	if name == nil && specificId == nil {
		return nil, nil
	}
	var individual SpecificIndividual
	query := tx.Where("borrower_id = ?", borrower.ID)
	if name != nil {
		query = query.Where("specific_individual = ?", *name)
	} else {
		query = query.Where("specific_individual IS NULL")
	}
	if specificId != nil {
		query = query.Where("specific_id = ?", *specificId)
	} else {
		query = query.Where("specific_id IS NULL")
	}
	err := query.Take(&individual).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		individual = SpecificIndividual{
			BorrowerId:         borrower.ID,
			SpecificIndividual: name,
			SpecificId:         specificId,
		}
		err = tx.Create(&individual).Error
	}
	if err != nil {
		return nil, err
	}
	if borrower.PrimarySpecificIndividualId == nil {
		borrower.PrimarySpecificIndividualId = &individual.ID
		if err := tx.Model(borrower).Update("primary_specific_individual_id", individual.ID).Error; err != nil {
			return nil, err
		}
	}
	return &individual, nil
}

// BorrowerDivisions lists the distinct division labels seen in the
// borrower's AR metrics, used to validate dashboard division filters.
func BorrowerDivisions(db *gorm.DB, borrowerId int) ([]string, error) {
	var divisions []string
	err := db.Model(&ARMetricsRow{}).
		Where("borrower_id = ? AND division IS NOT NULL AND division <> ''", borrowerId).
		Distinct().
		Pluck("division", &divisions).Error
	if err != nil {
		return nil, err
	}
	return divisions, nil
}
