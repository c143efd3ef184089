package dashboard

import (
	"errors"

	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/models"
	"bitbucket.org/coradatalabs/cora_backend/utils"
)

// Access is the caller's resolved identity for borrower-scoped reads.
type Access struct {
	CompanyId  int
	BorrowerId int
	Staff      bool
}

// CanViewBorrower decides whether the caller may read a borrower's data.
// Staff see everything, a session pinned to the borrower sees it, and
// companies see only their own borrowers. Denials carry no detail about
// whether the borrower exists.
func CanViewBorrower(db *gorm.DB, access Access, borrowerId int) (bool, error) {
	if access.Staff {
		return true, nil
	}
	if access.BorrowerId != 0 && access.BorrowerId == borrowerId {
		return true, nil
	}
	var borrower models.Borrower
	err := db.Select("id", "company_id").Take(&borrower, borrowerId).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return borrower.CompanyId == access.CompanyId, nil
}

// ResolveBorrower validates the requested borrower against the caller's
// access, falling back to the session's selected borrower. Unauthorized
// requests surface as not-found.
func ResolveBorrower(db *gorm.DB, access Access, requested int) (int, error) {
	borrowerId := requested
	if borrowerId == 0 {
		borrowerId = access.BorrowerId
	}
	if borrowerId == 0 {
		return 0, utils.ErrorRecordNotFound
	}
	ok, err := CanViewBorrower(db, access, borrowerId)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, utils.ErrorRecordNotFound
	}
	return borrowerId, nil
}
