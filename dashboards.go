package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bitbucket.org/coradatalabs/cora_backend/config"
	"bitbucket.org/coradatalabs/cora_backend/dashboard"
	"bitbucket.org/coradatalabs/cora_backend/middlewares"
	"bitbucket.org/coradatalabs/cora_backend/models"
	"bitbucket.org/coradatalabs/cora_backend/models/reports"
	"bitbucket.org/coradatalabs/cora_backend/utils"
)

const sessionTTL = 24 * time.Hour

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrorRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, utils.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// accessFrom rebuilds the caller's access from the session context. A
// request with no session is rejected here, not in the middleware, so
// login stays reachable.
func accessFrom(c *gin.Context) (dashboard.Access, bool) {
	ctx := c.Request.Context()
	companyId, _ := utils.GetCompanyIdFromContext(ctx)
	borrowerId, _ := utils.GetBorrowerIdFromContext(ctx)
	access := dashboard.Access{
		CompanyId:  companyId,
		BorrowerId: borrowerId,
		Staff:      utils.GetIsStaffFromContext(ctx),
	}
	if access.CompanyId == 0 && !access.Staff {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return access, false
	}
	return access, true
}

// resolveBorrower picks the borrower for a dashboard request from the
// borrower_id query param, defaulting to the session's selection.
func resolveBorrower(c *gin.Context, db *gorm.DB, access dashboard.Access) (int, bool) {
	requested, _ := strconv.Atoi(c.Query("borrower_id"))
	borrowerId, err := dashboard.ResolveBorrower(db, access, requested)
	if err != nil {
		writeError(c, err)
		return 0, false
	}
	return borrowerId, true
}

type loginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "identifier and password are required"})
			return
		}

		company, err := models.AuthenticateCompany(c.Request.Context(), req.Identifier, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		// Pre-select the company's first borrower so dashboards work
		// immediately after login.
		borrowerId := 0
		var borrower models.Borrower
		err = config.GetDB().WithContext(c.Request.Context()).
			Select("id").
			Where("company_id = ?", company.ID).
			Order("id").
			Take(&borrower).Error
		if err == nil {
			borrowerId = borrower.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, err)
			return
		}

		token := uuid.NewString()
		session := middlewares.Session{
			CompanyId:  company.ID,
			BorrowerId: borrowerId,
		}
		if err := config.SetRedisObject(middlewares.SessionKey(token), session, sessionTTL); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":       token,
			"company_id":  company.ID,
			"company":     utils.DereferencePtr(company.Company, ""),
			"borrower_id": borrowerId,
		})
	}
}

func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := utils.GetTokenFromContext(c.Request.Context())
		if !ok || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if err := config.RemoveRedisKey(middlewares.SessionKey(token)); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type selectBorrowerRequest struct {
	BorrowerId int `json:"borrower_id" binding:"required"`
}

func selectBorrowerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := accessFrom(c)
		if !ok {
			return
		}
		var req selectBorrowerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "borrower_id is required"})
			return
		}

		db := config.GetDB().WithContext(c.Request.Context())
		allowed, err := dashboard.CanViewBorrower(db, access, req.BorrowerId)
		if err != nil {
			writeError(c, err)
			return
		}
		if !allowed {
			// Silent no-op: the session keeps its current borrower and the
			// response reveals nothing about the requested one.
			c.JSON(http.StatusOK, gin.H{"borrower_id": access.BorrowerId})
			return
		}

		token, _ := utils.GetTokenFromContext(c.Request.Context())
		session := middlewares.Session{
			CompanyId:  access.CompanyId,
			BorrowerId: req.BorrowerId,
			Staff:      access.Staff,
		}
		if err := config.SetRedisObject(middlewares.SessionKey(token), session, sessionTTL); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"borrower_id": req.BorrowerId})
	}
}

// dashboardHandler returns every dashboard section in one response. The
// per-section endpoints below serve tab-by-tab refreshes.
func dashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := accessFrom(c)
		if !ok {
			return
		}
		db := config.GetDB().WithContext(c.Request.Context())
		borrowerId, ok := resolveBorrower(c, db, access)
		if !ok {
			return
		}

		division, err := dashboard.ResolveDivision(db, borrowerId, c.Query("division"))
		if err != nil {
			writeError(c, err)
			return
		}
		divisions, err := models.BorrowerDivisions(db, borrowerId)
		if err != nil {
			writeError(c, err)
			return
		}
		dates := dashboard.ResolveDatePreset(c.Query("dates"), time.Now())

		summary, err := dashboard.BuildSummary(db, borrowerId, dates)
		if err != nil {
			writeError(c, err)
			return
		}
		snapshot, err := dashboard.LatestCollateralSnapshot(db, borrowerId, dates)
		if err != nil {
			writeError(c, err)
			return
		}
		inventory, err := dashboard.BuildInventory(db, borrowerId, snapshot)
		if err != nil {
			writeError(c, err)
			return
		}
		risk, err := dashboard.BuildRisk(db, borrowerId, snapshot)
		if err != nil {
			writeError(c, err)
			return
		}
		forecast, err := dashboard.BuildForecast(db, borrowerId)
		if err != nil {
			writeError(c, err)
			return
		}
		page, _ := strconv.Atoi(c.Query("page"))
		limits, err := dashboard.BuildLimits(db, borrowerId, page)
		if err != nil {
			writeError(c, err)
			return
		}
		arHistory, err := dashboard.ARHistory(db, borrowerId, division, dates)
		if err != nil {
			writeError(c, err)
			return
		}
		trends, err := dashboard.BuildTrends(db, borrowerId, dates)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"borrower_id": borrowerId,
			"division":    division,
			"divisions":   divisions,
			"summary":     summary,
			"trends":      trends,
			"inventory":   inventory,
			"risk":        risk,
			"forecast":    forecast,
			"limits":      limits,
			"ar_history":  arHistory,
		})
	}
}

func summaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := accessFrom(c)
		if !ok {
			return
		}
		db := config.GetDB().WithContext(c.Request.Context())
		borrowerId, ok := resolveBorrower(c, db, access)
		if !ok {
			return
		}
		dates := dashboard.ResolveDatePreset(c.Query("dates"), time.Now())
		payload, err := dashboard.BuildSummary(db, borrowerId, dates)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
	}
}

func trendsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := accessFrom(c)
		if !ok {
			return
		}
		db := config.GetDB().WithContext(c.Request.Context())
		borrowerId, ok := resolveBorrower(c, db, access)
		if !ok {
			return
		}
		dates := dashboard.ResolveDatePreset(c.Query("dates"), time.Now())
		payload, err := dashboard.BuildTrends(db, borrowerId, dates)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
	}
}

func inventoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := accessFrom(c)
		if !ok {
			return
		}
		db := config.GetDB().WithContext(c.Request.Context())
		borrowerId, ok := resolveBorrower(c, db, access)
		if !ok {
			return
		}
		snapshot, err := dashboard.LatestCollateralSnapshot(db, borrowerId, dashboard.DateRange{})
		if err != nil {
			writeError(c, err)
			return
		}
		payload, err := dashboard.BuildInventory(db, borrowerId, snapshot)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
	}
}

func riskHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := accessFrom(c)
		if !ok {
			return
		}
		db := config.GetDB().WithContext(c.Request.Context())
		borrowerId, ok := resolveBorrower(c, db, access)
		if !ok {
			return
		}
		snapshot, err := dashboard.LatestCollateralSnapshot(db, borrowerId, dashboard.DateRange{})
		if err != nil {
			writeError(c, err)
			return
		}
		payload, err := dashboard.BuildRisk(db, borrowerId, snapshot)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
	}
}

func forecastHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := accessFrom(c)
		if !ok {
			return
		}
		db := config.GetDB().WithContext(c.Request.Context())
		borrowerId, ok := resolveBorrower(c, db, access)
		if !ok {
			return
		}
		payload, err := dashboard.BuildForecast(db, borrowerId)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
	}
}

func limitsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := accessFrom(c)
		if !ok {
			return
		}
		db := config.GetDB().WithContext(c.Request.Context())
		borrowerId, ok := resolveBorrower(c, db, access)
		if !ok {
			return
		}
		page, _ := strconv.Atoi(c.Query("page"))
		payload, err := dashboard.BuildLimits(db, borrowerId, page)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
	}
}

var snapshotSections = map[string]bool{
	models.SnapshotSectionAccountsReceivable: true,
	models.SnapshotSectionInventorySummary:   true,
	models.SnapshotSectionOtherCollateral:    true,
	models.SnapshotSectionRisk:               true,
	models.SnapshotSectionForecastLiquidity:  true,
	models.SnapshotSectionForecastSalesGM:    true,
	models.SnapshotSectionForecastAR:         true,
	models.SnapshotSectionForecastInventory:  true,
	models.SnapshotSectionWeekSummary:        true,
}

type snapshotSummaryRequest struct {
	BorrowerId  int     `json:"borrower_id" binding:"required"`
	Section     string  `json:"section" binding:"required"`
	SummaryText *string `json:"summary_text"`
}

// upsertSnapshotSummaryHandler lets staff write the narrative text shown
// on a borrower's dashboard sections.
func upsertSnapshotSummaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := accessFrom(c)
		if !ok {
			return
		}
		if !access.Staff {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		var req snapshotSummaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "borrower_id and section are required"})
			return
		}
		if !snapshotSections[req.Section] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown section"})
			return
		}

		db := config.GetDB().WithContext(c.Request.Context())
		var borrower models.Borrower
		if err := db.Select("id").Take(&borrower, req.BorrowerId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
				return
			}
			writeError(c, err)
			return
		}
		if err := models.UpsertSnapshotSummary(db, req.BorrowerId, req.Section, req.SummaryText); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"borrower_id": req.BorrowerId, "section": req.Section})
	}
}

func exportExcelHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := accessFrom(c)
		if !ok {
			return
		}
		db := config.GetDB().WithContext(c.Request.Context())
		borrowerId, ok := resolveBorrower(c, db, access)
		if !ok {
			return
		}
		f, err := reports.ExportBorrowerWorkbook(db, borrowerId)
		if err != nil {
			writeError(c, err)
			return
		}
		filename := "borrower_" + strconv.Itoa(borrowerId) + "_export.xlsx"
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Status(http.StatusOK)
		if err := f.Write(c.Writer); err != nil {
			c.Error(err)
		}
	}
}
