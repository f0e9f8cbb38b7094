package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"maloga/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]domain.User{
		{Username: "a", Password: "x"},
		{Username: "b", Password: "x"},
	}).Error)
	require.NoError(t, db.Create(&domain.Listing{
		SellerID: 1, Title: "Cow", Price: 50000, Category: domain.CategoryCattle,
		ImageURLs: []string{"http://img/1.jpg"},
	}).Error)
	require.NoError(t, db.Create(&[]domain.Commission{
		{Amount: 1000, CommissionRate: 10, CommissionAmount: 100, Status: domain.CommissionCompleted},
		{Amount: 500, CommissionRate: 10, CommissionAmount: 50, Status: domain.CommissionPending},
	}).Error)

	w := httptest.NewRecorder()
	DashboardStatsHandler(db)(testContext(t, w, 9, "GET", "/admin/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalListings      int64   `json:"total_listings"`
		TotalUsers         int64   `json:"total_users"`
		TotalCommissions   float64 `json:"total_commissions"`
		PendingCommissions float64 `json:"pending_commissions"`
	}
	decodeBody(t, w, &resp)
	assert.EqualValues(t, 1, resp.TotalListings)
	assert.EqualValues(t, 2, resp.TotalUsers)
	assert.Equal(t, 150.0, resp.TotalCommissions)
	assert.Equal(t, 50.0, resp.PendingCommissions)
}

func TestSetListingStatusAcceptsOnlyActiveOrInactive(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&domain.Listing{
		SellerID: 1, Title: "Goat", Price: 8000, Category: domain.CategoryGoat,
		ImageURLs: []string{"http://img/2.jpg"}, Status: domain.ListingPending,
	}).Error)

	// No other status value is reachable through this control path.
	for _, bad := range []string{"pending", "sold", "deleted", ""} {
		w := httptest.NewRecorder()
		c := testContext(t, w, 9, "PUT", "/admin/listings/1/status", gin.H{"status": bad})
		c.Params = gin.Params{{Key: "id", Value: "1"}}
		SetListingStatusHandler(db, nil)(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, "status %q", bad)
	}

	var listing domain.Listing
	require.NoError(t, db.First(&listing, 1).Error)
	assert.Equal(t, domain.ListingPending, listing.Status)

	// Approve, then reject.
	for _, good := range []string{domain.ListingActive, domain.ListingInactive} {
		w := httptest.NewRecorder()
		c := testContext(t, w, 9, "PUT", "/admin/listings/1/status", gin.H{"status": good})
		c.Params = gin.Params{{Key: "id", Value: "1"}}
		SetListingStatusHandler(db, nil)(c)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, db.First(&listing, 1).Error)
		assert.Equal(t, good, listing.Status)
	}
}

func TestSetListingStatusMissingListing(t *testing.T) {
	db := setupTestDB(t)
	w := httptest.NewRecorder()
	c := testContext(t, w, 9, "PUT", "/admin/listings/42/status", gin.H{"status": domain.ListingActive})
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	SetListingStatusHandler(db, nil)(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetUserRoleHandler(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&domain.User{Username: "seller", Password: "x"}).Error)

	// Assign a concrete role: exactly one row afterwards.
	w := httptest.NewRecorder()
	c := testContext(t, w, 9, "PUT", "/admin/users/1/role", gin.H{"role": domain.RoleSeller})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	SetUserRoleHandler(db, nil)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []domain.UserRole
	require.NoError(t, db.Where("user_id = ?", 1).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.RoleSeller, rows[0].Role)

	// "none" clears every row.
	w = httptest.NewRecorder()
	c = testContext(t, w, 9, "PUT", "/admin/users/1/role", gin.H{"role": domain.RoleNone})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	SetUserRoleHandler(db, nil)(c)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.Where("user_id = ?", 1).Find(&rows).Error)
	assert.Empty(t, rows)

	// Unknown role values are rejected.
	w = httptest.NewRecorder()
	c = testContext(t, w, 9, "PUT", "/admin/users/1/role", gin.H{"role": "owner"})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	SetUserRoleHandler(db, nil)(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Roles are not assigned to users that do not exist.
	w = httptest.NewRecorder()
	c = testContext(t, w, 9, "PUT", "/admin/users/77/role", gin.H{"role": domain.RoleBuyer})
	c.Params = gin.Params{{Key: "id", Value: "77"}}
	SetUserRoleHandler(db, nil)(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUsersIncludesRoles(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]domain.User{
		{Username: "a", Password: "x", FullName: "Alice Farmer"},
		{Username: "b", Password: "x"},
	}).Error)
	require.NoError(t, db.Create(&domain.UserRole{UserID: 1, Role: domain.RoleSuperAdmin}).Error)

	w := httptest.NewRecorder()
	ListUsersHandler(db)(testContext(t, w, 9, "GET", "/admin/users", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Users []UserAdminResponse `json:"users"`
		Total int                 `json:"total"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, 2, resp.Total)
	byName := map[string][]string{}
	for _, u := range resp.Users {
		byName[u.Username] = u.Roles
	}
	assert.Equal(t, []string{domain.RoleSuperAdmin}, byName["a"])
	assert.Empty(t, byName["b"])
}

func TestAdminListListingsResolvesSellerNames(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&domain.User{Username: "w", Password: "x", FullName: "Wanjiku Kamau"}).Error)
	require.NoError(t, db.Create(&[]domain.Listing{
		{SellerID: 1, Title: "Cow", Price: 50000, Category: domain.CategoryCattle, ImageURLs: []string{"http://img/1.jpg"}},
		{SellerID: 42, Title: "Orphan", Price: 100, Category: domain.CategoryOther, ImageURLs: []string{"http://img/2.jpg"}},
	}).Error)

	w := httptest.NewRecorder()
	AdminListListingsHandler(db)(testContext(t, w, 9, "GET", "/admin/listings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Listings []ListingAdminResponse `json:"listings"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Listings, 2)
	byTitle := map[string]string{}
	for _, l := range resp.Listings {
		byTitle[l.Title] = l.SellerName
	}
	assert.Equal(t, "Wanjiku Kamau", byTitle["Cow"])
	assert.Equal(t, "Unknown", byTitle["Orphan"])
}
