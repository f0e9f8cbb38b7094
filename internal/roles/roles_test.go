package roles

import (
	"testing"

	"maloga/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.UserRole{}))
	return db
}

func rolesOf(t *testing.T, db *gorm.DB, userID uint) []string {
	t.Helper()
	got, err := RolesFor(db, userID)
	require.NoError(t, err)
	return got
}

func TestSetRoleLeavesExactlyOneRow(t *testing.T) {
	db := setupTestDB(t)
	for _, role := range []string{domain.RoleAdmin, domain.RoleSuperAdmin, domain.RoleSeller, domain.RoleBuyer} {
		require.NoError(t, SetRole(db, 1, role))
		assert.Equal(t, []string{role}, rolesOf(t, db, 1), "after SetRole(%q)", role)
	}
}

func TestSetRoleNoneClearsAllRows(t *testing.T) {
	db := setupTestDB(t)
	// Several pre-existing rows are tolerated and must all be cleared.
	require.NoError(t, db.Create(&[]domain.UserRole{
		{UserID: 1, Role: domain.RoleSeller},
		{UserID: 1, Role: domain.RoleBuyer},
		{UserID: 2, Role: domain.RoleSuperAdmin},
	}).Error)

	require.NoError(t, SetRole(db, 1, domain.RoleNone))
	assert.Empty(t, rolesOf(t, db, 1))
	// Other users' assignments are untouched.
	assert.Equal(t, []string{domain.RoleSuperAdmin}, rolesOf(t, db, 2))
}

func TestSetRoleReplacesExistingRows(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SetRole(db, 7, domain.RoleBuyer))
	require.NoError(t, SetRole(db, 7, domain.RoleSeller))

	var count int64
	require.NoError(t, db.Model(&domain.UserRole{}).Where("user_id = ?", 7).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, []string{domain.RoleSeller}, rolesOf(t, db, 7))
}

func TestSetRoleRejectsUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SetRole(db, 1, domain.RoleBuyer))

	assert.Error(t, SetRole(db, 1, "owner"))
	// A rejected role value must not have disturbed the existing row.
	assert.Equal(t, []string{domain.RoleBuyer}, rolesOf(t, db, 1))
}

func TestIsSuperAdmin(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]domain.UserRole{
		{UserID: 1, Role: domain.RoleAdmin},
		{UserID: 1, Role: domain.RoleSeller},
		{UserID: 2, Role: domain.RoleSuperAdmin},
	}).Error)

	// Any population of other roles without superadmin stays false.
	ok, err := IsSuperAdmin(db, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsSuperAdmin(db, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// No rows at all.
	ok, err = IsSuperAdmin(db, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAdminCoarserThanSuperAdmin(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]domain.UserRole{
		{UserID: 1, Role: domain.RoleAdmin},
		{UserID: 2, Role: domain.RoleSuperAdmin},
		{UserID: 3, Role: domain.RoleSeller},
	}).Error)

	for userID, want := range map[uint]bool{1: true, 2: true, 3: false, 4: false} {
		ok, err := IsAdmin(db, userID)
		require.NoError(t, err)
		assert.Equal(t, want, ok, "user %d", userID)
	}
}
