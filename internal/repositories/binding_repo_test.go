package repositories

import (
	"context"
	"testing"
	"time"

	"keyhub/internal/common"
	"keyhub/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type BindingRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    BindingRepository
	context context.Context
}

func (suite *BindingRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewBindingRepo(mock)
	suite.context = context.Background()
}

func (suite *BindingRepoTestSuite) TearDownTest() {
	suite.mock.Close()
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func TestBindingRepoTestSuite(t *testing.T) {
	suite.Run(t, new(BindingRepoTestSuite))
}

func (suite *BindingRepoTestSuite) TestInsert_Success() {
	binding := &models.MachineBinding{
		ID:        uuid.New(),
		LicenseID: uuid.New(),
		KeyValue:  "KH-AAAAAAAA-BBBBBBBB",
		MachineID: "machine-1",
	}

	suite.mock.ExpectExec(`INSERT INTO machine_bindings`).
		WithArgs(binding.ID, binding.LicenseID, binding.KeyValue, binding.MachineID, binding.Remarks).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Insert(suite.context, binding)
	assert.NoError(suite.T(), err)
}

func (suite *BindingRepoTestSuite) TestInsert_AlreadyBound() {
	binding := &models.MachineBinding{
		ID:        uuid.New(),
		LicenseID: uuid.New(),
		KeyValue:  "KH-AAAAAAAA-BBBBBBBB",
		MachineID: "machine-1",
	}

	suite.mock.ExpectExec(`INSERT INTO machine_bindings`).
		WithArgs(binding.ID, binding.LicenseID, binding.KeyValue, binding.MachineID, binding.Remarks).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "machine_bindings_key_value_machine_id_key"})

	err := suite.repo.Insert(suite.context, binding)
	assert.ErrorIs(suite.T(), err, common.ErrConflict)
}

func (suite *BindingRepoTestSuite) TestInsert_LicenseGone() {
	binding := &models.MachineBinding{
		ID:        uuid.New(),
		LicenseID: uuid.New(),
		KeyValue:  "KH-AAAAAAAA-BBBBBBBB",
		MachineID: "machine-1",
	}

	suite.mock.ExpectExec(`INSERT INTO machine_bindings`).
		WithArgs(binding.ID, binding.LicenseID, binding.KeyValue, binding.MachineID, binding.Remarks).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "machine_bindings_license_id_fkey"})

	err := suite.repo.Insert(suite.context, binding)
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *BindingRepoTestSuite) TestExists_Bound() {
	rows := pgxmock.NewRows([]string{"count"}).AddRow(1)

	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM machine_bindings WHERE key_value = \$1 AND machine_id = \$2`).
		WithArgs("KH-AAAAAAAA-BBBBBBBB", "machine-1").
		WillReturnRows(rows)

	exists, err := suite.repo.Exists(suite.context, "KH-AAAAAAAA-BBBBBBBB", "machine-1")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)
}

func (suite *BindingRepoTestSuite) TestExists_NotBound() {
	rows := pgxmock.NewRows([]string{"count"}).AddRow(0)

	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM machine_bindings`).
		WithArgs("KH-AAAAAAAA-BBBBBBBB", "machine-2").
		WillReturnRows(rows)

	exists, err := suite.repo.Exists(suite.context, "KH-AAAAAAAA-BBBBBBBB", "machine-2")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *BindingRepoTestSuite) TestListByKey() {
	licenseID := uuid.New()
	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "license_id", "key_value", "machine_id", "remarks", "bound_at"}).
		AddRow(uuid.New(), licenseID, "KH-AAAAAAAA-BBBBBBBB", "machine-2", "", now).
		AddRow(uuid.New(), licenseID, "KH-AAAAAAAA-BBBBBBBB", "machine-1", "first install", now.Add(-time.Hour))

	suite.mock.ExpectQuery(`FROM machine_bindings\s+WHERE key_value = \$1\s+ORDER BY bound_at DESC`).
		WithArgs("KH-AAAAAAAA-BBBBBBBB").
		WillReturnRows(rows)

	bindings, err := suite.repo.ListByKey(suite.context, "KH-AAAAAAAA-BBBBBBBB")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), bindings, 2)
	assert.Equal(suite.T(), "machine-2", bindings[0].MachineID)
	assert.Equal(suite.T(), "first install", bindings[1].Remarks)
}

func (suite *BindingRepoTestSuite) TestDelete_NoMatch() {
	id := uuid.New()

	suite.mock.ExpectExec(`DELETE FROM machine_bindings WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	affected, err := suite.repo.Delete(suite.context, id)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), affected)
}

func (suite *BindingRepoTestSuite) TestSetRemarks() {
	id := uuid.New()

	suite.mock.ExpectExec(`UPDATE machine_bindings SET remarks = \$1 WHERE id = \$2`).
		WithArgs("lab workstation", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	affected, err := suite.repo.SetRemarks(suite.context, id, "lab workstation")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), affected)
}
