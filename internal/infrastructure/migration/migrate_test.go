package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"artregistry/internal/app/server/config"
)

type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(&config.Config{}, engine)
	err := mg.Up()

	assert.NoError(t, err)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange is not an error for Up().
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(&config.Config{}, engine)
	err := mg.Up()

	assert.NoError(t, err)
}

func TestMigration_Up_EngineError(t *testing.T) {
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	mg := NewMigration(&config.Config{}, engine)
	err := mg.Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}

func TestMigration_Up_CloseErrorSurfaces(t *testing.T) {
	mockM := new(MockMigrator)

	// A clean Up must still report a failed Close.
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(errors.New("source close failed"), nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(&config.Config{}, engine)
	err := mg.Up()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "source close failed")
}

func TestMigration_Up_CloseErrorsAppendToUpError(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(errors.New("dirty database"))
	mockM.On("Close").Return(nil, errors.New("db close failed"))

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(&config.Config{}, engine)
	err := mg.Up()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
	assert.Contains(t, err.Error(), "db close failed")
}

func TestMigration_Up_MigrateError(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(errors.New("dirty database"))
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(&config.Config{}, engine)
	err := mg.Up()

	assert.Error(t, err)
}
