package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskkeeper/internal/app/server/config"
)

// MockMigrator - мок Migrator
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

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.DB.DatabaseURI = "postgres://localhost:5432/objects"
	cfg.DB.Migrations = "migrations"
	return cfg
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	var gotSource, gotDB string
	engine := func(source, db string) (Migrator, error) {
		gotSource, gotDB = source, db
		return mockM, nil
	}

	err := NewMigration(testConfig(), engine).Up()

	assert.NoError(t, err)
	assert.Equal(t, "file://migrations", gotSource)
	assert.Equal(t, "postgres://localhost:5432/objects", gotDB)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange не должна считаться ошибкой в методе Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	assert.NoError(t, NewMigration(testConfig(), engine).Up())
}

func TestMigration_Up_Failure(t *testing.T) {
	mockM := new(MockMigrator)
	upErr := errors.New("syntax error at line 3")
	mockM.On("Up").Return(upErr)
	mockM.On("Close").Return(nil, errors.New("connection closed"))

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(testConfig(), engine).Up()

	assert.ErrorIs(t, err, upErr)
	assert.Contains(t, err.Error(), "migration database error")
}

func TestMigration_Up_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора (например, неверный драйвер)
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration(testConfig(), engine).Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}
