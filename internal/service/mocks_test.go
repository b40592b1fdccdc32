package service_test

import (
	"context"
	"testing"

	"doctor-profile-service/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockDoctorRepository is a mock implementation of repository.DoctorRepository
type MockDoctorRepository struct {
	testifymock.Mock
}

func (m *MockDoctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return m.Called(db, doctor).Error(0)
}

func (m *MockDoctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	args := m.Called(db, id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	args := m.Called(db)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return m.Called(db, doctor).Error(0)
}

func (m *MockDoctorRepository) ReplaceSchedules(db *gorm.DB, doctorID uuid.UUID, schedules []entity.WorkingSchedule) error {
	return m.Called(db, doctorID, schedules).Error(0)
}

func (m *MockDoctorRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of repository.AuditLogRepository
type MockAuditLogRepository struct {
	testifymock.Mock
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return m.Called(db, log).Error(0)
}

func (m *MockAuditLogRepository) Search(db *gorm.DB, filter entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	args := m.Called(db, filter)
	logs, _ := args.Get(0).([]entity.AuditLog)
	return logs, args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(db, id)
	log, _ := args.Get(0).(*entity.AuditLog)
	return log, args.Error(1)
}

// MockSnapshotCache is a mock implementation of service.SnapshotCache
type MockSnapshotCache struct {
	testifymock.Mock
}

func (m *MockSnapshotCache) Load(ctx context.Context) ([]entity.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

func (m *MockSnapshotCache) Store(ctx context.Context, doctors []entity.Doctor) error {
	return m.Called(ctx, doctors).Error(0)
}

func (m *MockSnapshotCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newMockDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db
}

func newTestLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}
