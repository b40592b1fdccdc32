package usecase_test

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

type MockDoctorSearcher struct {
	testifymock.Mock
}

func (m *MockDoctorSearcher) Search(ctx context.Context, criteria *entity.DoctorSearchCriteria) (*entity.DoctorPage, error) {
	args := m.Called(ctx, criteria)
	page, _ := args.Get(0).(*entity.DoctorPage)
	return page, args.Error(1)
}

func (m *MockDoctorSearcher) GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	args := m.Called(ctx, id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

type MockDoctorCatalog struct {
	testifymock.Mock
}

func (m *MockDoctorCatalog) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

type MockAuditService struct {
	testifymock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, actorID string, action string, entityName string, entityID string, newValue interface{}) error {
	return m.Called(ctx, tx, actorID, action, entityName, entityID, newValue).Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, actorID string, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return m.Called(ctx, tx, actorID, action, entityName, entityID, oldValue, newValue).Error(0)
}

func (m *MockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, actorID string, action string, entityName string, entityID string, oldValue interface{}) error {
	return m.Called(ctx, tx, actorID, action, entityName, entityID, oldValue).Error(0)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, dbMock
}

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}
