package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-profile-service/internal/converter"
	"doctor-profile-service/internal/delivery/dto"
	"doctor-profile-service/internal/delivery/http/middleware"
	"doctor-profile-service/internal/domain/entity"
	"doctor-profile-service/internal/domain/repository"
	"doctor-profile-service/internal/infrastructure/metrics"
	"doctor-profile-service/internal/service"
	"doctor-profile-service/internal/service/search"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound           = errors.New("doctor not found")
	ErrInvalidSpeciality        = errors.New("invalid speciality")
	ErrInvalidWorkingDay        = errors.New("invalid working day")
	ErrInvalidTimeFormat        = errors.New("invalid time format, use HH:mm")
	ErrInvalidTimeRange         = errors.New("start time must not be after end time")
	ErrDuplicateWorkingSchedule = errors.New("duplicate working schedule entry")
)

// DoctorSearcher runs validated searches over the doctor collection.
type DoctorSearcher interface {
	Search(ctx context.Context, criteria *entity.DoctorSearchCriteria) (*entity.DoctorPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
}

// DoctorCatalog is told whenever the doctor collection changes.
type DoctorCatalog interface {
	Invalidate(ctx context.Context)
}

type DoctorProfileUsecase interface {
	SearchDoctors(ctx context.Context, req *dto.DoctorSearchRequest) (*dto.DoctorPageResponse, error)
	GetAllDoctors(ctx context.Context, page, size int) (*dto.DoctorPageResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	searcher     DoctorSearcher
	catalog      DoctorCatalog
	auditService service.AuditService
	metrics      *metrics.Metrics
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	searcher DoctorSearcher,
	catalog DoctorCatalog,
	auditService service.AuditService,
	metrics *metrics.Metrics,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		searcher:     searcher,
		catalog:      catalog,
		auditService: auditService,
		metrics:      metrics,
	}
}

// SearchDoctors validates the raw criteria and returns one page of matches.
// Invalid criteria come back as *search.InvalidCriterionError.
func (u *doctorProfileUsecase) SearchDoctors(ctx context.Context, req *dto.DoctorSearchRequest) (*dto.DoctorPageResponse, error) {
	startTime := time.Now()
	criteria, err := search.ParseCriteria(search.RawCriteria{
		Name:            req.Name,
		Speciality:      req.Speciality,
		WorkingSchedule: req.WorkingSchedule,
		WorkingDay:      req.WorkingDay,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Page:            req.Page,
		Size:            req.Size,
	})
	if err != nil {
		u.log.Debugf("Rejected doctor search criteria: %v", err)
		u.metrics.ObserveSearch(metrics.OutcomeInvalid, time.Since(startTime))
		return nil, err
	}

	page, err := u.searcher.Search(ctx, criteria)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		u.metrics.ObserveSearch(metrics.OutcomeError, time.Since(startTime))
		return nil, err
	}
	u.metrics.ObserveSearch(metrics.OutcomeOK, time.Since(startTime))
	u.metrics.ObserveMatches(page.TotalElements)

	return converter.DoctorPageToResponse(page), nil
}

func (u *doctorProfileUsecase) GetAllDoctors(ctx context.Context, page, size int) (*dto.DoctorPageResponse, error) {
	return u.SearchDoctors(ctx, &dto.DoctorSearchRequest{Page: page, Size: size})
}

func (u *doctorProfileUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.searcher.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, search.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorProfileUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	speciality, ok := entity.ParseSpeciality(req.Speciality)
	if !ok {
		return nil, ErrInvalidSpeciality
	}
	schedules, err := toWorkingSchedules(req.WorkingSchedules)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		Name:             req.Name,
		Speciality:       speciality,
		WorkingSchedules: schedules,
	}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		if isDuplicateKeyError(err, "working_schedules") {
			return nil, ErrDuplicateWorkingSchedule
		}
		return nil, err
	}

	// Audit log - create doctor
	actorID, _ := middleware.GetActorIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	u.catalog.Invalidate(ctx)

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorProfileUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	var speciality entity.Speciality
	if req.Speciality != "" {
		parsed, ok := entity.ParseSpeciality(req.Speciality)
		if !ok {
			return nil, ErrInvalidSpeciality
		}
		speciality = parsed
	}

	var schedules []entity.WorkingSchedule
	if req.WorkingSchedules != nil {
		parsed, err := toWorkingSchedules(*req.WorkingSchedules)
		if err != nil {
			return nil, err
		}
		schedules = parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Capture old value for audit
	oldValue := converter.DoctorToResponse(doctor)

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if speciality != "" {
		doctor.Speciality = speciality
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if req.WorkingSchedules != nil {
		if err := u.doctorRepo.ReplaceSchedules(tx, doctor.ID, schedules); err != nil {
			u.log.Warnf("Failed to replace working schedules: %+v", err)
			if isDuplicateKeyError(err, "working_schedules") {
				return nil, ErrDuplicateWorkingSchedule
			}
			return nil, err
		}
		doctor.WorkingSchedules = schedules
	}

	// Audit log - update doctor
	newValue := converter.DoctorToResponse(doctor)
	actorID, _ := middleware.GetActorIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionDoctorUpdate, "doctor", doctorID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	u.catalog.Invalidate(ctx)

	return newValue, nil
}

func (u *doctorProfileUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Get doctor for audit log before delete
	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	oldValue := converter.DoctorToResponse(doctor)

	affectedRows, err := u.doctorRepo.Delete(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	// Audit log - delete doctor
	actorID, _ := middleware.GetActorIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionDoctorDelete, "doctor", doctorID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	u.catalog.Invalidate(ctx)

	return nil
}

func toWorkingSchedules(requests []dto.WorkingScheduleRequest) ([]entity.WorkingSchedule, error) {
	schedules := make([]entity.WorkingSchedule, 0, len(requests))
	for _, req := range requests {
		day, ok := entity.ParseDayOfWeek(req.Day)
		if !ok {
			return nil, ErrInvalidWorkingDay
		}
		start, err := entity.ParseTimeOfDay(req.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		end, err := entity.ParseTimeOfDay(req.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if start > end {
			return nil, ErrInvalidTimeRange
		}
		schedules = append(schedules, entity.WorkingSchedule{
			Label:     req.Label,
			Day:       day,
			StartTime: start,
			EndTime:   end,
		})
	}
	return schedules, nil
}
