package service

import (
	"context"
	"errors"
	"time"

	"doctor-profile-service/internal/domain/entity"
	"doctor-profile-service/internal/domain/repository"
	"doctor-profile-service/internal/infrastructure/cache"
	"doctor-profile-service/internal/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// catalogCacheTimeout bounds every individual snapshot cache call.
const catalogCacheTimeout = 2 * time.Second

// SnapshotCache is the doctor collection cache the catalog reads through.
type SnapshotCache interface {
	Load(ctx context.Context) ([]entity.Doctor, error)
	Store(ctx context.Context, doctors []entity.Doctor) error
	Invalidate(ctx context.Context) error
}

// DoctorCatalogService serves the doctor collection to the search engine.
//
// Reads go through the Redis snapshot when one is cached; any cache
// failure falls back to PostgreSQL. Database errors are returned
// unchanged. The snapshot is dropped after every admin write.
type DoctorCatalogService struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	cache      SnapshotCache
	metrics    *metrics.Metrics
}

func NewDoctorCatalogService(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, cache SnapshotCache, metrics *metrics.Metrics) *DoctorCatalogService {
	return &DoctorCatalogService{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		cache:      cache,
		metrics:    metrics,
	}
}

func (s *DoctorCatalogService) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if doctors, ok := s.loadSnapshot(ctx); ok {
		return doctors, nil
	}

	doctors, err := s.doctorRepo.FindAll(s.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	s.storeSnapshot(ctx, doctors)
	return doctors, nil
}

func (s *DoctorCatalogService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return s.doctorRepo.FindByID(s.db.WithContext(ctx), id)
}

// Warm loads the collection from the database into the snapshot cache.
// Called once during startup, before the server accepts traffic.
func (s *DoctorCatalogService) Warm(ctx context.Context) error {
	s.log.Info("Warming doctor snapshot cache...")
	startTime := time.Now()

	doctors, err := s.doctorRepo.FindAll(s.db.WithContext(ctx))
	if err != nil {
		s.log.Warnf("Failed to load doctors for snapshot: %+v", err)
		return err
	}

	if s.cache == nil {
		return nil
	}
	cacheCtx, cancel := context.WithTimeout(ctx, catalogCacheTimeout)
	defer cancel()
	if err := s.cache.Store(cacheCtx, doctors); err != nil {
		s.log.Warnf("Failed to store doctor snapshot: %+v", err)
		return err
	}

	s.log.Infof("Doctor snapshot cache warmed: %d doctors in %v", len(doctors), time.Since(startTime))
	return nil
}

// Invalidate drops the cached snapshot so the next read hits the database.
func (s *DoctorCatalogService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	cacheCtx, cancel := context.WithTimeout(ctx, catalogCacheTimeout)
	defer cancel()
	if err := s.cache.Invalidate(cacheCtx); err != nil {
		s.log.Warnf("Failed to invalidate doctor snapshot: %+v", err)
	}
}

func (s *DoctorCatalogService) loadSnapshot(ctx context.Context) ([]entity.Doctor, bool) {
	if s.cache == nil {
		return nil, false
	}
	cacheCtx, cancel := context.WithTimeout(ctx, catalogCacheTimeout)
	defer cancel()

	doctors, err := s.cache.Load(cacheCtx)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			s.metrics.IncrementCacheLookup(metrics.CacheMiss)
		} else {
			s.metrics.IncrementCacheLookup(metrics.CacheError)
			s.log.Warnf("Failed to load doctor snapshot, falling back to database: %+v", err)
		}
		return nil, false
	}
	s.metrics.IncrementCacheLookup(metrics.CacheHit)
	return doctors, true
}

func (s *DoctorCatalogService) storeSnapshot(ctx context.Context, doctors []entity.Doctor) {
	if s.cache == nil {
		return
	}
	cacheCtx, cancel := context.WithTimeout(ctx, catalogCacheTimeout)
	defer cancel()
	if err := s.cache.Store(cacheCtx, doctors); err != nil {
		s.log.Warnf("Failed to store doctor snapshot: %+v", err)
	}
}
