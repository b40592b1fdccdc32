package search

import (
	"context"
	"errors"

	"doctor-profile-service/internal/domain/entity"

	"github.com/google/uuid"
)

// DefaultPageSize is used when criteria carry no positive page size.
const DefaultPageSize = 10

var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorSource supplies the doctor collection the engine searches.
// FindByID returns nil, nil when no doctor has the given id.
type DoctorSource interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
}

// Engine runs doctor searches against a DoctorSource. It keeps no state
// between calls and is safe for concurrent use.
type Engine struct {
	source          DoctorSource
	defaultPageSize int
}

func NewEngine(source DoctorSource, defaultPageSize int) *Engine {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	return &Engine{
		source:          source,
		defaultPageSize: defaultPageSize,
	}
}

// Search filters the full collection by every criterion present and
// returns the requested page. Source errors are returned as is.
func (e *Engine) Search(ctx context.Context, criteria *entity.DoctorSearchCriteria) (*entity.DoctorPage, error) {
	if criteria == nil {
		criteria = &entity.DoctorSearchCriteria{}
	}

	doctors, err := e.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := Compose(Strategies(criteria)...)(doctors)
	return paginate(matches, criteria.Page, e.pageSize(criteria.Size)), nil
}

func (e *Engine) GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := e.source.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

func (e *Engine) pageSize(size int) int {
	if size <= 0 {
		return e.defaultPageSize
	}
	return size
}

func paginate(matches []entity.Doctor, page, size int) *entity.DoctorPage {
	if page < 0 {
		page = 0
	}
	total := len(matches)

	result := &entity.DoctorPage{
		Content:       []entity.Doctor{},
		TotalElements: total,
		TotalPages:    (total + size - 1) / size,
		Page:          page,
		Size:          size,
	}

	from := page * size
	if from >= total {
		return result
	}
	to := from + size
	if to > total {
		to = total
	}
	result.Content = append(result.Content, matches[from:to]...)
	return result
}
