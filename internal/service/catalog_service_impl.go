package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/db"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/importer"
	"github.com/alexanderramin/courseplan/internal/repository"
)

type catalogService struct {
	courses  repository.CourseRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCatalogService(courses repository.CourseRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		courses:  courses,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Import replaces the stored catalog with the contents of a JSON or CSV
// file. Nothing is written unless the whole file validates.
func (s *catalogService) Import(ctx context.Context, path string) (*app.CatalogImportResult, error) {
	started := timeNow()
	res, err := s.importFile(ctx, path)

	fields := map[string]any{"path": path}
	if res != nil {
		fields["format"] = res.Format
		fields["courses"] = res.CourseCount
		fields["sections"] = res.SectionCount
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "catalog.import",
		Duration:  timeNow().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	return res, err
}

func (s *catalogService) importFile(ctx context.Context, path string) (*app.CatalogImportResult, error) {
	schema, format, err := importer.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	if errs := importer.ValidateCatalog(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	courses, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting catalog: %w", err)
	}
	if _, err := domain.NewCatalog(courses); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCourseRepo(tx).ReplaceAll(ctx, courses)
	})
	if err != nil {
		return nil, fmt.Errorf("storing catalog: %w", err)
	}

	res := &app.CatalogImportResult{Path: path, Format: format, CourseCount: len(courses)}
	for _, c := range courses {
		res.SectionCount += len(c.Sections)
		for _, sec := range c.Sections {
			res.SlotCount += len(sec.TimeSlots)
		}
	}
	return res, nil
}

func (s *catalogService) List(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	return courses, nil
}

// ErrEmptyCatalog is returned by catalog sources that hold no courses.
var ErrEmptyCatalog = errors.New("catalog is empty; import one first")

type repoCatalogSource struct {
	courses repository.CourseRepo
}

// NewRepoCatalogSource reads the stored catalog on every call, so a fresh
// import is visible to the next plan request.
func NewRepoCatalogSource(courses repository.CourseRepo) CatalogSource {
	return &repoCatalogSource{courses: courses}
}

func (s *repoCatalogSource) Catalog(ctx context.Context) (*domain.Catalog, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if len(courses) == 0 {
		return nil, ErrEmptyCatalog
	}
	return domain.NewCatalog(courses)
}

type staticCatalogSource struct {
	catalog *domain.Catalog
}

// NewStaticCatalogSource serves one fixed in-memory catalog.
func NewStaticCatalogSource(c *domain.Catalog) CatalogSource {
	return staticCatalogSource{catalog: c}
}

func (s staticCatalogSource) Catalog(context.Context) (*domain.Catalog, error) {
	if s.catalog == nil {
		return nil, ErrEmptyCatalog
	}
	return s.catalog, nil
}

// CachedCatalogSource memoizes another source until Invalidate is called.
type CachedCatalogSource struct {
	next CatalogSource

	mu      sync.Mutex
	catalog *domain.Catalog
}

// NewCachedCatalogSource wraps next so the catalog is built once and shared
// by concurrent requests. Errors are not cached.
func NewCachedCatalogSource(next CatalogSource) *CachedCatalogSource {
	return &CachedCatalogSource{next: next}
}

func (s *CachedCatalogSource) Catalog(ctx context.Context) (*domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog != nil {
		return s.catalog, nil
	}
	c, err := s.next.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	s.catalog = c
	return c, nil
}

// Invalidate drops the memoized catalog; the next call rebuilds it.
func (s *CachedCatalogSource) Invalidate() {
	s.mu.Lock()
	s.catalog = nil
	s.mu.Unlock()
}
