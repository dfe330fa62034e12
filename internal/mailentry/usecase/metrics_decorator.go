package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/mailentry/domain"
	"github.com/allisson/mailadmin/internal/metrics"
)

// entryUseCaseWithMetrics decorates EntryUseCase with metrics instrumentation.
type entryUseCaseWithMetrics struct {
	next    EntryUseCase
	metrics metrics.BusinessMetrics
}

// NewEntryUseCaseWithMetrics wraps an EntryUseCase with metrics recording.
func NewEntryUseCaseWithMetrics(useCase EntryUseCase, m metrics.BusinessMetrics) EntryUseCase {
	return &entryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (e *entryUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "mailentry", operation, status)
	e.metrics.RecordDuration(ctx, "mailentry", operation, time.Since(start), status)
}

// List records metrics for entry list operations.
func (e *entryUseCaseWithMetrics) List(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName string,
) ([]*domain.MailEntry, error) {
	start := time.Now()
	entries, err := e.next.List(ctx, identity, domainName)
	e.record(ctx, "entry_list", start, err)
	return entries, err
}

// Get records metrics for entry retrieval operations.
func (e *entryUseCaseWithMetrics) Get(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName, entryName string,
) (*domain.MailEntry, error) {
	start := time.Now()
	entry, err := e.next.Get(ctx, identity, domainName, entryName)
	e.record(ctx, "entry_get", start, err)
	return entry, err
}

// Create records metrics for entry creation operations.
func (e *entryUseCaseWithMetrics) Create(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName string,
	input *CreateEntryInput,
) (*domain.MailEntry, error) {
	start := time.Now()
	entry, err := e.next.Create(ctx, identity, domainName, input)
	e.record(ctx, "entry_create", start, err)
	return entry, err
}

// Update records metrics for entry update operations.
func (e *entryUseCaseWithMetrics) Update(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName, entryName string,
	input *UpdateEntryInput,
) (*domain.MailEntry, error) {
	start := time.Now()
	entry, err := e.next.Update(ctx, identity, domainName, entryName, input)
	e.record(ctx, "entry_update", start, err)
	return entry, err
}

// Delete records metrics for entry deletion operations.
func (e *entryUseCaseWithMetrics) Delete(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName, entryName string,
) error {
	start := time.Now()
	err := e.next.Delete(ctx, identity, domainName, entryName)
	e.record(ctx, "entry_delete", start, err)
	return err
}
