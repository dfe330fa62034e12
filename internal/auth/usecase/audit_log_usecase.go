package usecase

import (
	"context"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	authService "github.com/allisson/mailadmin/internal/auth/service"
)

// auditLogUseCase signs and persists the administrative audit trail.
type auditLogUseCase struct {
	auditRepo AuditLogRepository
	signer    authService.AuditSigner
}

// Record signs the log and persists it. Called after a mutation has already
// succeeded; a failure to record is returned to the caller but cannot undo the
// mutation, so callers log it rather than failing the response.
func (a *auditLogUseCase) Record(ctx context.Context, log *authDomain.AuditLog) error {
	signature, err := a.signer.Sign(log)
	if err != nil {
		return err
	}
	log.Signature = signature

	return a.auditRepo.Create(ctx, log)
}

// List returns audit records, newest first. Superuser only.
func (a *auditLogUseCase) List(
	ctx context.Context,
	identity *authDomain.Identity,
	limit, offset int,
) ([]*authDomain.AuditLog, error) {
	if !identity.IsSuperuser {
		return nil, &authDomain.PermissionDeniedError{Subject: "audit logs"}
	}

	return a.auditRepo.List(ctx, limit, offset)
}

// NewAuditLogUseCase creates a new AuditLogUseCase with the provided dependencies.
func NewAuditLogUseCase(auditRepo AuditLogRepository, signer authService.AuditSigner) AuditLogUseCase {
	return &auditLogUseCase{
		auditRepo: auditRepo,
		signer:    signer,
	}
}
