package dto

import (
	"church-admin/internal/models"
)

// AuditLogListResponse represents a paginated list of audit entries
type AuditLogListResponse struct {
	AuditLogs  []*models.EnrichedAuditLog `json:"audit_logs"`
	Pagination PaginationInfo             `json:"pagination"`
}
