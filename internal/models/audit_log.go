package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionMovementCreated   = "movement_created"
	AuditActionMovementCancelled = "movement_cancelled"
	AuditActionExchangeCreated   = "exchange_created"
	AuditActionBalanceViewed     = "balance_viewed"
	AuditActionAuditExported     = "audit_exported"
	AuditActionMemberRoleChanged = "member_role_changed"
	AuditActionMemberRemoved     = "member_removed"
	AuditActionInvitationCreated = "invitation_created"
	AuditActionInvitationAccept  = "invitation_accepted"
	AuditActionChurchProvisioned = "church_provisioned"
	AuditActionMemberProvisioned = "member_provisioned"
)

const (
	AuditResourceMovement   = "movement"
	AuditResourceBalance    = "balance"
	AuditResourceAuditLog   = "audit_log"
	AuditResourceMembership = "membership"
	AuditResourceInvitation = "invitation"
	AuditResourceChurch     = "church"
)

type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ChurchID   *uuid.UUID `gorm:"type:uuid;index" json:"church_id,omitempty"`
	UserID     string     `gorm:"type:varchar(255);index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string     `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONBMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if al.Metadata == nil {
		return defaultValue
	}
	if value, exists := al.Metadata[key]; exists {
		return value
	}
	return defaultValue
}

func (al *AuditLog) String() string {
	userStr := "anonymous"
	if al.UserID != "" {
		userStr = al.UserID
	}

	return fmt.Sprintf("AuditLog[User: %s, Action: %s, Resource: %s/%s, Time: %s]",
		userStr, al.Action, al.Resource, al.ResourceID, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	al.CreatedAt = al.CreatedAt.UTC()
	return nil
}

// AuditLogFilters narrows an audit log listing. Zero values are ignored.
type AuditLogFilters struct {
	ChurchID  uuid.UUID
	UserID    string
	Action    string
	Resource  string
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
	// Cursor, when set, restricts the listing to entries that sort after it.
	Cursor *AuditCursor
}

// AuditCursor is the last entry of a page in (created_at, id) descending
// order.
type AuditCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// CursorOf returns the position right after log.
func CursorOf(log *AuditLog) *AuditCursor {
	return &AuditCursor{CreatedAt: log.CreatedAt, ID: log.ID}
}

// EnrichedAuditLog is an audit entry with the actor resolved to a person.
type EnrichedAuditLog struct {
	*AuditLog
	ActorEmail string `json:"actor_email,omitempty"`
	ActorName  string `json:"actor_name,omitempty"`
	ActorRole  string `json:"actor_role,omitempty"`
}

// JSONBMap is stored as JSON text so it works on both Postgres and SQLite.
type JSONBMap map[string]interface{}

func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
