package shared

import (
	"context"
	"time"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/incident"
	"servicedesk/internal/domain/messaging"
	"servicedesk/internal/domain/order"
	"servicedesk/internal/domain/user"
	"servicedesk/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Offerings() OfferingRepository
	Orders() OrderRepository
	Incidents() IncidentRepository
	Messages() MessageRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	OfferingByID(ctx context.Context, id uuid.UUID) (*OfferingSnapshot, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	IncidentByID(ctx context.Context, id uuid.UUID) (*IncidentSnapshot, error)
	// BlockedEither reports whether a block exists between two users in
	// either direction.
	BlockedEither(ctx context.Context, a, b uuid.UUID) (bool, error)
}

// Minimal snapshots for command read operations

type UserSnapshot struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OfferingSnapshot struct {
	ID        uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Category  string
	IsActive  bool
}

type RequestSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	RequestDate time.Time
	Status      string
	TotalPrice  decimal.Decimal
}

type IncidentSnapshot struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Status         string
	ReporterID     uuid.UUID
	AssigneeID     *uuid.UUID
	ResolutionTime *int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateRole(ctx context.Context, tx db.DBTX, id uuid.UUID, role user.Role) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type OfferingRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *catalog.ServiceOffering) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, o *catalog.ServiceOffering) error
	Deactivate(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type OrderRepository interface {
	CreateRequest(ctx context.Context, tx db.DBTX, r *order.ServiceRequest) (uuid.UUID, error)
	CreateItem(ctx context.Context, tx db.DBTX, item *order.ServiceCartItem) error
	UpdateTotal(ctx context.Context, tx db.DBTX, requestID uuid.UUID, total decimal.Decimal) error
	UpdateStatus(ctx context.Context, tx db.DBTX, requestID uuid.UUID, status order.Status) error
}

type IncidentRepository interface {
	Create(ctx context.Context, tx db.DBTX, inc *incident.Incident) (uuid.UUID, error)
	// Update persists status, assignee, resolution time and updated_at.
	Update(ctx context.Context, tx db.DBTX, inc *incident.Incident) error
}

type MessageRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *messaging.Message) (uuid.UUID, error)
	Block(ctx context.Context, tx db.DBTX, blockerID, blockedID uuid.UUID) error
	Unblock(ctx context.Context, tx db.DBTX, blockerID, blockedID uuid.UUID) error
	DeleteConversation(ctx context.Context, tx db.DBTX, a, b uuid.UUID) error
}
