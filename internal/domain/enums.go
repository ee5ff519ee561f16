package domain

// ProjectKind classifies who a project is done for.
type ProjectKind string

const (
	ProjectKindClient     ProjectKind = "client"
	ProjectKindPersonal   ProjectKind = "personal"
	ProjectKindOpenSource ProjectKind = "open_source"
)

func (k ProjectKind) String() string { return string(k) }

func (k ProjectKind) IsValid() bool {
	switch k {
	case ProjectKindClient, ProjectKindPersonal, ProjectKindOpenSource:
		return true
	}
	return false
}

// ProjectStatus is the delivery stage of a project.
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusDelivered  ProjectStatus = "delivered"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPending, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusDelivered:
		return true
	}
	return false
}

// IsClosed reports whether no further work is expected on the project.
func (s ProjectStatus) IsClosed() bool {
	return s == ProjectStatusCompleted || s == ProjectStatusDelivered
}

// PaymentState tracks how much of a project has been paid.
type PaymentState string

const (
	PaymentStateUnpaid  PaymentState = "unpaid"
	PaymentStatePartial PaymentState = "partial"
	PaymentStatePaid    PaymentState = "paid"
)

func (p PaymentState) String() string { return string(p) }

func (p PaymentState) IsValid() bool {
	switch p {
	case PaymentStateUnpaid, PaymentStatePartial, PaymentStatePaid:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in logs and error messages).
type EntityType string

const (
	EntityTypeUser          EntityType = "user"
	EntityTypeClient        EntityType = "client"
	EntityTypeProject       EntityType = "project"
	EntityTypeProjectClient EntityType = "project_client"
	EntityTypeTask          EntityType = "task"
	EntityTypeTimelineEntry EntityType = "timeline_entry"
)

func (e EntityType) String() string { return string(e) }
