package models

// AppointmentStatus is a closed enumeration. No transition graph is enforced:
// the status endpoints may overwrite any status with any other valid one.
type AppointmentStatus string

type UserRole string

const (
	AppointmentStatusPending    AppointmentStatus = "pending"
	AppointmentStatusApproved   AppointmentStatus = "approved"
	AppointmentStatusWaiting    AppointmentStatus = "waiting"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusEnRoute    AppointmentStatus = "en_route"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusRejected   AppointmentStatus = "rejected"

	UserRoleClient UserRole = "cliente"
	UserRoleAdmin  UserRole = "admin"
)

// OccupyingStatuses are the statuses that keep a (date, time) slot blocked.
// Completed and rejected appointments free their slot.
var OccupyingStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusApproved,
	AppointmentStatusWaiting,
	AppointmentStatusInProgress,
	AppointmentStatusEnRoute,
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusApproved,
		AppointmentStatusWaiting, AppointmentStatusInProgress,
		AppointmentStatusEnRoute, AppointmentStatusCompleted,
		AppointmentStatusRejected:
		return true
	}
	return false
}

// Occupies reports whether s blocks its slot.
func (s AppointmentStatus) Occupies() bool {
	for _, o := range OccupyingStatuses {
		if s == o {
			return true
		}
	}
	return false
}
