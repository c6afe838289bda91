package models

// RoleType distinguishes the two kinds of authenticated sessions.
type RoleType string

const (
	RoleStudent       RoleType = "student"
	RoleAdministrator RoleType = "administrator"
)

// ReviewStatus is the three-state review outcome applied to items and claims.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// ValidDecision reports whether a submitted review decision is one of the
// two accepted outcomes. "pending" is the initial state, never a decision.
func ValidDecision(decision string) bool {
	return decision == string(StatusApproved) || decision == string(StatusRejected)
}
