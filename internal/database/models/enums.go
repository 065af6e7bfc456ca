package models

// ComponentType represents how a component is listed on the exchange
type ComponentType string

const (
	// ComponentTypeGive means the owner offers to lend the item out
	ComponentTypeGive ComponentType = "GIVE"
	// ComponentTypeTake means the owner is seeking to borrow one
	ComponentTypeTake ComponentType = "TAKE"
)

// ComponentStatus represents the availability of a component
type ComponentStatus string

const (
	ComponentStatusAvailable ComponentStatus = "AVAILABLE"
	ComponentStatusBorrowed  ComponentStatus = "BORROWED"
)

// TransactionStatus represents the state of a lending transaction.
// APPROVED is carried for forward compatibility but no transition
// produces it.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusApproved  TransactionStatus = "APPROVED"
	TransactionStatusActive    TransactionStatus = "ACTIVE"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
	TransactionStatusRejected  TransactionStatus = "REJECTED"
)

// IsValid checks if the ComponentType is valid
func (t ComponentType) IsValid() bool {
	switch t {
	case ComponentTypeGive, ComponentTypeTake:
		return true
	}
	return false
}

// IsValid checks if the ComponentStatus is valid
func (s ComponentStatus) IsValid() bool {
	switch s {
	case ComponentStatusAvailable, ComponentStatusBorrowed:
		return true
	}
	return false
}

// IsValid checks if the TransactionStatus is valid
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusApproved, TransactionStatusActive,
		TransactionStatusCompleted, TransactionStatusCancelled, TransactionStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is accepted from s
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusCancelled, TransactionStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the move from s to next is a legal
// transition. Re-applying the current status is allowed so that repeated
// updates stay idempotent.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case TransactionStatusPending:
		return next == TransactionStatusActive ||
			next == TransactionStatusRejected ||
			next == TransactionStatusCancelled
	case TransactionStatusActive:
		return next == TransactionStatusCompleted ||
			next == TransactionStatusRejected ||
			next == TransactionStatusCancelled
	}
	return false
}
