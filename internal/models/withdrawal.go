package models

import (
	"github.com/google/uuid"
)

// Withdrawal statuses reported back to the client.
const (
	WithdrawalStatusSubmitted            = "submitted"
	WithdrawalStatusAwaitingConfirmation = "awaiting_confirmation"
	WithdrawalStatusCancelled            = "cancelled"
)

// OperationWithdrawDelegation is the operation name carried by withdraw instructions.
const OperationWithdrawDelegation = "withdraw_delegation"

// PendingWithdrawal is a withdrawal waiting for the user to accept that part of it will be frozen.
type PendingWithdrawal struct {
	ConfirmationID uuid.UUID `json:"confirmation_id"` // Key the client confirms or cancels with
	UserID         uuid.UUID `json:"user_id"`         // Owner of the request
	NodeID         string    `json:"node_id"`         // Node the delegation is held against
	Amount         string    `json:"amount"`          // Validated amount in canonical decimal form
	FrozenAmount   string    `json:"frozen_amount"`   // Part that will be drawn from locked funds
	CreatedAt      int64     `json:"created_at"`      // Unix seconds
}

// WithdrawInstruction is handed to the hosting chain gateway once a withdrawal is accepted.
type WithdrawInstruction struct {
	WithdrawalID string `json:"withdrawal_id" db:"withdrawal_id"` // Unique identifier of the instruction
	UserID       string `json:"user_id" db:"user_id"`             // Delegator
	NodeID       string `json:"node_id" db:"node_id"`             // Node to withdraw from
	Amount       string `json:"amount" db:"amount"`               // Validated amount as text
	FrozenAmount string `json:"frozen_amount" db:"frozen_amount"` // Part entering the unlock delay, "0" when none
	Timestamp    int64  `json:"timestamp" db:"created_at"`        // Unix seconds
	Operation    string `json:"operation" db:"operation"`         // Always OperationWithdrawDelegation
}

// WithdrawalResult is the outcome of a submit, confirm or cancel call.
type WithdrawalResult struct {
	Status          string
	WithdrawalID    string
	ConfirmationID  string
	Amount          string
	FrozenAmount    string
	UnlockDelayDays int
}
