package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Registered error codes, one family per category in the error-handling
// design: authority, configuration, lifecycle, recipient-set, funding,
// token identity, math, and batch shape. Every error is fatal to the
// enclosing operation — callers never retry locally.
var (
	// Authority.
	ErrWrongAdmin       = sdkerrors.Register(ModuleName, 2, "signer is not the admin authority")
	ErrWrongDistributor = sdkerrors.Register(ModuleName, 3, "signer is not the distributor authority")

	// Configuration.
	ErrZeroOrEqualKey       = sdkerrors.Register(ModuleName, 10, "key is zero or equal to a disallowed address")
	ErrInvalidDuration      = sdkerrors.Register(ModuleName, 11, "duration_months must be 12")
	ErrZeroTotalSupply      = sdkerrors.Register(ModuleName, 12, "total_supply must be greater than zero")
	ErrInvalidStartTimestamp = sdkerrors.Register(ModuleName, 13, "start_ts must be positive")
	ErrDistributorUnsafe    = sdkerrors.Register(ModuleName, 14, "distributor must not be a program-owned address")
	ErrInvalidAddressLength = sdkerrors.Register(ModuleName, 15, "address must be exactly 32 bytes")

	// Lifecycle.
	ErrAlreadySealed     = sdkerrors.Register(ModuleName, 20, "recipient list is already sealed")
	ErrNotSealed         = sdkerrors.Register(ModuleName, 21, "schedule is not sealed")
	ErrAlreadyPaused     = sdkerrors.Register(ModuleName, 22, "schedule is already paused")
	ErrNotPaused         = sdkerrors.Register(ModuleName, 23, "schedule is not paused")
	ErrPaused            = sdkerrors.Register(ModuleName, 24, "schedule is paused")
	ErrBeforeStart       = sdkerrors.Register(ModuleName, 25, "operation is not legal before the schedule starts")
	ErrAfterStart        = sdkerrors.Register(ModuleName, 26, "operation is not legal after the schedule starts")
	ErrNotYetEnded       = sdkerrors.Register(ModuleName, 27, "vesting schedule has not yet ended")
	ErrOutstandingAllocs = sdkerrors.Register(ModuleName, 28, "non-revoked recipients still have outstanding allocation")

	// Recipient set.
	ErrRecipientListFull  = sdkerrors.Register(ModuleName, 30, "recipient list is at capacity")
	ErrDuplicateWallet    = sdkerrors.Register(ModuleName, 31, "wallet already present in the recipient list")
	ErrRecipientNotFound  = sdkerrors.Register(ModuleName, 32, "recipient not found")
	ErrRecipientRevoked   = sdkerrors.Register(ModuleName, 33, "recipient is already revoked")
	ErrZeroWallet         = sdkerrors.Register(ModuleName, 34, "wallet must not be the zero address")
	ErrZeroAllocation     = sdkerrors.Register(ModuleName, 35, "allocation must be greater than zero")
	ErrAllocationOverflow = sdkerrors.Register(ModuleName, 36, "sum of allocations would exceed total_supply")
	ErrSealSumMismatch    = sdkerrors.Register(ModuleName, 37, "sum of allocations must equal total_supply to seal")

	// Funding.
	ErrOverDeposit             = sdkerrors.Register(ModuleName, 40, "deposit would leave the vault over-funded")
	ErrVaultNotExactlyFunded   = sdkerrors.Register(ModuleName, 41, "vault is not exactly funded for the first release")
	ErrInsufficientVault       = sdkerrors.Register(ModuleName, 42, "vault balance is insufficient for this release")
	ErrZeroAmount              = sdkerrors.Register(ModuleName, 43, "amount must be greater than zero")
	ErrInsufficientForWithdraw = sdkerrors.Register(ModuleName, 44, "vault balance is insufficient for this withdrawal")

	// Token identity.
	ErrWrongMint          = sdkerrors.Register(ModuleName, 50, "account mint does not match the schedule's mint")
	ErrWrongAccountOwner  = sdkerrors.Register(ModuleName, 51, "account owner does not match the expected owner")
	ErrWrongAssociatedAcc = sdkerrors.Register(ModuleName, 52, "destination is not the canonical associated account")

	// Math.
	ErrMathOverflow     = sdkerrors.Register(ModuleName, 60, "arithmetic overflow or invariant violation")
	ErrInvalidTimestamp = sdkerrors.Register(ModuleName, 61, "invalid timestamp, day-of-month, or second-of-day")

	// Batch shape.
	ErrBatchEmpty                = sdkerrors.Register(ModuleName, 70, "batch must contain at least one wallet")
	ErrBatchTooLarge             = sdkerrors.Register(ModuleName, 71, "batch exceeds the maximum of 5 entries")
	ErrDestinationCountMismatch  = sdkerrors.Register(ModuleName, 72, "destination account count does not match wallet count")
)
