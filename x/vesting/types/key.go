package types

import "crypto/sha256"

const (
	// ModuleName identifies the vesting-escrow program.
	ModuleName = "vesting"

	// MaxRecipients is the capacity of the bounded recipient list.
	MaxRecipients = 35

	// DurationMonths is the only legal vesting duration.
	DurationMonths = 12

	// MaxBatchSize is the largest number of wallets batch_release
	// accepts in a single call.
	MaxBatchSize = 5
)

// Derivation tags for the three program-owned accounts. On a real
// deployment these are combined with the program ID by the host
// runtime to derive an address; here they are exposed as the seed
// material an off-chain inspector or test harness uses to compute the
// same canonical 32-byte identifiers via DeriveAddress.
const (
	ScheduleStateTag = "schedule_state"
	RecipientsTag    = "recipients"
	VaultTag         = "vault"
)

// DeriveAddress computes a deterministic 32-byte identifier from a tag
// and optional seed material, mirroring (without replacing) the
// host runtime's program-derived-address scheme: the real derivation,
// including the bump-seed search and program-ID mixing, is a
// host-runtime responsibility and out of scope for the core.
func DeriveAddress(tag string, seeds ...[]byte) Address {
	h := sha256.New()
	h.Write([]byte(tag))
	for _, s := range seeds {
		h.Write(s)
	}
	var addr Address
	copy(addr[:], h.Sum(nil))
	return addr
}

// ScheduleStateAddress returns the well-known derivation of the
// singleton ScheduleState account.
func ScheduleStateAddress() Address {
	return DeriveAddress(ScheduleStateTag)
}

// RecipientsAddress returns the derivation of the recipients list
// account for a given ScheduleState address.
func RecipientsAddress(scheduleState Address) Address {
	return DeriveAddress(RecipientsTag, scheduleState[:])
}

// VaultAddress returns the derivation of the vault token account for a
// given ScheduleState address.
func VaultAddress(scheduleState Address) Address {
	return DeriveAddress(VaultTag, scheduleState[:])
}
