package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// Payment reference prefixes. The prefix routes a gateway verification
	// callback to the right state-machine action.
	REF_PREFIX_RESERVATION = "RSV"
	REF_PREFIX_CONVERSION  = "CNV"
)

// GenerateReservationCode returns a short human-readable code like
// "HB-3F2A9C1D". Uniqueness is enforced by the database; callers retry on
// collision.
func GenerateReservationCode(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(raw[:8]))
}

// NewPaymentReference mints an opaque gateway correlation reference of the
// form <PREFIX>_<entityId>_<random-suffix>.
func NewPaymentReference(prefix string, entityId uint) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s_%d_%s", prefix, entityId, raw[:10])
}

// ParsePaymentReference recovers the purpose prefix and entity id from a
// reference minted by NewPaymentReference.
func ParsePaymentReference(reference string) (prefix string, entityId uint, err error) {
	parts := strings.SplitN(reference, "_", 3)
	if len(parts) != 3 {
		return "", 0, fmt.Errorf("malformed payment reference [%s]", reference)
	}
	if parts[0] != REF_PREFIX_RESERVATION && parts[0] != REF_PREFIX_CONVERSION {
		return "", 0, fmt.Errorf("unknown payment reference prefix [%s]", parts[0])
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil || id == 0 {
		return "", 0, fmt.Errorf("invalid entity id in payment reference [%s]", reference)
	}
	return parts[0], uint(id), nil
}

// Round2 rounds to 2 decimal places, used for money amounts.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
