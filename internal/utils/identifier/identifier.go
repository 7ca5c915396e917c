package identifier

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyOnce sync.Once
	entropy     *ulid.MonotonicEntropy
	entropyMu   sync.Mutex
)

func newEntropy() *ulid.MonotonicEntropy {
	entropyOnce.Do(func() {
		source := rand.NewSource(time.Now().UnixNano())
		entropy = ulid.Monotonic(rand.New(source), 0)
	})
	return entropy
}

func newULID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), newEntropy())
	return strings.ToLower(id.String())
}

// NewTopupNo returns a trx reference for a top-up.
func NewTopupNo() string {
	return "tp_" + newULID()
}

// NewTransactionNo returns a trx reference for a payment.
func NewTransactionNo() string {
	return "tx_" + newULID()
}

// NewTransferNo returns a trx reference for a transfer.
func NewTransferNo() string {
	return "tf_" + newULID()
}

// NewWithdrawNo returns a trx reference for a withdrawal.
func NewWithdrawNo() string {
	return "wd_" + newULID()
}

// NewCardNumber generates a 16 digit card number. Not a real PAN, no
// issuer prefix or Luhn digit is applied.
func NewCardNumber() string {
	const digits = "0123456789"
	var b strings.Builder
	b.Grow(16)
	for i := 0; i < 16; i++ {
		b.WriteByte(digits[rand.Intn(len(digits))])
	}
	return b.String()
}

// NewMerchantAPIKey generates an opaque merchant API key.
func NewMerchantAPIKey() string {
	return "mk_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// NewNocTransfer generates the unique transfer account number assigned
// to each user at registration.
func NewNocTransfer() string {
	return "noc_" + newULID()
}
