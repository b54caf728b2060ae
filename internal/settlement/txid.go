package settlement

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// newTransactionID mints an identifier unique for the process lifetime:
// a UTC timestamp prefix plus a short random suffix.
func newTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "TXN" + time.Now().UTC().Format("20060102150405") + suffix
}
