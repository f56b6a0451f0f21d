package hashutil

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

var seq uint64

// SessionToken mints an opaque token bound to the given parts. The time
// and sequence salts keep tokens unique across rejoins under the same
// identity.
func SessionToken(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part)
		b.WriteByte(':')
	}
	b.WriteString(strconv.FormatInt(time.Now().UnixNano(), 10))
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(atomic.AddUint64(&seq, 1), 10))

	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
