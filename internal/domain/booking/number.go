package booking

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"

	"stayhub/internal/pkg/errs"
)

const numberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var numberRegex = regexp.MustCompile(`^BK-\d{8}-[A-Z0-9]{6}$`)

// Number is the human-readable booking reference, BK-YYYYMMDD-XXXXXX.
type Number string

func NewNumber(now time.Time) (Number, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "generate booking number")
	}
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = numberAlphabet[int(b)%len(numberAlphabet)]
	}
	return Number(fmt.Sprintf("BK-%s-%s", now.UTC().Format("20060102"), suffix)), nil
}

func (n Number) String() string { return string(n) }

func (n Number) IsValid() bool { return numberRegex.MatchString(string(n)) }
