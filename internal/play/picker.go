// apps/go-cli/internal/play/picker.go
//
// Secret-word selection strategies for the play service.
//   - RandomPicker: uniform, crypto/rand backed (default).
//   - DailyPicker:  one word per UTC day, HMAC(salt, YYYY-MM-DD) % n.

package play

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/big"
	"time"
)

// Picker chooses an index in [0, n).
type Picker interface {
	Pick(n int) (int, error)
}

// PickerFunc adapts a plain function to Picker.
type PickerFunc func(n int) (int, error)

// Pick calls f.
func (f PickerFunc) Pick(n int) (int, error) { return f(n) }

var errNoCandidates = errors.New("no candidates to pick from")

// RandomPicker picks uniformly using the process-wide crypto/rand reader.
type RandomPicker struct{}

// Pick returns a uniformly random index.
func (RandomPicker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, errNoCandidates
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(nBig.Int64()), nil
}

// DailyPicker returns the same index for every call on a given UTC day.
type DailyPicker struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// Pick returns the index for today's date.
func (d DailyPicker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, errNoCandidates
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return DayIndex(now(), d.Salt, n), nil
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DayIndex maps a date to an index in [0, n) using HMAC-SHA256(salt, DateKey).
func DayIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
