package stub

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	resetTokenLength = 6
	resetTokenTTL    = time.Hour
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ResetTokens holds outstanding password-reset tokens. Tokens expire
// on their own; a redeemed token is gone immediately.
type ResetTokens struct {
	cache *cache.Cache
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{cache: cache.New(resetTokenTTL, 10*time.Minute)}
}

// Issue creates a short token bound to username.
func (r *ResetTokens) Issue(username string) string {
	token := randomToken(resetTokenLength)
	r.cache.Set(token, username, cache.DefaultExpiration)
	return token
}

// Redeem looks a token up and invalidates it.
func (r *ResetTokens) Redeem(token string) (string, bool) {
	v, ok := r.cache.Get(token)
	if !ok {
		return "", false
	}
	r.cache.Delete(token)
	return v.(string), true
}

func randomToken(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err) // crypto/rand failure is not recoverable
		}
		out[i] = tokenAlphabet[idx.Int64()]
	}
	return string(out)
}
