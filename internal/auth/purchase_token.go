package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"frontend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid purchase token")

// PurchaseClaims bind the trip and the price quoted on the search page, so the
// purchase form cannot be replayed against another trip or price.
type PurchaseClaims struct {
	TripID domain.ID `json:"trip_id"`
	Price  float64   `json:"price"`
	jwt.RegisteredClaims
}

type PurchaseTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewPurchaseTokens signs with HS256. An empty secret generates a random key,
// which invalidates outstanding tokens on restart.
func NewPurchaseTokens(secret string, ttl time.Duration) (*PurchaseTokens, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate form secret: %w", err)
		}
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &PurchaseTokens{secret: key, ttl: ttl, now: time.Now}, nil
}

func (p *PurchaseTokens) Issue(tripID domain.ID, price float64) (string, error) {
	now := p.now()
	claims := PurchaseClaims{
		TripID: tripID,
		Price:  price,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *PurchaseTokens) Verify(token string) (PurchaseClaims, error) {
	var claims PurchaseClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return PurchaseClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.TripID <= 0 {
		return PurchaseClaims{}, ErrInvalidToken
	}
	return claims, nil
}
