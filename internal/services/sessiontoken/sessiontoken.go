package sessiontoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/knagata/partstrack/internal/entities"
)

const tokenExp = time.Hour * 3

type claims struct {
	jwt.RegisteredClaims
	Username string
	Role     string
}

// Manager signs and parses session tokens carrying the requester identity.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

func (m *Manager) Parse(accessToken string) (entities.Identity, error) {
	claims := &claims{}

	token, err := jwt.ParseWithClaims(
		accessToken,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		},
	)

	if err != nil {
		return entities.Identity{}, err
	}

	if !token.Valid || claims.Username == "" {
		return entities.Identity{}, fmt.Errorf("token is not valid")
	}

	return entities.Identity{Username: claims.Username, Role: claims.Role}, nil
}

func (m *Manager) Generate(identity entities.Identity) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExp)),
		},
		Username: identity.Username,
		Role:     identity.Role,
	})

	accessToken, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return accessToken, nil
}
