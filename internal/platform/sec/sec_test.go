// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sommelier/internal/platform/sec"
)

// newKeyPair generates a throwaway RSA key for signing test tokens.
func newKeyPair(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

/*
TestTokenService_RoundTrip signs and verifies an operator token.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	key := newKeyPair(t)
	service := sec.NewTokenServiceFromKeys(key, &key.PublicKey, "sommelier.app")

	token, err := service.GenerateAccessToken("op-1", "marie", sec.RoleOperator, time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "op-1", claims.UserID)
	assert.Equal(t, "marie", claims.Username)
	assert.Equal(t, string(sec.RoleOperator), claims.Role)
}

func TestTokenService_RejectsForeignIssuer(t *testing.T) {
	key := newKeyPair(t)
	signer := sec.NewTokenServiceFromKeys(key, &key.PublicKey, "someone-else")
	verifier := sec.NewTokenServiceFromKeys(nil, &key.PublicKey, "sommelier.app")

	token, err := signer.GenerateAccessToken("op-1", "marie", sec.RoleAdmin, time.Minute)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	key := newKeyPair(t)
	service := sec.NewTokenServiceFromKeys(key, &key.PublicKey, "sommelier.app")

	token, err := service.GenerateAccessToken("op-1", "marie", sec.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

func TestTokenService_VerifyOnly(t *testing.T) {
	key := newKeyPair(t)
	service := sec.NewTokenServiceFromKeys(nil, &key.PublicKey, "sommelier.app")

	_, err := service.GenerateAccessToken("op-1", "marie", sec.RoleAdmin, time.Minute)
	assert.ErrorIs(t, err, sec.ErrNoSigningKey)
}

func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleOperator))
	assert.True(t, sec.RoleOperator.AtLeast(sec.RoleOperator))
	assert.False(t, sec.RoleViewer.AtLeast(sec.RoleOperator))
	assert.False(t, sec.UserRole("").AtLeast(sec.RoleViewer))
	assert.False(t, sec.UserRole("chef").AtLeast(sec.RoleViewer))
}
