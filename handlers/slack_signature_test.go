package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"specsbot/core"
)

func signBody(secret string, timestamp int64, body []byte) string {
	baseString := fmt.Sprintf("v0:%d:%s", timestamp, body)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(baseString))
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySlackSignature(t *testing.T) {
	signingSecret := "test_signing_secret"
	now := time.Unix(1700000000, 0)
	timestamp := now.Unix()
	body := []byte("command=%2Fask&text=hello&channel_id=C123")

	signature := signBody(signingSecret, timestamp, body)
	tsHeader := strconv.FormatInt(timestamp, 10)

	// Valid signature
	if err := verifySlackSignature(signingSecret, tsHeader, signature, body, now); err != nil {
		t.Errorf("Expected valid signature to pass, got error: %v", err)
	}

	// Determinism: signing the same input twice yields the same digest
	if signature != signBody(signingSecret, timestamp, body) {
		t.Error("Expected identical input to produce identical signatures")
	}

	// Flipping any single byte of the signature makes verification fail
	for i := 0; i < len(signature); i++ {
		tampered := []byte(signature)
		tampered[i] ^= 0x01
		if err := verifySlackSignature(signingSecret, tsHeader, string(tampered), body, now); err == nil {
			t.Errorf("Expected tampered signature (byte %d) to fail", i)
		}
	}

	// Tampered body
	if err := verifySlackSignature(signingSecret, tsHeader, signature, []byte("command=%2Fask&text=evil"), now); err == nil {
		t.Error("Expected tampered body to fail")
	}

	// Wrong secret
	if err := verifySlackSignature("other_secret", tsHeader, signature, body, now); err == nil {
		t.Error("Expected wrong secret to fail")
	}

	// Missing headers
	if err := verifySlackSignature(signingSecret, "", signature, body, now); err == nil {
		t.Error("Expected missing timestamp header to fail")
	}
	if err := verifySlackSignature(signingSecret, tsHeader, "", body, now); err == nil {
		t.Error("Expected missing signature header to fail")
	}

	// Non-numeric timestamp
	if err := verifySlackSignature(signingSecret, "not-a-number", signature, body, now); err == nil {
		t.Error("Expected non-numeric timestamp to fail")
	}
}

func TestVerifySlackSignature_ErrorClassification(t *testing.T) {
	signingSecret := "test_signing_secret"
	now := time.Unix(1700000000, 0)
	body := []byte("command=%2Fask")

	err := verifySlackSignature(signingSecret, strconv.FormatInt(now.Unix(), 10), "v0=bogus", body, now)
	if !errors.Is(err, core.ErrInvalidSignature) {
		t.Errorf("Expected digest mismatch to classify as ErrInvalidSignature, got: %v", err)
	}

	staleTS := now.Unix() - 400
	err = verifySlackSignature(signingSecret, strconv.FormatInt(staleTS, 10), signBody(signingSecret, staleTS, body), body, now)
	if !errors.Is(err, core.ErrStaleTimestamp) {
		t.Errorf("Expected stale timestamp to classify as ErrStaleTimestamp, got: %v", err)
	}

	if !core.IsAuthError(err) {
		t.Error("Expected stale timestamp to count as an authentication error")
	}
	if core.IsAuthError(nil) {
		t.Error("Expected nil to not count as an authentication error")
	}
}

func TestVerifySlackSignature_Freshness(t *testing.T) {
	signingSecret := "test_signing_secret"
	now := time.Unix(1700000000, 0)
	body := []byte("command=%2Fask&text=hello")

	// A stale timestamp is rejected even with a correct signature
	oldTimestamp := now.Unix() - 400 // 6+ minutes ago
	oldSignature := signBody(signingSecret, oldTimestamp, body)
	err := verifySlackSignature(signingSecret, strconv.FormatInt(oldTimestamp, 10), oldSignature, body, now)
	if err == nil {
		t.Error("Expected old timestamp to fail regardless of signature correctness")
	}

	// Future timestamps beyond the window are rejected too
	futureTimestamp := now.Unix() + 400
	futureSignature := signBody(signingSecret, futureTimestamp, body)
	err = verifySlackSignature(signingSecret, strconv.FormatInt(futureTimestamp, 10), futureSignature, body, now)
	if err == nil {
		t.Error("Expected far-future timestamp to fail")
	}

	// A timestamp just inside the window passes
	recentTimestamp := now.Unix() - 250
	recentSignature := signBody(signingSecret, recentTimestamp, body)
	err = verifySlackSignature(signingSecret, strconv.FormatInt(recentTimestamp, 10), recentSignature, body, now)
	if err != nil {
		t.Errorf("Expected timestamp inside freshness window to pass, got: %v", err)
	}
}

func TestVerifySlackSignature_EmptyBody(t *testing.T) {
	signingSecret := "test_signing_secret"
	now := time.Unix(1700000000, 0)
	timestamp := now.Unix()

	signature := signBody(signingSecret, timestamp, nil)
	err := verifySlackSignature(signingSecret, strconv.FormatInt(timestamp, 10), signature, nil, now)
	if err != nil {
		t.Errorf("Expected empty body to hash and verify correctly, got: %v", err)
	}
}
