package ratelimit

import (
	"testing"
	"time"
)

// ============================================================
// Тесты RateLimiter
// ============================================================

func TestNewRateLimiterDefaults(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	if rl.Rate() <= 0 {
		t.Errorf("expected positive default rate, got %v", rl.Rate())
	}
	if rl.Burst() <= 0 {
		t.Errorf("expected positive default burst, got %v", rl.Burst())
	}
}

func TestBurstNeverBelowRate(t *testing.T) {
	rl := NewRateLimiter(10, 5)
	if rl.Burst() != 10 {
		t.Errorf("burst below rate should be raised to rate, got %v", rl.Burst())
	}
}

func TestAllowWithinBurst(t *testing.T) {
	rl := NewRateLimiter(5, 5)

	// Весь burst доступен сразу
	for i := 0; i < 5; i++ {
		if !rl.Allow() {
			t.Fatalf("request %d within burst should be allowed", i)
		}
	}

	// Шестой запрос сверх burst отклоняется
	if rl.Allow() {
		t.Error("request over burst should be rejected")
	}
}

func TestAllowRefills(t *testing.T) {
	rl := NewRateLimiter(100, 100)

	// Осушаем ведро
	for i := 0; i < 100; i++ {
		if !rl.Allow() {
			t.Fatalf("request %d within burst should be allowed", i)
		}
	}
	if rl.Allow() {
		t.Fatal("bucket should be empty")
	}

	// При 100 req/s токен восстанавливается за 10ms
	time.Sleep(30 * time.Millisecond)

	if !rl.Allow() {
		t.Error("token should have refilled")
	}
}

func TestTokensDecrease(t *testing.T) {
	rl := NewRateLimiter(1, 10)

	before := rl.Tokens()
	rl.Allow()
	after := rl.Tokens()

	if after >= before {
		t.Errorf("tokens should decrease after Allow: before=%v after=%v", before, after)
	}
}
