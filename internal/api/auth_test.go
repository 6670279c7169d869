package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"
)

const testToken = "123456:test-token"

// signInitData подписывает пары ключ=значение так же, как это делает Telegram
func signInitData(t *testing.T, data map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+data[k])
	}

	secret := sha256.Sum256([]byte(testToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(lines, "\n")))
	hash := hex.EncodeToString(mac.Sum(nil))

	var pairs []string
	for _, k := range keys {
		pairs = append(pairs, k+"="+data[k])
	}
	pairs = append(pairs, "hash="+hash)
	return strings.Join(pairs, "&")
}

func TestVerifyInitData(t *testing.T) {
	userJSON := url.QueryEscape(`{"id":42,"first_name":"Иван","last_name":"Петров"}`)
	initData := signInitData(t, map[string]string{
		"auth_date": "1700000000",
		"query_id":  "AAE",
		"user":      userJSON,
	})

	user, err := VerifyInitData(initData, testToken)
	if err != nil {
		t.Fatalf("VerifyInitData() error = %v", err)
	}
	if user.ID != 42 {
		t.Errorf("ID = %d, ожидалось 42", user.ID)
	}
	if user.FirstName != "Иван" {
		t.Errorf("FirstName = %s, ожидалось Иван", user.FirstName)
	}
}

func TestVerifyInitDataRejectsTamper(t *testing.T) {
	userJSON := url.QueryEscape(`{"id":42,"first_name":"Иван"}`)
	initData := signInitData(t, map[string]string{
		"auth_date": "1700000000",
		"user":      userJSON,
	})

	tampered := strings.Replace(initData, "1700000000", "1700000001", 1)
	if _, err := VerifyInitData(tampered, testToken); err == nil {
		t.Error("подделанный initData прошёл проверку")
	}
}

func TestVerifyInitDataWrongToken(t *testing.T) {
	userJSON := url.QueryEscape(`{"id":42,"first_name":"Иван"}`)
	initData := signInitData(t, map[string]string{
		"auth_date": "1700000000",
		"user":      userJSON,
	})

	if _, err := VerifyInitData(initData, "другой-токен"); err == nil {
		t.Error("initData с чужим токеном прошёл проверку")
	}
}

func TestVerifyInitDataMissingHash(t *testing.T) {
	if _, err := VerifyInitData("auth_date=1700000000", testToken); err == nil {
		t.Error("initData без hash прошёл проверку")
	}
}

func TestVerifyInitDataMissingUser(t *testing.T) {
	initData := signInitData(t, map[string]string{"auth_date": "1700000000"})
	if _, err := VerifyInitData(initData, testToken); err == nil {
		t.Error("initData без user прошёл проверку")
	}
}
