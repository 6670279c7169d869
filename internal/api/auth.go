package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strings"
)

// InitDataUser пользователь из initData мини-приложения
type InitDataUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

var (
	errMissingHash = errors.New("в initData нет hash")
	errBadHash     = errors.New("подпись initData не совпадает")
	errMissingUser = errors.New("в initData нет user")
)

// VerifyInitData проверяет подпись initData Telegram-мини-приложения
// и возвращает пользователя из неё
func VerifyInitData(initData, botToken string) (*InitDataUser, error) {
	pairs := strings.Split(initData, "&")
	data := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		data[k] = v
	}

	receivedHash, ok := data["hash"]
	if !ok {
		return nil, errMissingHash
	}
	delete(data, "hash")

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+data[k])
	}
	checkString := strings.Join(lines, "\n")

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(checkString))
	calculated := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(calculated), []byte(receivedHash)) {
		return nil, errBadHash
	}

	userRaw, ok := data["user"]
	if !ok || userRaw == "" {
		return nil, errMissingUser
	}
	decoded, err := url.QueryUnescape(userRaw)
	if err != nil {
		return nil, errMissingUser
	}

	var user InitDataUser
	if err := json.Unmarshal([]byte(decoded), &user); err != nil {
		return nil, errMissingUser
	}
	return &user, nil
}
