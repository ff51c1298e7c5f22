package helpers

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
)

// KeyOAuthState is the Redis key holding a pending GitHub login state.
func KeyOAuthState(state string) string {
	return "oauth:state:" + state
}

// KeySession is the Redis hash describing a signed-in session.
func KeySession(sid string) string {
	return "session:" + sid
}

// KeyUserSessions indexes a user's live sessions so logout-all can drop them.
func KeyUserSessions(uid int64) string {
	return "user:sessions:" + strconv.FormatInt(uid, 10)
}

// KeyDiscordChannels caches the voice channel list served to the form.
const KeyDiscordChannels = "discord:channels"

// RandomToken returns n random bytes encoded as unpadded URL-safe base64.
func RandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
