package irc

import (
	"regexp"
	"strings"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

var (
	userPattern    = regexp.MustCompile(`:(\w+)!`)
	messagePattern = regexp.MustCompile(`PRIVMSG #[^ ]+ :(.*)`)
)

// IsKeepAlive reports whether the raw line is a server keep-alive. The
// transport must answer it with KeepAliveReply; it never surfaces as an event.
func IsKeepAlive(line string) bool {
	return strings.HasPrefix(line, "PING")
}

// KeepAliveReply is the response expected by the chat server.
const KeepAliveReply = "PONG :tmi.twitch.tv"

// Parse turns one raw transport line into a chat message. Lines that are not
// channel messages, or that are missing the sender or the text, yield ok=false.
// Arbitrary garbage input is tolerated and never panics.
func Parse(line string) (*domain.ChatMessage, bool) {
	if !strings.Contains(line, "PRIVMSG") {
		return nil, false
	}

	var badges []string
	if strings.HasPrefix(line, "@") {
		end := strings.Index(line, " ")
		if end < 0 {
			return nil, false
		}
		badges = parseBadgeTags(line[1:end])
	}

	userMatch := userPattern.FindStringSubmatch(line)
	if userMatch == nil {
		return nil, false
	}

	messageMatch := messagePattern.FindStringSubmatch(line)
	if messageMatch == nil {
		return nil, false
	}

	text := strings.TrimSpace(messageMatch[1])
	if text == "" {
		return nil, false
	}

	return &domain.ChatMessage{
		User:   userMatch[1],
		Text:   text,
		Badges: badges,
	}, true
}

// parseBadgeTags extracts the recognized badge tags from the IRCv3 tag prefix,
// e.g. "badges=subscriber/12,vip/1;color=#FF0000".
func parseBadgeTags(rawTags string) []string {
	var value string
	for _, tag := range strings.Split(rawTags, ";") {
		key, v, ok := strings.Cut(tag, "=")
		if ok && key == "badges" {
			value = strings.ToLower(v)
			break
		}
	}
	if value == "" {
		return nil
	}

	var badges []string
	for _, recognized := range []string{domain.BadgeVIP, domain.BadgeSubscriber, domain.BadgeModerator} {
		if strings.Contains(value, recognized) {
			badges = append(badges, recognized)
		}
	}
	return badges
}
