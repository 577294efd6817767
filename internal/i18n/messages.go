// Package i18n holds the outbound chat announcement strings. The default
// language is Spanish, matching the audience the tool ships for.
package i18n

import "fmt"

// Locale resolves announcement strings for one language.
type Locale struct {
	lang string
}

// For returns the locale for a language code. Unknown codes fall back to "es".
func For(lang string) Locale {
	switch lang {
	case "en":
		return Locale{lang: "en"}
	default:
		return Locale{lang: "es"}
	}
}

// WinnerPrompt asks the drawn winner for their in-game name.
func (l Locale) WinnerPrompt(user string) string {
	if l.lang == "en" {
		return fmt.Sprintf("@%s type !YourInGameName (30 seconds)", user)
	}
	return fmt.Sprintf("@%s escribe !TuNombreInGame (30 segundos)", user)
}

// Disqualified announces that the winner did not respond in time.
func (l Locale) Disqualified(user string) string {
	if l.lang == "en" {
		return fmt.Sprintf("@%s disqualified for not responding", user)
	}
	return fmt.Sprintf("@%s descalificado por no responder", user)
}

// Award announces the completed draw.
func (l Locale) Award(user, prize string) string {
	if l.lang == "en" {
		return fmt.Sprintf("@%s won %s", user, prize)
	}
	return fmt.Sprintf("@%s gano %s", user, prize)
}
