package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownLanguageFallsBackToSpanish(t *testing.T) {
	for _, lang := range []string{"", "de", "pt"} {
		locale := For(lang)
		assert.Contains(t, locale.WinnerPrompt("alice"), "escribe")
	}
}

func TestMessages(t *testing.T) {
	es := For("es")
	assert.Equal(t, "@alice escribe !TuNombreInGame (30 segundos)", es.WinnerPrompt("alice"))
	assert.Equal(t, "@alice descalificado por no responder", es.Disqualified("alice"))
	assert.Equal(t, "@alice gano Mug", es.Award("alice", "Mug"))

	en := For("en")
	assert.Equal(t, "@alice type !YourInGameName (30 seconds)", en.WinnerPrompt("alice"))
	assert.Equal(t, "@alice disqualified for not responding", en.Disqualified("alice"))
	assert.Equal(t, "@alice won Mug", en.Award("alice", "Mug"))
}
