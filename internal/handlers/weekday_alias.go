package handlers

import "strings"

// Nomes em espanhol aceitos na borda. O domínio só conhece os canônicos.
var spanishWeekdays = map[string]string{
	"lunes":     "monday",
	"martes":    "tuesday",
	"miercoles": "wednesday",
	"jueves":    "thursday",
	"viernes":   "friday",
	"sabado":    "saturday",
	"domingo":   "sunday",
}

var stripAccents = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
)

// canonicalWeekday troca um alias em espanhol pelo nome canônico.
// Qualquer outro valor passa adiante para o domínio validar.
func canonicalWeekday(name string) string {
	n := strings.ToLower(stripAccents.Replace(strings.TrimSpace(name)))
	if en, ok := spanishWeekdays[n]; ok {
		return en
	}
	return strings.TrimSpace(name)
}
