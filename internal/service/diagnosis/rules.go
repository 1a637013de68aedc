package service

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule is one entry of the offline heuristic table: the first rule whose
// keyword appears in the ticket text wins.
type Rule struct {
	Keywords []string `yaml:"keywords"`
	Text     string   `yaml:"text"`
}

func (r Rule) matches(text string) bool {
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

const genericFallback = "Possibile Causa: guasto non identificabile dai sintomi descritti.\n" +
	"Diagnosi: eseguire un controllo visivo e una prova di funzionamento in laboratorio.\n" +
	"Ricambi: da definire dopo l'ispezione."

// DefaultRules covers the recurring workshop failures.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"scaric"},
			Text: "Possibile Causa: pompa di scarico ostruita o guasta.\n" +
				"Diagnosi: verificare filtro pompa, girante e tubo di scarico della lavatrice.\n" +
				"Ricambi: pompa di scarico universale, filtro.",
		},
		{
			Keywords: []string{"frigo", "freezer", "caldo", "temperatura"},
			Text: "Possibile Causa: perdita di gas refrigerante o termostato difettoso.\n" +
				"Diagnosi: misurare le temperature dei reparti e controllare il compressore.\n" +
				"Ricambi: termostato, carica gas, ventola evaporatore.",
		},
		{
			Keywords: []string{"scheda", "elettronic", "display"},
			Text: "Possibile Causa: scheda elettronica in avaria.\n" +
				"Diagnosi: controllare alimentazione, fusibili e connettori della scheda.\n" +
				"Ricambi: scheda elettronica compatibile con il modello.",
		},
		{
			Keywords: []string{"cuscinett", "rumore", "vibra"},
			Text: "Possibile Causa: cuscinetti del cestello usurati.\n" +
				"Diagnosi: ruotare il cestello a mano e verificare gioco e rumorosità.\n" +
				"Ricambi: kit cuscinetti cestello, guarnizione.",
		},
	}
}

// LoadRules reads a YAML rule table overriding the defaults.
func LoadRules(path string) ([]Rule, error) {
	const op = "diagnosis.LoadRules"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("%s: nessuna regola in %s", op, path)
	}
	return doc.Rules, nil
}
