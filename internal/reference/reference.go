package reference

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed laws.yaml
var lawsYAML []byte

//go:embed resonances.yaml
var resonancesYAML []byte

// Law is one of the eleven operational laws governing the model.
type Law struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Resonance is an observed rhythm neighboring one of the model's calculated
// durations. Proximity is the claimed closeness in (0, 1].
type Resonance struct {
	Name       string  `yaml:"name" json:"name"`
	Observed   float64 `yaml:"observed_value" json:"observed_value"`
	Calculated float64 `yaml:"calculated_value" json:"calculated_value"`
	Unit       string  `yaml:"unit" json:"unit"`
	Proximity  float64 `yaml:"proximity" json:"proximity"`
	Domain     string  `yaml:"domain" json:"domain"`
}

// The table sizes are part of the model: eleven laws, four candidates.
const (
	lawCount       = 11
	resonanceCount = 4
)

var (
	laws       []Law
	resonances []Resonance
)

func init() {
	if err := loadTables(); err != nil {
		panic(fmt.Sprintf("reference: embedded tables corrupt: %v", err))
	}
}

// loadTables decodes and validates both embedded documents. Failures are
// programmer errors (the data ships inside the binary), so init panics.
func loadTables() error {
	var lawDoc struct {
		Laws []Law `yaml:"laws"`
	}
	if err := decodeStrict(lawsYAML, &lawDoc); err != nil {
		return fmt.Errorf("laws.yaml: %w", err)
	}
	if len(lawDoc.Laws) != lawCount {
		return fmt.Errorf("laws.yaml: expected %d laws, found %d", lawCount, len(lawDoc.Laws))
	}
	for i, law := range lawDoc.Laws {
		if law.Name == "" || law.Description == "" {
			return fmt.Errorf("laws.yaml: laws[%d] missing name or description", i)
		}
	}

	var resDoc struct {
		Resonances []Resonance `yaml:"resonances"`
	}
	if err := decodeStrict(resonancesYAML, &resDoc); err != nil {
		return fmt.Errorf("resonances.yaml: %w", err)
	}
	if len(resDoc.Resonances) != resonanceCount {
		return fmt.Errorf("resonances.yaml: expected %d candidates, found %d", resonanceCount, len(resDoc.Resonances))
	}
	for i, r := range resDoc.Resonances {
		if r.Name == "" || r.Unit == "" || r.Domain == "" {
			return fmt.Errorf("resonances.yaml: resonances[%d] missing name, unit, or domain", i)
		}
		if r.Proximity <= 0 || r.Proximity > 1 {
			return fmt.Errorf("resonances.yaml: resonances[%d] proximity %v outside (0, 1]", i, r.Proximity)
		}
	}

	laws = lawDoc.Laws
	resonances = resDoc.Resonances
	return nil
}

// decodeStrict parses YAML rejecting unknown fields (catches typos in the
// embedded documents).
func decodeStrict(data []byte, out interface{}) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	return decoder.Decode(out)
}

// Laws returns the eleven operational laws in canonical order. The returned
// slice is a copy.
func Laws() []Law {
	out := make([]Law, len(laws))
	copy(out, laws)
	return out
}

// LawByName looks up a law by its exact name.
func LawByName(name string) (Law, bool) {
	for _, law := range laws {
		if law.Name == name {
			return law, true
		}
	}
	return Law{}, false
}

// Resonances returns the four resonance candidates in canonical order. The
// returned slice is a copy.
func Resonances() []Resonance {
	out := make([]Resonance, len(resonances))
	copy(out, resonances)
	return out
}
