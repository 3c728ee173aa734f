// Package content serves the static, user-facing text for cycle phases.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

//go:embed phases.yaml
var phasesYAML []byte

// PhaseInfo is the display text for one phase.
type PhaseInfo struct {
	Phase       domain.Phase `yaml:"phase"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
}

// Catalog maps each phase to its text.
type Catalog struct {
	phases map[domain.Phase]PhaseInfo
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(phasesYAML)
}

// Parse builds a catalog from YAML. Every known phase must be present.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Phases []PhaseInfo `yaml:"phases"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("content: parse phases: %w", err)
	}

	c := &Catalog{phases: make(map[domain.Phase]PhaseInfo, len(doc.Phases))}
	for _, p := range doc.Phases {
		if !p.Phase.IsValid() {
			return nil, fmt.Errorf("content: unknown phase %q", p.Phase)
		}
		c.phases[p.Phase] = p
	}
	for _, p := range domain.AllPhases() {
		if _, ok := c.phases[p]; !ok {
			return nil, fmt.Errorf("content: phase %s missing", p)
		}
	}
	return c, nil
}

// Describe returns the description for phase, or "" if unknown.
func (c *Catalog) Describe(phase domain.Phase) string {
	return c.phases[phase].Description
}

// Info returns the full entry for phase.
func (c *Catalog) Info(phase domain.Phase) (PhaseInfo, bool) {
	p, ok := c.phases[phase]
	return p, ok
}
