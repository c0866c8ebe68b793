package fsm

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidChart indicates a transition chart document that cannot be parsed
// or bound.
var ErrInvalidChart = errors.New("invalid transition chart")

// Chart is a declarative transition table loaded from YAML. Charts carry the
// pure data of a machine (names, sources, targets, save flags); guards and
// bodies are attached in code via WithChart bindings.
type Chart struct {
	Transitions []ChartTransition `yaml:"transitions"`
}

// ChartTransition is one declared transition in a chart document.
type ChartTransition struct {
	Name   string    `yaml:"name"`
	Source SourceSet `yaml:"source"`
	Target State     `yaml:"target"`
	Save   bool      `yaml:"save"`
}

// SourceSet unmarshals from a single scalar ("new", "*") or a sequence of
// states, mirroring the accepted declaration forms.
type SourceSet []State

func (s *SourceSet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var one string
		if err := value.Decode(&one); err != nil {
			return err
		}
		*s = SourceSet{State(one)}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		set := make(SourceSet, 0, len(many))
		for _, v := range many {
			set = append(set, State(v))
		}
		*s = set
		return nil
	default:
		return fmt.Errorf("source must be a state or a list of states, got %v node", value.Kind)
	}
}

// ParseChart decodes a YAML chart document. Structural validation of each
// transition (missing targets, empty sources, duplicate names) happens when
// the chart is bound into a machine.
func ParseChart(data []byte) (Chart, error) {
	var chart Chart
	if err := yaml.Unmarshal(data, &chart); err != nil {
		return Chart{}, errors.Join(ErrInvalidChart, err)
	}
	if len(chart.Transitions) == 0 {
		return Chart{}, fmt.Errorf("%w: no transitions declared", ErrInvalidChart)
	}
	return chart, nil
}

// Binding attaches code to a chart transition by name.
type Binding[O any] struct {
	Guards []Guard[O]
	Body   Body[O]
}

// WithChart registers every transition in chart, attaching guards and bodies
// from bindings by transition name. A binding naming a transition absent from
// the chart is a declaration error.
func WithChart[O any](chart Chart, bindings map[string]Binding[O]) Option[O] {
	return func(m *Machine[O]) error {
		declared := make(map[string]bool, len(chart.Transitions))
		for _, ct := range chart.Transitions {
			declared[ct.Name] = true
			b := bindings[ct.Name]
			err := m.register(Transition[O]{
				Name:   ct.Name,
				Source: []State(ct.Source),
				Target: ct.Target,
				Guards: b.Guards,
				Body:   b.Body,
				Save:   ct.Save,
			})
			if err != nil {
				return err
			}
		}
		for name := range bindings {
			if !declared[name] {
				return fmt.Errorf("%w: binding %q does not match any chart transition", ErrInvalidChart, name)
			}
		}
		return nil
	}
}
