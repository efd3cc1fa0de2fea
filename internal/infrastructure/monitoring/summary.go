package monitoring

import (
	"fmt"
	"sort"

	dto "github.com/prometheus/client_model/go"
)

// Summary gathers the command counters into sorted
// "verb status=count" lines, one per verb.
func (m *Metrics) Summary() ([]string, error) {
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	counts := make(map[string]map[string]uint64)
	for _, mf := range families {
		if mf.GetName() != "fileshell_commands_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			verb, status := labelPair(metric)
			if counts[verb] == nil {
				counts[verb] = make(map[string]uint64)
			}
			counts[verb][status] += uint64(metric.GetCounter().GetValue())
		}
	}

	verbs := make([]string, 0, len(counts))
	for verb := range counts {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)

	lines := make([]string, 0, len(verbs))
	for _, verb := range verbs {
		statuses := make([]string, 0, len(counts[verb]))
		for status := range counts[verb] {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)

		line := verb
		for _, status := range statuses {
			line += fmt.Sprintf(" %s=%d", status, counts[verb][status])
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func labelPair(metric *dto.Metric) (verb, status string) {
	for _, lp := range metric.GetLabel() {
		switch lp.GetName() {
		case "verb":
			verb = lp.GetValue()
		case "status":
			status = lp.GetValue()
		}
	}
	return verb, status
}
