package metrics

import (
	"fmt"
)

// CounterValue sums the counter members of the named family in the package
// registry whose labels include every given pair.
func CounterValue(name string, labels map[string]string) (float64, error) {
	families, err := GetRegistry().Gather()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrGather, err)
	}
	var total float64
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
	metricLoop:
		for _, m := range fam.GetMetric() {
			matched := 0
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok {
					if want != lp.GetValue() {
						continue metricLoop
					}
					matched++
				}
			}
			if matched != len(labels) {
				continue
			}
			if c := m.GetCounter(); c != nil {
				total += c.GetValue()
			}
		}
	}
	return total, nil
}
