package rally

// resolve draws once and reports success when the sample is below p
func (e *Engine) resolve(p float64) bool {
	return e.roller.Float64() < p
}

// failureCause draws a description from the context's weighted table. It is
// cosmetic and never changes who wins the point.
func (e *Engine) failureCause(ctx FailureContext) string {
	causes := e.tunables.Failures[ctx]
	if len(causes) == 0 {
		return "error"
	}

	draw := e.roller.Float64()
	cumulative := 0.0
	for _, c := range causes {
		cumulative += c.Weight
		if draw < cumulative {
			return c.Description
		}
	}

	return causes[len(causes)-1].Description
}

// chance reports whether a fresh draw lands below threshold
func (e *Engine) chance(threshold float64) bool {
	return e.roller.Float64() < threshold
}
