package convert

import (
	"math"
	"strconv"
	"strings"
)

// DilutionResult is the pesticide mix for a field: concentrated agent,
// water to dilute it with, and the combined spray volume, all in mL.
type DilutionResult struct {
	AgentML float64 `json:"agent_ml"`
	WaterML float64 `json:"water_ml"`
	TotalML float64 `json:"total_ml"`
}

// Dilution computes the spray mix from the field area in ares, the
// labeled agent dose per 10 ares in mL, and the dilution ratio. The
// dose scales linearly with area/10; a ratio of 1 means undiluted
// agent and is valid. All three inputs must parse as positive finite
// numbers, otherwise ok is false and no result is produced.
func Dilution(fieldAreaAres, agentPer10AresML, ratio string) (DilutionResult, bool) {
	area, ok := positive(fieldAreaAres)
	if !ok {
		return DilutionResult{}, false
	}
	dose, ok := positive(agentPer10AresML)
	if !ok {
		return DilutionResult{}, false
	}
	r, ok := positive(ratio)
	if !ok {
		return DilutionResult{}, false
	}

	agent := dose * area / 10
	water := agent * (r - 1)
	return DilutionResult{AgentML: agent, WaterML: water, TotalML: agent + water}, true
}

func positive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v <= 0 {
		return 0, false
	}
	return v, true
}
