package config

var Presets = map[string]map[string]*Config{
	"exponential": {
		"doubling": {
			Law: "exponential", N0: 1, Steps: 10,
			Params: LawParams{R: 2.0},
		},
		"decline": {
			Law: "exponential", N0: 100, Steps: 50,
			Params: LawParams{R: 0.9},
		},
	},
	"ricker": {
		"stable": {
			Law: "ricker", N0: 1, Steps: 40,
			Params: LawParams{R: 0.5, K: 20},
		},
		"overshoot": {
			Law: "ricker", N0: 1, Steps: 60,
			Params: LawParams{R: 1.8, K: 20},
		},
		"cycle": {
			Law: "ricker", N0: 1, Steps: 100,
			Params: LawParams{R: 2.3, K: 20},
		},
		"chaos": {
			Law: "ricker", N0: 1, Steps: 500,
			Params: LawParams{R: 3.5, K: 20},
		},
	},
	"logistic": {
		"stable": {
			Law: "logistic", N0: 1, Steps: 40,
			Params: LawParams{R: 0.5, K: 20},
		},
		"chaos": {
			Law: "logistic", N0: 1, Steps: 500,
			Params: LawParams{R: 2.9, K: 20},
		},
	},
	"beverton-holt": {
		"smooth": {
			Law: "beverton-holt", N0: 1, Steps: 40,
			Params: LawParams{R: 2.0, K: 20},
		},
	},
}

func GetPreset(law, preset string) *Config {
	lawPresets, ok := Presets[law]
	if !ok {
		return nil
	}
	cfg, ok := lawPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(law string) []string {
	lawPresets, ok := Presets[law]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(lawPresets))
	for name := range lawPresets {
		names = append(names, name)
	}
	return names
}
