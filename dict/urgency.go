package dict

// Sentiment axis keyword tables. The base score of an axis is the fraction of
// its keywords present in the lower-cased text; all four axes then share one
// intensifier multiplier.
func getUrgencyAxisWords() []string {
	return []string{
		"urgent", "immediately", "emergency", "stat", "critical", "acute",
		"now", "rapid", "worsening", "deteriorating", "unstable",
		"urgente", "imediatamente", "emergencia", "critico", "agudo", "piora",
	}
}

func getConcernAxisWords() []string {
	return []string{
		"concerning", "worrisome", "suspicious", "abnormal", "alarming",
		"unexpected", "significant", "serious", "preocupante", "suspeito",
		"anormal", "grave",
	}
}

func getPainAxisWords() []string {
	return []string{
		"pain", "painful", "ache", "aching", "burning", "stabbing",
		"throbbing", "tenderness", "sore", "cramping", "dor", "dolorido",
		"queimacao", "pontada", "colica",
	}
}

func getDistressAxisWords() []string {
	return []string{
		"anxious", "distressed", "crying", "agitated", "frightened",
		"panicking", "tearful", "restless", "ansioso", "angustiado",
		"chorando", "agitado", "assustado",
	}
}

func getIntensifiers() []string {
	return []string{
		"very", "extremely", "severely", "severe", "intense", "extreme",
		"excruciating", "unbearable", "profound", "markedly", "muito",
		"extremamente", "intenso", "insuportavel", "fortemente",
	}
}

// Emergency keywords carry per-keyword weights, not counts. The document
// urgency score sums the weight of every keyword present.
func getEmergencyKeywordWeights() map[string]float64 {
	return map[string]float64{
		"cardiac arrest":        0.95,
		"not breathing":         0.95,
		"unresponsive":          0.90,
		"anaphylaxis":           0.90,
		"parada cardiaca":       0.95,
		"stroke":                0.80,
		"myocardial infarction": 0.80,
		"heart attack":          0.80,
		"avc":                   0.80,
		"sepsis":                0.75,
		"hemorrhage":            0.70,
		"severe bleeding":       0.70,
		"overdose":              0.70,
		"seizure":               0.60,
		"chest pain":            0.50,
		"shortness of breath":   0.45,
		"dor no peito":          0.50,
		"falta de ar":           0.45,
		"syncope":               0.40,
		"high fever":            0.30,
		"icu":                   0.30,
		"intubation":            0.40,
	}
}

// CriticalCombination is a symptom tuple whose joint presence (every member
// substring-matched in the concatenated symptom list) adds its bonus once.
type CriticalCombination struct {
	Symptoms []string
	Bonus    float64
}

func getCriticalCombinations() []CriticalCombination {
	return []CriticalCombination{
		{Symptoms: []string{"chest pain", "shortness of breath"}, Bonus: 0.8},
		{Symptoms: []string{"chest pain", "palpitations"}, Bonus: 0.6},
		{Symptoms: []string{"fever", "stiff neck", "headache"}, Bonus: 0.7},
		{Symptoms: []string{"headache", "confusion"}, Bonus: 0.5},
		{Symptoms: []string{"fever", "confusion"}, Bonus: 0.5},
		{Symptoms: []string{"abdominal pain", "vomiting"}, Bonus: 0.4},
		{Symptoms: []string{"weakness", "numbness"}, Bonus: 0.5},
	}
}

// Entities whose normalized form lands in this set count toward the capped
// critical-findings bonus.
func getCriticalFindingTerms() map[string]bool {
	return map[string]bool{
		"chest pain":            true,
		"shortness of breath":   true,
		"syncope":               true,
		"seizure":               true,
		"confusion":             true,
		"hemoptysis":            true,
		"myocardial infarction": true,
		"stroke":                true,
		"sepsis":                true,
		"pulmonary embolism":    true,
		"meningitis":            true,
		"heart failure":         true,
	}
}
