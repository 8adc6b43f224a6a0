package dict

// Clinical keywords reward sentences during extractive scoring (0.1 each,
// capped at 0.3).
func getClinicalKeywords() []string {
	return []string{
		"diagnosis", "diagnosed", "treatment", "prescribed", "admitted",
		"discharged", "surgery", "acute", "chronic", "severe", "abnormal",
		"improved", "worsened", "stable", "critical", "follow up",
		"diagnostico", "tratamento", "prescrito", "internado", "alta",
		"cirurgia", "agudo", "cronico", "grave", "estavel",
	}
}

// Stopwords filtered out of keyword extraction, English and Portuguese.
func getStopwords() map[string]bool {
	words := []string{
		"the", "and", "for", "with", "that", "this", "was", "are", "has",
		"have", "had", "not", "but", "his", "her", "she", "him", "they",
		"them", "from", "been", "were", "will", "would", "there", "their",
		"which", "when", "what", "also", "into", "than", "then", "upon",
		"about", "after", "before", "during", "patient", "patients",
		"que", "com", "para", "uma", "por", "dos", "das", "nao", "mais",
		"como", "mas", "foi", "ele", "ela", "seu", "sua", "ser", "esta",
		"sem", "nos", "paciente",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Medical terms counted for sentence density scoring and weighted double in
// keyword frequency ranking. Built from the entity dictionaries so the two
// stay in step.
func buildMedicalTermSet() map[string]bool {
	set := make(map[string]bool)
	for _, list := range [][]string{
		getSymptomTerms(),
		getConditionTerms(),
		getMedicationTerms(),
		getAnatomyTerms(),
		getProcedureTerms(),
		getLabTestTerms(),
	} {
		for _, term := range list {
			set[term] = true
		}
	}
	return set
}
