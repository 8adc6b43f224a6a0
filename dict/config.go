package dict

import (
	"io/ioutil"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"clinscribe.com/cna/logger"
	"clinscribe.com/cna/types"
)

// Override is the yaml shape deployments use to extend the built-in tables
// without rebuilding. All lists are additive; synonym and weight entries
// replace on key collision.
type Override struct {
	Terms             map[string][]string           `yaml:"terms"`
	Synonyms          map[string]map[string]string  `yaml:"synonyms"`
	EmergencyKeywords map[string]float64            `yaml:"emergency_keywords"`
	ClinicalKeywords  []string                      `yaml:"clinical_keywords"`
	Intensifiers      []string                      `yaml:"intensifiers"`
	Stopwords         []string                      `yaml:"stopwords"`
}

// Load builds the default tables and, when dirPath is non-empty, layers every
// *.yaml override file found there on top.
func Load(dirPath string) (*Tables, error) {
	tables := Default()
	if dirPath == "" {
		return tables, nil
	}

	cnaLogger := logger.NewLogger("Vocabulary loader")

	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			cnaLogger.Warn().Str("dir", dirPath).Msg("Override directory does not exist, using built-in tables")
			return tables, nil
		}
		return nil, err
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}
		filePath := path.Join(dirPath, f.Name())
		buf, err := ioutil.ReadFile(filePath)
		if err != nil {
			cnaLogger.Err(err).Str("file", filePath).Msg("Failed to read override file")
			return nil, err
		}
		var override Override
		if err := yaml.Unmarshal(buf, &override); err != nil {
			cnaLogger.Err(err).Str("file", filePath).Msg("Failed to parse override file")
			return nil, err
		}
		tables.apply(&override)
		cnaLogger.Info().Str("file", filePath).Msg("Applied vocabulary override")
	}

	return tables, nil
}

func (tables *Tables) apply(override *Override) {
	for typeName, terms := range override.Terms {
		entityType := entityTypeByName(typeName)
		if entityType == types.EntityUnknown {
			continue
		}
		tables.Terms[entityType] = append(tables.Terms[entityType], lowered(terms)...)
	}
	for typeName, pairs := range override.Synonyms {
		entityType := entityTypeByName(typeName)
		if entityType == types.EntityUnknown {
			continue
		}
		if tables.Synonyms[entityType] == nil {
			tables.Synonyms[entityType] = make(map[string]string)
		}
		for from, to := range pairs {
			tables.Synonyms[entityType][strings.ToLower(from)] = strings.ToLower(to)
		}
	}
	for keyword, weight := range override.EmergencyKeywords {
		tables.EmergencyKeywords[strings.ToLower(keyword)] = weight
	}
	tables.ClinicalKeywords = append(tables.ClinicalKeywords, lowered(override.ClinicalKeywords)...)
	tables.Intensifiers = append(tables.Intensifiers, lowered(override.Intensifiers)...)
	for _, word := range override.Stopwords {
		tables.Stopwords[strings.ToLower(word)] = true
	}
}

func entityTypeByName(name string) types.EntityType {
	for _, known := range []types.EntityType{
		types.EntitySymptom, types.EntityCondition, types.EntityMedication,
		types.EntityAnatomy, types.EntityProcedure, types.EntityLabTest,
		types.EntityVitalSign, types.EntityDosage, types.EntityTemporal,
		types.EntityPerson,
	} {
		if known.Name() == name {
			return known
		}
	}
	return types.EntityUnknown
}

func lowered(words []string) []string {
	result := make([]string, len(words))
	for i, word := range words {
		result[i] = strings.ToLower(word)
	}
	return result
}
