package dict

import "clinscribe.com/cna/types"

// Term dictionaries per entity type, English and Portuguese mixed. Dictionary
// hits are trusted above generic regex matches.
func getSymptomTerms() []string {
	return []string{
		"chest pain",
		"shortness of breath",
		"dyspnea",
		"headache",
		"cephalgia",
		"dizziness",
		"vertigo",
		"nausea",
		"vomiting",
		"fever",
		"chills",
		"fatigue",
		"weakness",
		"cough",
		"sore throat",
		"abdominal pain",
		"back pain",
		"joint pain",
		"palpitations",
		"syncope",
		"seizure",
		"confusion",
		"stiff neck",
		"rash",
		"swelling",
		"edema",
		"diarrhea",
		"constipation",
		"weight loss",
		"night sweats",
		"hemoptysis",
		"dysuria",
		"blurred vision",
		"numbness",
		"tingling",
		"dor de cabeca",
		"dor no peito",
		"falta de ar",
		"tontura",
		"febre",
		"nausea e vomito",
		"dor abdominal",
		"fraqueza",
		"tosse",
		"cansaco",
	}
}

func getConditionTerms() []string {
	return []string{
		"hypertension",
		"diabetes",
		"diabetes mellitus",
		"asthma",
		"copd",
		"pneumonia",
		"myocardial infarction",
		"heart failure",
		"atrial fibrillation",
		"stroke",
		"sepsis",
		"anemia",
		"hypothyroidism",
		"hyperthyroidism",
		"chronic kidney disease",
		"renal failure",
		"cirrhosis",
		"hepatitis",
		"pancreatitis",
		"appendicitis",
		"cholecystitis",
		"pulmonary embolism",
		"deep vein thrombosis",
		"urinary tract infection",
		"meningitis",
		"epilepsy",
		"depression",
		"anxiety disorder",
		"obesity",
		"dyslipidemia",
		"osteoporosis",
		"arthritis",
		"cancer",
		"lymphoma",
		"leukemia",
		"hipertensao",
		"diabetes tipo 2",
		"insuficiencia cardiaca",
		"infarto do miocardio",
		"avc",
		"pneumonia bacteriana",
		"insuficiencia renal",
	}
}

func getMedicationTerms() []string {
	return []string{
		"aspirin",
		"paracetamol",
		"acetaminophen",
		"ibuprofen",
		"dipyrone",
		"metformin",
		"insulin",
		"lisinopril",
		"enalapril",
		"losartan",
		"amlodipine",
		"atenolol",
		"metoprolol",
		"carvedilol",
		"furosemide",
		"hydrochlorothiazide",
		"spironolactone",
		"atorvastatin",
		"simvastatin",
		"omeprazole",
		"pantoprazole",
		"amoxicillin",
		"azithromycin",
		"ceftriaxone",
		"ciprofloxacin",
		"vancomycin",
		"heparin",
		"warfarin",
		"clopidogrel",
		"prednisone",
		"salbutamol",
		"albuterol",
		"morphine",
		"tramadol",
		"fentanyl",
		"ondansetron",
		"levothyroxine",
		"sertraline",
		"fluoxetine",
	}
}

func getAnatomyTerms() []string {
	return []string{
		"heart",
		"lung",
		"lungs",
		"liver",
		"kidney",
		"kidneys",
		"brain",
		"stomach",
		"intestine",
		"colon",
		"pancreas",
		"spleen",
		"gallbladder",
		"bladder",
		"thyroid",
		"aorta",
		"artery",
		"vein",
		"spine",
		"femur",
		"skull",
		"abdomen",
		"thorax",
		"pelvis",
		"shoulder",
		"knee",
		"ankle",
		"coracao",
		"pulmao",
		"figado",
		"rim",
		"cerebro",
		"estomago",
	}
}

func getProcedureTerms() []string {
	return []string{
		"appendectomy",
		"cholecystectomy",
		"colonoscopy",
		"endoscopy",
		"bronchoscopy",
		"intubation",
		"catheterization",
		"angioplasty",
		"angiography",
		"biopsy",
		"dialysis",
		"thoracentesis",
		"paracentesis",
		"lumbar puncture",
		"electrocardiogram",
		"echocardiogram",
		"x-ray",
		"ct scan",
		"mri",
		"ultrasound",
		"blood transfusion",
		"chemotherapy",
		"radiotherapy",
		"cesarean section",
		"laparotomy",
		"craniotomy",
		"tomografia",
		"ressonancia magnetica",
		"ultrassom",
		"cirurgia",
	}
}

func getLabTestTerms() []string {
	return []string{
		"hemoglobin",
		"hematocrit",
		"platelet count",
		"white blood cell count",
		"glucose",
		"creatinine",
		"urea",
		"sodium",
		"potassium",
		"troponin",
		"bilirubin",
		"albumin",
		"lactate",
		"cholesterol",
		"triglycerides",
		"tsh",
		"inr",
		"crp",
		"esr",
		"urinalysis",
		"blood culture",
		"hemograma",
		"glicemia",
		"creatinina",
	}
}

// Synonym maps are scoped per entity type; keys and values are lower-cased.
// Unmapped surface text falls through lower-cased and trimmed.
func getSynonyms() map[types.EntityType]map[string]string {
	return map[types.EntityType]map[string]string{
		types.EntitySymptom: {
			"cephalgia":        "headache",
			"dyspnea":          "shortness of breath",
			"falta de ar":      "shortness of breath",
			"dor de cabeca":    "headache",
			"dor no peito":     "chest pain",
			"tontura":          "dizziness",
			"febre":            "fever",
			"dor abdominal":    "abdominal pain",
			"fraqueza":         "weakness",
			"tosse":            "cough",
			"cansaco":          "fatigue",
			"nausea e vomito":  "nausea",
			"vertigo":          "dizziness",
			"pyrexia":          "fever",
			"emesis":           "vomiting",
		},
		types.EntityCondition: {
			"hipertensao":             "hypertension",
			"diabetes tipo 2":         "diabetes mellitus",
			"insuficiencia cardiaca":  "heart failure",
			"infarto do miocardio":    "myocardial infarction",
			"avc":                     "stroke",
			"pneumonia bacteriana":    "pneumonia",
			"insuficiencia renal":     "renal failure",
			"heart attack":            "myocardial infarction",
			"high blood pressure":     "hypertension",
			"cva":                     "stroke",
			"mi":                      "myocardial infarction",
			"uti":                     "urinary tract infection",
			"dvt":                     "deep vein thrombosis",
			"pe":                      "pulmonary embolism",
		},
		types.EntityMedication: {
			"acetaminophen": "paracetamol",
			"albuterol":     "salbutamol",
			"asa":           "aspirin",
		},
		types.EntityAnatomy: {
			"coracao":  "heart",
			"pulmao":   "lung",
			"figado":   "liver",
			"rim":      "kidney",
			"cerebro":  "brain",
			"estomago": "stomach",
		},
		types.EntityProcedure: {
			"tomografia":            "ct scan",
			"ressonancia magnetica": "mri",
			"ultrassom":             "ultrasound",
			"cirurgia":              "surgery",
			"ekg":                   "electrocardiogram",
			"ecg":                   "electrocardiogram",
			"echo":                  "echocardiogram",
		},
		types.EntityLabTest: {
			"hemograma":  "complete blood count",
			"glicemia":   "glucose",
			"creatinina": "creatinine",
			"hgb":        "hemoglobin",
			"hct":        "hematocrit",
			"wbc":        "white blood cell count",
		},
	}
}
