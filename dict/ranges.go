package dict

// NormalRange bounds a lab test: a value is normal when Low <= v < High.
type NormalRange struct {
	Low  float64
	High float64
	Unit string
}

func getLabNormalRanges() map[string]NormalRange {
	return map[string]NormalRange{
		"hemoglobin":  {Low: 12.0, High: 17.5, Unit: "g/dl"},
		"hematocrit":  {Low: 36.0, High: 52.0, Unit: "%"},
		"glucose":     {Low: 70.0, High: 100.0, Unit: "mg/dl"},
		"creatinine":  {Low: 0.6, High: 1.3, Unit: "mg/dl"},
		"urea":        {Low: 7.0, High: 45.0, Unit: "mg/dl"},
		"sodium":      {Low: 135.0, High: 146.0, Unit: "meq/l"},
		"potassium":   {Low: 3.5, High: 5.2, Unit: "meq/l"},
		"wbc":         {Low: 4.0, High: 11.0, Unit: "x10^3/ul"},
		"platelets":   {Low: 150.0, High: 450.0, Unit: "x10^3/ul"},
		"troponin":    {Low: 0.0, High: 0.04, Unit: "ng/ml"},
		"lactate":     {Low: 0.5, High: 2.2, Unit: "mmol/l"},
		"crp":         {Low: 0.0, High: 10.0, Unit: "mg/l"},
		"inr":         {Low: 0.8, High: 1.2, Unit: ""},
		"tsh":         {Low: 0.4, High: 4.5, Unit: "mui/l"},
		"bilirubin":   {Low: 0.1, High: 1.2, Unit: "mg/dl"},
		"albumin":     {Low: 3.4, High: 5.5, Unit: "g/dl"},
		"cholesterol": {Low: 0.0, High: 200.0, Unit: "mg/dl"},
	}
}
