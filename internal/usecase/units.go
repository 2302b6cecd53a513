package usecase

import "strings"

// volumeConversions maps normalized volume unit names to fluid ounces.
var volumeConversions = map[string]float64{
	"cup":          8,
	"cups":         8,
	"c":            8,
	"fl oz":        1,
	"fl. oz":       1,
	"fluid ounce":  1,
	"fluid ounces": 1,
	"oz":           1, // assume fluid oz for liquids
	"tbsp":         0.5,
	"tablespoon":   0.5,
	"tablespoons":  0.5,
	"tsp":          0.167,
	"teaspoon":     0.167,
	"teaspoons":    0.167,
	"ml":           0.034,
	"l":            33.814,
	"liter":        33.814,
	"liters":       33.814,
	"pint":         16,
	"pints":        16,
	"pt":           16,
	"quart":        32,
	"quarts":       32,
	"qt":           32,
	"gallon":       128,
	"gallons":      128,
	"gal":          128,
}

// weightConversions maps normalized weight unit names to ounces.
var weightConversions = map[string]float64{
	"oz":        1,
	"ounce":     1,
	"ounces":    1,
	"lb":        16,
	"pound":     16,
	"pounds":    16,
	"lbs":       16,
	"g":         0.035,
	"gram":      0.035,
	"grams":     0.035,
	"kg":        35.274,
	"kilogram":  35.274,
	"kilograms": 35.274,
}

// Categories whose quantities are measured by volume, never by weight.
var liquidCategories = map[string]bool{
	"liquid":    true,
	"oil":       true,
	"condiment": true,
	"sauce":     true,
	"dairy":     true,
}

var bakingCategories = map[string]bool{
	"baking": true,
	"flour":  true,
	"sugar":  true,
}

// Display-unit preference orders for chooseDisplayUnit.
var (
	volumePreference = []string{"cups", "cup", "tbsp", "tsp", "fl oz", "oz"}
	weightPreference = []string{"lb", "oz", "g"}
)

// normalizeUnit lowercases, trims, and strips one trailing period so that
// "Tbsp." and "tbsp" compare equal.
func normalizeUnit(unit string) string {
	return strings.TrimSuffix(strings.TrimSpace(strings.ToLower(unit)), ".")
}

func isVolumeCategory(category string) bool {
	return liquidCategories[category] || bakingCategories[category]
}

// unitsConvertible reports whether two units can be merged for an ingredient
// of the given category. Identical units always merge. Volume-measured
// categories only merge volume units ("oz" there means fluid ounces); other
// categories merge within either table, never across volume and weight.
func unitsConvertible(unit1, unit2, category string) bool {
	norm1 := normalizeUnit(unit1)
	norm2 := normalizeUnit(unit2)

	if norm1 == norm2 {
		return true
	}

	_, isVolume1 := volumeConversions[norm1]
	_, isVolume2 := volumeConversions[norm2]
	_, isWeight1 := weightConversions[norm1]
	_, isWeight2 := weightConversions[norm2]

	if isVolumeCategory(category) {
		return isVolume1 && isVolume2
	}
	return (isVolume1 && isVolume2) || (isWeight1 && isWeight2)
}

// convertUnits converts amount from one unit to another through the shared
// base unit of whichever table holds both. When no conversion path exists it
// returns the input unchanged; grouping by unitsConvertible should keep that
// branch unreachable, but it must never fail.
func convertUnits(amount float64, fromUnit, toUnit, category string) (float64, string) {
	normFrom := normalizeUnit(fromUnit)
	normTo := normalizeUnit(toUnit)

	if normFrom == normTo {
		return amount, toUnit
	}

	fromVol, okFromVol := volumeConversions[normFrom]
	toVol, okToVol := volumeConversions[normTo]

	if isVolumeCategory(category) && okFromVol && okToVol {
		return amount * fromVol / toVol, toUnit
	}

	if fromWt, ok := weightConversions[normFrom]; ok {
		if toWt, ok := weightConversions[normTo]; ok {
			return amount * fromWt / toWt, toUnit
		}
	}

	if okFromVol && okToVol {
		return amount * fromVol / toVol, toUnit
	}

	return amount, fromUnit
}

// chooseDisplayUnit picks the preferred display unit from the raw units that
// fed a merge group. Volume-measured categories scan the volume preference
// order, protein and meat scan the weight order, and everything else (or a
// group containing no preferred unit) falls back to the first unit seen.
func chooseDisplayUnit(units []string, category string) string {
	if len(units) == 0 {
		return ""
	}

	normalized := make([]string, len(units))
	for i, u := range units {
		normalized[i] = normalizeUnit(u)
	}

	find := func(preference []string) (string, bool) {
		for _, preferred := range preference {
			for i, norm := range normalized {
				if norm == preferred {
					return units[i], true
				}
			}
		}
		return "", false
	}

	if isVolumeCategory(category) {
		if unit, ok := find(volumePreference); ok {
			return unit
		}
	}
	if category == "protein" || category == "meat" {
		if unit, ok := find(weightPreference); ok {
			return unit
		}
	}

	return units[0]
}
