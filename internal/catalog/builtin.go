package catalog

// FallbackCategory is reported for exercises that are in no category.
const FallbackCategory = "Sonstige"

var builtin = Catalog{
	{Name: "Brust", Exercises: []string{"Bankdrücken", "Brustpresse", "Flys"}},
	{Name: "Rücken", Exercises: []string{"Latzug", "Rudern"}},
	{Name: "Arme", Exercises: []string{"Bizeps Curls", "Trizeps Curls"}},
	{Name: "Beine", Exercises: []string{"Kniebeugen", "Beinpresse", "Beinstrecker"}},
	{Name: "Schultern", Exercises: []string{"Schulterdrücken", "Seitheben"}},
}

// Builtin returns a copy of the fixed exercise table.
func Builtin() Catalog {
	return builtin.Clone()
}
