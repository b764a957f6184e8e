package catalog

type Category struct {
	Name      string   `json:"category"`
	Exercises []string `json:"exercises"`
}

// Catalog is an ordered list of categories, each with ordered exercise names.
type Catalog []Category

func (c Catalog) Clone() Catalog {
	cloned := make(Catalog, len(c))
	for i, cat := range c {
		cloned[i] = Category{
			Name:      cat.Name,
			Exercises: append([]string{}, cat.Exercises...),
		}
	}
	return cloned
}

// CategoryOf returns the first category, in catalog order, containing the exercise.
func (c Catalog) CategoryOf(exercise string) (string, bool) {
	for _, cat := range c {
		for _, name := range cat.Exercises {
			if name == exercise {
				return cat.Name, true
			}
		}
	}
	return "", false
}

// CategoryOrFallback is CategoryOf with the "Sonstige" label for unknown exercises.
func (c Catalog) CategoryOrFallback(exercise string) string {
	if category, ok := c.CategoryOf(exercise); ok {
		return category
	}
	return FallbackCategory
}

func (c Catalog) Contains(category, exercise string) bool {
	idx := c.indexOf(category)
	if idx < 0 {
		return false
	}
	for _, name := range c[idx].Exercises {
		if name == exercise {
			return true
		}
	}
	return false
}

// Exercises returns all exercise names in catalog order, each name once.
func (c Catalog) Exercises() []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, cat := range c {
		for _, name := range cat.Exercises {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func (c Catalog) indexOf(category string) int {
	for i := range c {
		if c[i].Name == category {
			return i
		}
	}
	return -1
}

// Merge concatenates the additions onto base per category. Categories of base keep
// their order and come first, new categories follow in the order of additions.
// Names already present in the same category are skipped.
func Merge(base, additions Catalog) Catalog {
	merged := base.Clone()
	for _, add := range additions {
		idx := merged.indexOf(add.Name)
		if idx < 0 {
			merged = append(merged, Category{Name: add.Name, Exercises: []string{}})
			idx = len(merged) - 1
		}
		for _, name := range add.Exercises {
			if merged.Contains(add.Name, name) {
				continue
			}
			merged[idx].Exercises = append(merged[idx].Exercises, name)
		}
	}
	return merged
}
