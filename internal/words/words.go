// Package words holds the category tables the engine draws secret words
// from. Every entry carries light metadata (class, trait, size) so blind
// mode can hand the spy a word that is topically close to the real one
// instead of an arbitrary one from the same list.
package words

import "github.com/valyala/fastrand"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Categories = []Category{
	{ID: "countries", Name: "دول"},
	{ID: "fruits_vegetables", Name: "خضروات وفواكه"},
	{ID: "animals", Name: "حيوانات"},
	{ID: "cars", Name: "سيارات"},
}

func Valid(categoryID string) bool {
	for _, c := range Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

func IDs() []string {
	ids := make([]string, len(Categories))
	for i, c := range Categories {
		ids[i] = c.ID
	}
	return ids
}

// entry metadata, by category:
//
//	countries          class=region
//	fruits_vegetables  class=فاكهة|خضروات  trait=color  size
//	animals            class=animal class  trait=habitat  size
//	cars               class=brand         trait="" for bare brand, "موديل" otherwise
type entry struct {
	name  string
	class string
	trait string
	size  string
}

func pick(n int) int {
	return int(fastrand.Uint32n(uint32(n)))
}

func table(categoryID string) []entry {
	if t, ok := catalog[categoryID]; ok {
		return t
	}
	return catalog["countries"]
}

// Random returns a uniformly random word from the category.
func Random(categoryID string) string {
	t := table(categoryID)
	return t[pick(len(t))].name
}

// Different returns any word from the category other than exclude.
func Different(categoryID, exclude string) string {
	t := table(categoryID)
	candidates := make([]entry, 0, len(t))
	for _, e := range t {
		if e.name != exclude {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return exclude
	}
	return candidates[pick(len(candidates))].name
}

// Similar returns a word topically close to exclude: same class is
// required, then candidates are ranked by trait (+2) and size (+1)
// agreement and drawn from the top band. Falls back to Different when
// the class has no other members.
func Similar(categoryID, exclude string) string {
	t := table(categoryID)

	var ref *entry
	for i := range t {
		if t[i].name == exclude {
			ref = &t[i]
			break
		}
	}
	if ref == nil {
		return Different(categoryID, exclude)
	}

	type scored struct {
		name  string
		score int
	}
	var candidates []scored
	best := -1
	for _, e := range t {
		if e.name == exclude || e.class != ref.class {
			continue
		}
		score := 0
		if e.trait == ref.trait {
			score += 2
		}
		if e.size == ref.size {
			score++
		}
		candidates = append(candidates, scored{name: e.name, score: score})
		if score > best {
			best = score
		}
	}
	if len(candidates) == 0 {
		return Different(categoryID, exclude)
	}

	var top []string
	for _, c := range candidates {
		if c.score >= best-1 {
			top = append(top, c.name)
		}
	}

	return top[pick(len(top))]
}

// SameClass reports whether two words of a category share a metadata
// class. Used by tests to pin the blind-mode pairing guarantee.
func SameClass(categoryID, a, b string) bool {
	t := table(categoryID)
	var ca, cb string
	for _, e := range t {
		if e.name == a {
			ca = e.class
		}
		if e.name == b {
			cb = e.class
		}
	}
	return ca != "" && ca == cb
}
