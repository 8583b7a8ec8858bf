// Package taxonomy holds the static category -> skill names mapping used by
// the browse filters. It is configuration, not data: categories never change
// at runtime.
package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Category struct {
	ID     string   `yaml:"id" json:"id"`
	Name   string   `yaml:"name" json:"name"`
	Skills []string `yaml:"skills" json:"skills"`
}

type Taxonomy struct {
	categories []Category
	byID       map[string]*Category
}

// New builds a taxonomy from an ordered category list.
func New(categories []Category) *Taxonomy {
	t := &Taxonomy{
		categories: categories,
		byID:       make(map[string]*Category, len(categories)),
	}
	for i := range t.categories {
		t.byID[t.categories[i].ID] = &t.categories[i]
	}
	return t
}

// Default returns the built-in category set.
func Default() *Taxonomy {
	return New(defaultCategories())
}

// LoadFile reads a category list from a YAML file.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var categories []Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("taxonomy file %s contains no categories", path)
	}

	return New(categories), nil
}

// Categories returns all categories in declaration order.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// SkillsFor returns the skill names of a category. ok is false for an
// unknown category id.
func (t *Taxonomy) SkillsFor(categoryID string) ([]string, bool) {
	cat, ok := t.byID[categoryID]
	if !ok {
		return nil, false
	}
	return cat.Skills, true
}

// HasSkillInCategory reports whether any of the given skill names belongs to
// the category. An unknown category matches everything: the filter degrades
// to the unfiltered base set instead of failing.
func (t *Taxonomy) HasSkillInCategory(categoryID string, skills []string) bool {
	categorySkills, ok := t.SkillsFor(categoryID)
	if !ok {
		return true
	}

	set := make(map[string]struct{}, len(categorySkills))
	for _, s := range categorySkills {
		set[s] = struct{}{}
	}
	for _, s := range skills {
		if _, found := set[s]; found {
			return true
		}
	}
	return false
}

func defaultCategories() []Category {
	return []Category{
		{
			ID:   "technology",
			Name: "Technology",
			Skills: []string{
				"JavaScript", "Python", "React", "Node.js", "SQL",
				"Web Development", "Mobile Development", "Data Science",
			},
		},
		{
			ID:   "design",
			Name: "Design",
			Skills: []string{
				"Photoshop", "Illustrator", "Figma", "UI/UX Design",
				"Graphic Design", "Video Editing",
			},
		},
		{
			ID:   "music",
			Name: "Music",
			Skills: []string{
				"Guitar", "Piano", "Singing", "Music Production", "Drums",
			},
		},
		{
			ID:   "languages",
			Name: "Languages",
			Skills: []string{
				"English", "Spanish", "French", "German", "Japanese", "Mandarin",
			},
		},
		{
			ID:   "lifestyle",
			Name: "Lifestyle",
			Skills: []string{
				"Cooking", "Baking", "Yoga", "Fitness Training", "Gardening",
			},
		},
		{
			ID:   "business",
			Name: "Business",
			Skills: []string{
				"Marketing", "Public Speaking", "Excel", "Accounting",
				"Project Management",
			},
		},
		{
			ID:   "creative",
			Name: "Creative",
			Skills: []string{
				"Photography", "Creative Writing", "Drawing", "Knitting",
				"Woodworking",
			},
		},
	}
}
