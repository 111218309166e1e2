package recipe

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/eatclub/pantry-cli/internal/fault"
	"github.com/eatclub/pantry-cli/internal/inventory"
)

// Catalog is an ordered collection of recipes. Order matters: the
// recommender breaks score ties by first-seen catalog position.
type Catalog struct {
	Recipes []Recipe
}

// Get returns the recipe with the given ID.
func (c Catalog) Get(id string) (Recipe, error) {
	for _, r := range c.Recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return Recipe{}, fault.Missing("recipe %q not in catalog", id)
}

// catalogFile is the on-disk YAML shape. Quantities are written as
// string value + unit so they parse through the validating constructors.
type catalogFile struct {
	Recipes []recipeYAML `yaml:"recipes"`
}

type recipeYAML struct {
	ID           string           `yaml:"id"`
	Name         string           `yaml:"name"`
	Description  string           `yaml:"description"`
	Ingredients  []ingredientYAML `yaml:"ingredients"`
	Instructions []string         `yaml:"instructions"`
	Tags         []string         `yaml:"tags"`

	PrepTimeMinutes int    `yaml:"prep_time_minutes"`
	CookTimeMinutes int    `yaml:"cook_time_minutes"`
	Difficulty      string `yaml:"difficulty"`
}

type ingredientYAML struct {
	Name     string  `yaml:"name"`
	Variant  string  `yaml:"variant"`
	Brand    string  `yaml:"brand"`
	Quantity string  `yaml:"quantity"`
	Unit     string  `yaml:"unit"`
	Notes    string  `yaml:"notes"`
	Approx   bool    `yaml:"approx"`
	Conf     float64 `yaml:"confidence"`
}

// LoadCatalog reads and validates a recipe catalog from a YAML file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, eris.Wrapf(err, "recipe: read catalog %s", path)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, eris.Wrapf(err, "recipe: parse catalog %s", path)
	}

	var catalog Catalog
	for _, ry := range file.Recipes {
		r, err := ry.toRecipe()
		if err != nil {
			return Catalog{}, eris.Wrapf(err, "recipe: catalog entry %q", ry.ID)
		}
		if err := r.Validate(); err != nil {
			return Catalog{}, eris.Wrapf(err, "recipe: catalog entry %q", ry.ID)
		}
		catalog.Recipes = append(catalog.Recipes, r)
	}
	return catalog, nil
}

func (ry recipeYAML) toRecipe() (Recipe, error) {
	r := Recipe{
		ID:              ry.ID,
		Name:            ry.Name,
		Description:     ry.Description,
		Instructions:    ry.Instructions,
		Tags:            ry.Tags,
		PrepTimeMinutes: ry.PrepTimeMinutes,
		CookTimeMinutes: ry.CookTimeMinutes,
		Difficulty:      Difficulty(ry.Difficulty),
	}
	for _, iy := range ry.Ingredients {
		ing, err := iy.toIngredient()
		if err != nil {
			return Recipe{}, err
		}
		r.Ingredients = append(r.Ingredients, ing)
	}
	return r, nil
}

func (iy ingredientYAML) toIngredient() (IngredientRef, error) {
	conf := iy.Conf
	if conf == 0 {
		conf = 1.0
	}
	item, err := inventory.NewItemIdentity(inventory.CanonicalName(iy.Name), iy.Variant, iy.Brand, conf)
	if err != nil {
		return IngredientRef{}, err
	}
	qty, err := inventory.ParseQuantity(iy.Quantity, iy.Unit)
	if err != nil {
		return IngredientRef{}, err
	}
	qty.Approx = iy.Approx
	return IngredientRef{Item: item, Quantity: qty, Notes: iy.Notes}, nil
}
