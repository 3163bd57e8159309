package catalog

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bradykim7/mealplanner/internal/models"
)

// ParseHTML reads a catalog published as a web page. Each meal category is an
// element carrying data-category, and every entry inside it carries data-calories
// with the display name as its text:
//
//	<ul data-category="breakfast">
//	  <li data-calories="320">Oatmeal with berries</li>
//	</ul>
func ParseHTML(data []byte) (models.Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse HTML: %v", models.ErrInvalidCatalog, err)
	}

	catalog := make(models.Catalog, len(models.Categories))
	var parseErr error

	doc.Find("[data-category]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		name, _ := s.Attr("data-category")
		category, err := models.ParseCategory(strings.TrimSpace(strings.ToLower(name)))
		if err != nil {
			// Skip sections we don't plan with
			return true
		}

		s.Find("[data-calories]").EachWithBreak(func(j int, entry *goquery.Selection) bool {
			item, err := parseEntry(entry)
			if err != nil {
				parseErr = fmt.Errorf("%w: %s entry %d: %v", models.ErrInvalidCatalog, category, j, err)
				return false
			}
			catalog[category] = append(catalog[category], item)
			return true
		})
		return parseErr == nil
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return catalog, nil
}

func parseEntry(s *goquery.Selection) (models.FoodItem, error) {
	raw, _ := s.Attr("data-calories")
	calories, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !models.ValidCalories(calories) {
		return models.FoodItem{}, fmt.Errorf("invalid calories %q", raw)
	}

	name := strings.Join(strings.Fields(s.Text()), " ")
	if name == "" {
		return models.FoodItem{}, fmt.Errorf("empty name")
	}

	return models.FoodItem{DisplayName: name, Calories: calories}, nil
}
