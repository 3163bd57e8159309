package models

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category는 식사 구분(아침/점심/저녁)을 나타냅니다
type Category string

const (
	// CategoryBreakfast는 아침 식사를 나타냅니다
	CategoryBreakfast Category = "breakfast"

	// CategoryLunch는 점심 식사를 나타냅니다
	CategoryLunch Category = "lunch"

	// CategoryDinner는 저녁 식사를 나타냅니다
	CategoryDinner Category = "dinner"
)

// Categories는 식단에 표시되는 순서대로 모든 식사 구분을 담고 있습니다
var Categories = []Category{CategoryBreakfast, CategoryLunch, CategoryDinner}

// ParseCategory는 영문 이름과 봇에서 쓰는 한글 별칭(아침/점심/저녁)을 모두 받습니다
func ParseCategory(s string) (Category, error) {
	switch s {
	case "breakfast", "아침":
		return CategoryBreakfast, nil
	case "lunch", "점심":
		return CategoryLunch, nil
	case "dinner", "저녁":
		return CategoryDinner, nil
	}
	return "", fmt.Errorf("%w: unknown meal category %q", ErrValidation, s)
}

// FoodItem은 카탈로그에서 고를 수 있는 메뉴 하나입니다
type FoodItem struct {
	DisplayName string  `json:"Display_Name" bson:"name"`
	Calories    float64 `json:"Calories" bson:"calories"`
}

// Food는 MongoDB에 저장되는 카탈로그 항목입니다
type Food struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Calories  float64            `bson:"calories" json:"calories"`
	Category  Category           `bson:"category" json:"category"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	CreatedBy string             `bson:"created_by" json:"created_by"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
}

// NewFood는 새로운 카탈로그 항목을 생성합니다
func NewFood(name string, calories float64, category Category, createdBy string) *Food {
	return &Food{
		Name:      name,
		Calories:  calories,
		Category:  category,
		CreatedAt: time.Now(),
		CreatedBy: createdBy,
		IsActive:  true,
	}
}

// Item은 저장된 음식을 카탈로그 항목으로 변환합니다
func (f *Food) Item() FoodItem {
	return FoodItem{DisplayName: f.Name, Calories: f.Calories}
}

// Catalog는 식사 구분별 메뉴 목록입니다 (순서 유지)
type Catalog map[Category][]FoodItem

// Validate는 모든 식사 구분에 메뉴가 있고 각 메뉴가 유효한지 확인합니다
func (c Catalog) Validate() error {
	for _, category := range Categories {
		items, ok := c[category]
		if !ok || len(items) == 0 {
			return fmt.Errorf("%w: category %s has no items", ErrInvalidCatalog, category)
		}
		for i, item := range items {
			if item.DisplayName == "" {
				return fmt.Errorf("%w: %s item %d has no name", ErrInvalidCatalog, category, i)
			}
			if !ValidCalories(item.Calories) {
				return fmt.Errorf("%w: %s item %q has invalid calories %v", ErrInvalidCatalog, category, item.DisplayName, item.Calories)
			}
		}
	}
	return nil
}

// ValidCalories는 칼로리 값이 0보다 큰 유한한 숫자인지 확인합니다
func ValidCalories(c float64) bool {
	return c > 0 && !math.IsNaN(c) && !math.IsInf(c, 0)
}

// Size는 전체 메뉴 개수를 반환합니다
func (c Catalog) Size() int {
	n := 0
	for _, items := range c {
		n += len(items)
	}
	return n
}
