package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// NutritionService resolves a food label to a macro estimate via the Edamam
// food database. Estimates are per 100 g; the client can adjust the portion
// before saving.
type NutritionService struct {
	appID  string
	appKey string
	client *http.Client
}

func NewNutritionService() *NutritionService {
	return &NutritionService{
		appID:  os.Getenv("EDAMAM_APP_ID"),
		appKey: os.Getenv("EDAMAM_APP_KEY"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// MealEstimate is the photo-analysis result handed back to the client: a
// meal candidate with source "ai" that the user may save as-is or edit first.
type MealEstimate struct {
	FoodName string  `json:"food_name"`
	Portion  string  `json:"portion"`
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Source   string  `json:"source"`
}

type foodParserResponse struct {
	Hints []struct {
		Food struct {
			Label     string `json:"label"`
			Category  string `json:"category"`
			Nutrients struct {
				Calories float64 `json:"ENERC_KCAL"`
				Protein  float64 `json:"PROCNT"`
				Fat      float64 `json:"FAT"`
				Carbs    float64 `json:"CHOCDF"`
			} `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

// Lookup queries the Edamam parser endpoint for a label and returns the
// first hit's per-100g nutrition.
func (s *NutritionService) Lookup(label string) (*MealEstimate, error) {
	u := fmt.Sprintf(
		"https://api.edamam.com/api/food-database/v2/parser?ingr=%s&app_id=%s&app_key=%s",
		url.QueryEscape(label), s.appID, s.appKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call food database: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read food database response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food database API error %d: %s", resp.StatusCode, string(body))
	}

	var pr foodParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse food database JSON: %w", err)
	}
	if len(pr.Hints) == 0 {
		return nil, fmt.Errorf("no nutrition data for %q", label)
	}

	f := pr.Hints[0].Food
	return &MealEstimate{
		FoodName: f.Label,
		Portion:  "100 g",
		Calories: f.Nutrients.Calories,
		Carbs:    f.Nutrients.Carbs,
		Protein:  f.Nutrients.Protein,
		Fat:      f.Nutrients.Fat,
		Source:   "ai",
	}, nil
}

// EstimateFromLabels tries the detected labels in confidence order until one
// resolves; a photo full of unrecognizable labels surfaces the last error.
func (s *NutritionService) EstimateFromLabels(labels []string) (*MealEstimate, error) {
	var lastErr error
	for _, label := range labels {
		est, err := s.Lookup(label)
		if err == nil {
			return est, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
