package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// Completer abstracts the external text-generation service.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Metadata is the structured reply expected from the model for a food item.
type Metadata struct {
	ExpiryHours float64  `json:"expiryHours"`
	Tags        []string `json:"tags"`
	ImpactCO2   float64  `json:"impactCO2"`
}

// FallbackMetadata is returned whenever the external call fails or its reply
// cannot be parsed. Callers never see an error from Predict.
func FallbackMetadata() Metadata {
	return Metadata{
		ExpiryHours: 24,
		Tags:        []string{"Fresh", "Rescued", "Tasty"},
		ImpactCO2:   0.5,
	}
}

// MetadataService asks a generative model to auto-tag food listings.
type MetadataService struct {
	completer Completer
}

// NewMetadataService creates a new MetadataService. A nil completer is
// allowed; every prediction then returns the fallback.
func NewMetadataService(completer Completer) *MetadataService {
	return &MetadataService{
		completer: completer,
	}
}

// Predict estimates expiry, marketing tags, and rescued-CO2 impact for an
// item. Any failure of the external service is swallowed and replaced with
// the static fallback.
func (s *MetadataService) Predict(ctx context.Context, itemName, category string) Metadata {
	if s.completer == nil {
		return FallbackMetadata()
	}

	prompt := fmt.Sprintf(`Analyze the food item %q in category %q.
Return a JSON object with:
1. "expiryHours": estimated hours until it spoils if left at room temp (conservative estimate).
2. "tags": Array of 3 short marketing tags (e.g., "Vegan", "Sweet").
3. "impactCO2": estimated kg of CO2 prevented by rescuing 1kg of this food.
Output ONLY valid JSON.`, itemName, category)

	reply, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		log.Printf("Metadata prediction failed for item %q: %v", itemName, err)
		return FallbackMetadata()
	}

	var meta Metadata
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &meta); err != nil {
		log.Printf("Metadata reply for item %q is not valid JSON: %v", itemName, err)
		return FallbackMetadata()
	}
	if meta.ExpiryHours <= 0 && len(meta.Tags) == 0 {
		// Parsed fine but carries none of the expected keys.
		return FallbackMetadata()
	}
	return meta
}

// SuggestRecipe asks the model for a one-line recipe idea using leftover
// ingredients, falling back to a canned suggestion on any failure.
func (s *MetadataService) SuggestRecipe(ctx context.Context, ingredients []string) string {
	const fallback = "Delicious Eco-Salad"
	if s.completer == nil || len(ingredients) == 0 {
		return fallback
	}

	prompt := fmt.Sprintf("Suggest a simple recipe name and 1-sentence description using these leftover ingredients: %s.",
		strings.Join(ingredients, ", "))

	reply, err := s.completer.Complete(ctx, prompt)
	if err != nil || strings.TrimSpace(reply) == "" {
		return fallback
	}
	return strings.TrimSpace(reply)
}

// stripCodeFence removes a surrounding markdown code fence, which chat models
// often wrap around JSON replies despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
