package usecase

import (
	"strings"
	"testing"

	"bakusoq/internal/domain/entities"
)

func TestBuildEstimatePrompt(t *testing.T) {
	prompt := BuildEstimatePrompt(entities.EstimateParams{
		AreaTsubo: 42.5,
		Structure: entities.StructureSteel,
		RoadWidth: entities.RoadWidthNarrow,
	})

	for _, want := range []string{
		"- 構造: S造",
		"- 延床面積: 42.5 坪",
		"- 前面道路幅員: 狭い",
		"木造30坪の総額は 900,000〜1,100,000 円",
		"items: Array<{ category, name, unit, quantity, unitPrice, total }>",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "%!") {
		t.Fatalf("prompt has formatting errors")
	}
}
