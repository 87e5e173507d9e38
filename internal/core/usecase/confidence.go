package usecase

import "github.com/filewise-ai/filewise/internal/core/domain"

// Confidence composition. The completion's self-reported agreement dominates,
// moderated by how much content and structure the analysis had to work with.
// richnessSaturation is the preview length at which richness saturates at 1.

const richnessSaturation = 800

const (
	confidenceBase  = 0.25
	richnessWeight  = 0.15
	densityWeight   = 0.10
	agreementWeight = 0.55
)

func contentRichness(preview string) float64 {
	return clamp01(float64(len(preview)) / richnessSaturation)
}

func composeConfidence(s domain.ConfidenceScores) float64 {
	return clamp01(confidenceBase +
		richnessWeight*s.ContentRichness +
		densityWeight*s.ExtractionDensity +
		agreementWeight*s.NamingAgreement)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
