package repository

import "equity-calculator/domain"

type CalculationRepository interface {
	Save(result domain.CalculationResult) error
	Recent(limit int) []domain.CalculationResult
}
