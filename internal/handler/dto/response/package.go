package response

import (
	"time"

	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type FoodOptionResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type PackageResponse struct {
	ID              uuid.UUID            `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	BasePrice       decimal.Decimal      `json:"basePrice"`
	Category        string               `json:"category"`
	IsActive        bool                 `json:"isActive"`
	AvailableTables []string             `json:"availableTables"`
	AvailableChairs []string             `json:"availableChairs"`
	AvailableFoods  []FoodOptionResponse `json:"availableFoods"`
	CreatedAt       time.Time            `json:"createdAt"`
}

func FromPackageView(rm *queries.PackageView) *PackageResponse {
	var resp PackageResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromPackageViews(rms []queries.PackageView) []*PackageResponse {
	resp := make([]*PackageResponse, len(rms))
	for i := range rms {
		resp[i] = FromPackageView(&rms[i])
	}
	return resp
}
