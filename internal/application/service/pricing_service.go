package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/apperror"
	"github.com/sangkips/venuebook-api/pkg/utils"
)

// PricingService computes the cost components that feed a booking's
// subtotal: the hall's flat event rate and the per-vendor service
// costs.
type PricingService struct {
	hallRepo        repository.HallRepository
	vendorRepo      repository.VendorRepository
	serviceItemRepo repository.VendorServiceItemRepository
}

// NewPricingService creates a new pricing service
func NewPricingService(
	hallRepo repository.HallRepository,
	vendorRepo repository.VendorRepository,
	serviceItemRepo repository.VendorServiceItemRepository,
) *PricingService {
	return &PricingService{
		hallRepo:        hallRepo,
		vendorRepo:      vendorRepo,
		serviceItemRepo: serviceItemRepo,
	}
}

// ServiceSelection is one requested vendor service line
type ServiceSelection struct {
	VendorID      uuid.UUID `json:"vendor_id"`
	ServiceItemID uuid.UUID `json:"service_item_id"`
	Quantity      int       `json:"quantity"`
}

// ServiceLine is one priced service line within a vendor's share
type ServiceLine struct {
	ServiceItemID uuid.UUID `json:"service_item_id"`
	ServiceName   string    `json:"service_name"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	Total         float64   `json:"total"`
}

// VendorShare is one vendor's portion of the booking cost
type VendorShare struct {
	VendorID   uuid.UUID     `json:"vendor_id"`
	VendorName string        `json:"vendor_name"`
	Lines      []ServiceLine `json:"lines"`
	SubTotal   float64       `json:"sub_total"`
}

// FinancialBreakdown aggregates the hall and vendor cost components
type FinancialBreakdown struct {
	HallCost           float64       `json:"hall_cost"`
	VendorServicesCost float64       `json:"vendor_services_cost"`
	SubTotal           float64       `json:"sub_total"`
	Vendors            []VendorShare `json:"vendors"`
}

// ComputeHallCost returns the hall's flat rate for an event date:
// the weekend rate on Friday/Saturday, the weekday rate otherwise.
// Halls are priced per event, so duration does not matter.
func (s *PricingService) ComputeHallCost(ctx context.Context, hallID uuid.UUID, eventDate time.Time) (float64, error) {
	hall, err := s.hallRepo.GetByID(ctx, hallID)
	if err != nil {
		return 0, err
	}
	if hall == nil {
		return 0, apperror.NewNotFoundError("Hall")
	}
	return hall.RateFor(eventDate), nil
}

// ComputeVendorServicesCost resolves and prices the requested service
// selections, grouped by vendor. A missing service item degrades to a
// zero price with a logged warning; a missing vendor name degrades to
// a placeholder. An empty selection list yields zero cost and an empty
// breakdown.
func (s *PricingService) ComputeVendorServicesCost(ctx context.Context, selections []ServiceSelection) (float64, []VendorShare, error) {
	if len(selections) == 0 {
		return 0, []VendorShare{}, nil
	}

	// Batch-resolve vendors and service items (prevents N+1)
	vendorIDs := make([]uuid.UUID, 0, len(selections))
	itemIDs := make([]uuid.UUID, 0, len(selections))
	seenVendor := make(map[uuid.UUID]bool)
	for _, sel := range selections {
		if !seenVendor[sel.VendorID] {
			seenVendor[sel.VendorID] = true
			vendorIDs = append(vendorIDs, sel.VendorID)
		}
		itemIDs = append(itemIDs, sel.ServiceItemID)
	}

	vendors, err := s.vendorRepo.GetByIDs(ctx, vendorIDs)
	if err != nil {
		return 0, nil, err
	}
	vendorMap := make(map[uuid.UUID]*entity.Vendor, len(vendors))
	for i := range vendors {
		vendorMap[vendors[i].ID] = &vendors[i]
	}

	items, err := s.serviceItemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return 0, nil, err
	}
	itemMap := make(map[uuid.UUID]*entity.VendorServiceItem, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	// Group priced lines by vendor, preserving first-seen order
	sharesByVendor := make(map[uuid.UUID]*VendorShare)
	var order []uuid.UUID
	var total float64

	for _, sel := range selections {
		share, ok := sharesByVendor[sel.VendorID]
		if !ok {
			name := "Unknown Vendor"
			if vendor, found := vendorMap[sel.VendorID]; found {
				name = vendor.Name
			} else {
				log.Printf("Warning: vendor %s not found while pricing services, using placeholder name", sel.VendorID)
			}
			share = &VendorShare{VendorID: sel.VendorID, VendorName: name}
			sharesByVendor[sel.VendorID] = share
			order = append(order, sel.VendorID)
		}

		unitPrice := 0.0
		serviceName := "Unknown Service"
		if item, found := itemMap[sel.ServiceItemID]; found {
			unitPrice = item.UnitPrice
			serviceName = item.Name
		} else {
			log.Printf("Warning: service item %s not found while pricing services, priced at 0", sel.ServiceItemID)
		}

		lineTotal := utils.RoundMoney(unitPrice * float64(sel.Quantity))
		share.Lines = append(share.Lines, ServiceLine{
			ServiceItemID: sel.ServiceItemID,
			ServiceName:   serviceName,
			Quantity:      sel.Quantity,
			UnitPrice:     unitPrice,
			Total:         lineTotal,
		})
		share.SubTotal = utils.RoundMoney(share.SubTotal + lineTotal)
		total = utils.RoundMoney(total + lineTotal)
	}

	shares := make([]VendorShare, 0, len(order))
	for _, id := range order {
		shares = append(shares, *sharesByVendor[id])
	}

	return total, shares, nil
}

// BuildBreakdown computes the full financial breakdown for a booking
// request: hall cost plus vendor service costs.
func (s *PricingService) BuildBreakdown(ctx context.Context, hallID uuid.UUID, eventDate time.Time, selections []ServiceSelection) (*FinancialBreakdown, error) {
	hallCost, err := s.ComputeHallCost(ctx, hallID, eventDate)
	if err != nil {
		return nil, err
	}

	vendorCost, shares, err := s.ComputeVendorServicesCost(ctx, selections)
	if err != nil {
		return nil, err
	}

	return &FinancialBreakdown{
		HallCost:           hallCost,
		VendorServicesCost: vendorCost,
		SubTotal:           utils.RoundMoney(hallCost + vendorCost),
		Vendors:            shares,
	}, nil
}
