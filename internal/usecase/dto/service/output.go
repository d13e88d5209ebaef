package servicedto

import "github.com/comissio/commission-service/internal/domain"

type PerformedServicePage struct {
	Services []*domain.PerformedService
	Total    int64
	Page     int
	Limit    int
}
