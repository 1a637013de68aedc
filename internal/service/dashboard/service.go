package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/re-fagiano/fixlab/internal/model"
)

type TicketLister interface {
	List() []model.Ticket
}

type PartLister interface {
	List() []model.Part
}

type Summary struct {
	OpenTickets       int          `json:"openTickets"`
	InProgressTickets int          `json:"inProgressTickets"`
	TotalParts        int          `json:"totalParts"`
	LowStock          []model.Part `json:"lowStock"`
}

type service struct {
	tickets TicketLister
	parts   PartLister
}

func NewDashboardService(tickets TicketLister, parts PartLister) *service {
	return &service{tickets: tickets, parts: parts}
}

func (s *service) Summary(_ context.Context) Summary {
	tickets := s.tickets.List()
	parts := s.parts.List()

	return Summary{
		OpenTickets: lo.CountBy(tickets, func(t model.Ticket) bool {
			return t.Status == model.StatusOpen
		}),
		InProgressTickets: lo.CountBy(tickets, func(t model.Ticket) bool {
			return t.Status == model.StatusInProgress
		}),
		TotalParts: lo.SumBy(parts, func(p model.Part) int {
			return p.Qty
		}),
		LowStock: lo.Filter(parts, func(p model.Part, _ int) bool {
			return p.LowStock()
		}),
	}
}
