package handler

import (
	"net/http"

	"github.com/famhub/choreboard/internal/handler/dto"
	"github.com/famhub/choreboard/internal/query"
	"github.com/famhub/choreboard/internal/repository"
)

// handleListMembers returns the full member ledger.
// @Summary List members
// @Description Get all household members with their point balances
// @Tags members
// @Produce json
// @Success 200 {array} dto.MemberResponse
// @Router /members [get]
func (h *Handler) handleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	members, err := h.memberRepo.List(ctx)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToMemberResponses(members))
}

// handleGetStats returns aggregate task counts and the household point total,
// derived from fresh task and member snapshots.
// @Summary Get statistics
// @Description Task counts by status plus the sum of all member point balances
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.taskRepo.List(ctx, repository.ListFilters{})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	members, err := h.memberRepo.List(ctx)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToStatsResponse(query.Stats(tasks), query.TotalPoints(members)))
}
