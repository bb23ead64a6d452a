package statement

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/theater-billing/internal/catalog"
	"github.com/noah-isme/theater-billing/internal/common"
	"github.com/noah-isme/theater-billing/internal/obs"
	"github.com/noah-isme/theater-billing/internal/pricing"
)

// Handler exposes the statement and play-catalog endpoints.
type Handler struct {
	builder  *Builder
	plays    catalog.Catalog
	validate *validator.Validate
}

// HandlerConfig groups Handler dependencies.
type HandlerConfig struct {
	Builder *Builder
	Plays   catalog.Catalog
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		builder:  cfg.Builder,
		plays:    cfg.Plays,
		validate: validator.New(),
	}
}

type performanceRequest struct {
	PlayID   string `json:"playID" validate:"required"`
	Audience int    `json:"audience" validate:"gte=0"`
}

type statementRequest struct {
	Customer     string               `json:"customer" validate:"required"`
	Performances []performanceRequest `json:"performances" validate:"dive"`
}

type statementResponse struct {
	ID                 string        `json:"id"`
	Customer           string        `json:"customer"`
	Lines              []LineItem    `json:"lines"`
	TotalAmountCents   pricing.Money `json:"totalAmountCents"`
	TotalVolumeCredits int64         `json:"totalVolumeCredits"`
}

// Create handles POST /api/v1/statements. With ?format=text the response is
// the rendered plain-text statement instead of the JSON envelope.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.builder == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "statement builder not configured", nil)
		return
	}

	var req statementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "invalid statement request", validationDetails(err))
		return
	}

	invoice := Invoice{
		Customer:     req.Customer,
		Performances: make([]Performance, 0, len(req.Performances)),
	}
	for _, perf := range req.Performances {
		invoice.Performances = append(invoice.Performances, Performance{
			PlayID:   perf.PlayID,
			Audience: perf.Audience,
		})
	}

	st, err := h.builder.Build(invoice, h.plays)
	if err != nil {
		h.writeBuildError(w, err)
		return
	}
	countBuild("ok")

	if r.URL.Query().Get("format") == "text" {
		common.Text(w, http.StatusOK, RenderText(st))
		return
	}
	common.JSONData(w, http.StatusOK, statementResponse{
		ID:                 uuid.NewString(),
		Customer:           st.Customer,
		Lines:              st.Lines,
		TotalAmountCents:   st.TotalAmountCents,
		TotalVolumeCredits: st.TotalVolumeCredits,
	})
}

// Plays handles GET /api/v1/plays.
func (h *Handler) Plays(w http.ResponseWriter, _ *http.Request) {
	common.JSONData(w, http.StatusOK, h.plays.Entries())
}

func (h *Handler) writeBuildError(w http.ResponseWriter, err error) {
	var (
		unknownPlay     *catalog.UnknownPlayIDError
		unknownType     *pricing.UnknownPlayTypeError
		invalidAudience *pricing.InvalidAudienceError
	)
	switch {
	case errors.As(err, &unknownPlay):
		countBuild("unknown_play")
		common.JSONError(w, http.StatusUnprocessableEntity, "UNKNOWN_PLAY", err.Error(),
			map[string]string{"playID": unknownPlay.PlayID})
	case errors.As(err, &unknownType):
		countBuild("unknown_play_type")
		common.JSONError(w, http.StatusUnprocessableEntity, "UNKNOWN_PLAY_TYPE", err.Error(),
			map[string]string{"playType": unknownType.PlayType})
	case errors.As(err, &invalidAudience):
		countBuild("invalid_audience")
		common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_AUDIENCE", err.Error(),
			map[string]int{"audience": invalidAudience.Audience})
	default:
		countBuild("error")
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to build statement", nil)
	}
}

func countBuild(result string) {
	if obs.StatementsBuiltTotal != nil {
		obs.StatementsBuiltTotal.WithLabelValues(result).Inc()
	}
}

func validationDetails(err error) any {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	details := make([]map[string]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, map[string]string{
			"field": fe.Namespace(),
			"rule":  fe.Tag(),
		})
	}
	return details
}
